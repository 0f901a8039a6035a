package components

import (
	"fmt"

	"fete/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// role badge, connection mode and sync age on the right.
func RenderStatusBar(width int, role, mode, dataAge string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	roleColor := t.Green
	if role == "admin" {
		roleColor = t.Accent
	}
	roleStyle := lipgloss.NewStyle().Foreground(roleColor).Bold(true)

	left := " [?]help  [q]uit"
	right := ""
	if role != "" {
		right = roleStyle.Render(role)
	}
	if mode != "" {
		if right != "" {
			right += " · "
		}
		right += mode
	}
	if dataAge != "" {
		if right != "" {
			right += " · "
		}
		right += fmt.Sprintf("synced %s", dataAge)
	}
	if right != "" {
		right += " "
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
