package components

import (
	"strings"

	"fete/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// TabRows splits the tab list into the rows the bar draws: one row for
// small sets, two balanced rows otherwise.
func TabRows(tabs []Tab) [][]Tab {
	if len(tabs) <= 6 {
		return [][]Tab{tabs}
	}
	split := (len(tabs) + 1) / 2
	return [][]Tab{tabs[:split], tabs[split:]}
}

// TabVisualWidth returns the rendered width of one tab label. Inactive tabs
// carry a [k] shortcut marker; tabs whose key letter sits inside the name
// only gain the two brackets.
func TabVisualWidth(tab Tab, active bool) int {
	if active {
		return len(tab.Name)
	}
	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		return len(tab.Name) + 2
	}
	return len(tab.Name) + 3
}

// TabAt returns the index of the tab under the given coordinates, or -1.
// y selects the bar row; hitboxes match RenderTabBar's layout.
func TabAt(tabs []Tab, activeIdx, x, y int) int {
	rows := TabRows(tabs)
	if y < 0 || y >= len(rows) {
		return -1
	}

	base := 0
	for i := 0; i < y; i++ {
		base += len(rows[i])
	}

	pos := 1 // leading space
	for i, tab := range rows[y] {
		idx := base + i
		w := TabVisualWidth(tab, idx == activeIdx)
		if x >= pos && x < pos+w {
			return idx
		}
		pos += w + 2 // two-space separator
	}
	return -1
}

// RenderTabBar renders the given tabs with the active index highlighted.
// The visible tab set varies by role, so callers pass the list in.
func RenderTabBar(tabs []Tab, activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	render := func(tab Tab, active bool) string {
		if active {
			return activeStyle.Render(tab.Name)
		}
		// Render with highlighted shortcut key
		if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
			before := tab.Name[:tab.KeyPos]
			key := string(tab.Name[tab.KeyPos])
			after := tab.Name[tab.KeyPos+1:]
			return inactiveStyle.Render(before) +
				dimKeyStyle.Render("[") + keyStyle.Render(key) + dimKeyStyle.Render("]") +
				inactiveStyle.Render(after)
		}
		// Key not in name (e.g., "Feedback" jumped with 'v')
		return inactiveStyle.Render(tab.Name) +
			dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]")
	}

	var rows []string
	idx := 0
	for _, row := range TabRows(tabs) {
		parts := make([]string, 0, len(row))
		for _, tab := range row {
			parts = append(parts, render(tab, idx == activeIdx))
			idx++
		}
		rows = append(rows, " "+strings.Join(parts, "  "))
	}
	return strings.Join(rows, "\n")
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(tabs []Tab, key rune) int {
	for i, tab := range tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
