package tui

import (
	"strings"

	"fete/internal/tui/components"
	"fete/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chatState backs the session chat scratchpad. Messages live only in the
// session; quitting or logging out clears the log.
type chatState struct {
	input   textinput.Model
	focused bool
}

func newChatState() chatState {
	ti := textinput.New()
	ti.Placeholder = "type a note and press enter"
	ti.CharLimit = 280
	ti.Width = 60
	return chatState{input: ti}
}

func (a App) updateChatInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if _, ok := a.sess.AppendChat(a.chat.input.Value()); ok {
			a.chat.input.SetValue("")
		}
		return a, nil
	case "esc":
		a.chat.focused = false
		a.chat.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.chat.input, cmd = a.chat.input.Update(msg)
	return a, cmd
}

func (a App) renderChatTab(cw, h int) string {
	t := theme.Active

	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	log := a.sess.Chat()

	// Show the newest messages that fit above the input line.
	visible := h - 10
	if visible < 3 {
		visible = 3
	}
	start := 0
	if len(log) > visible {
		start = len(log) - visible
	}

	var b strings.Builder
	if len(log) == 0 {
		b.WriteString(dimStyle.Render("Quiet in here. Say something."))
		b.WriteString("\n")
	}
	if start > 0 {
		b.WriteString(dimStyle.Render("…"))
		b.WriteString("\n")
	}
	for _, m := range log[start:] {
		b.WriteString(timeStyle.Render(m.At.Format("3:04 PM")))
		b.WriteString("  ")
		b.WriteString(textStyle.Render(m.Text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.chat.focused {
		b.WriteString(a.chat.input.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("[Enter] send  [Esc] unfocus"))
	} else {
		b.WriteString(dimStyle.Render("[Enter] start typing"))
	}

	card := components.ContentCard("Party Chat", b.String(), cw)
	note := dimStyle.Render(" Notes stay in this session only; nothing is written to the spreadsheet.")
	return card + "\n" + note
}
