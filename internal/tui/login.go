package tui

import (
	"strings"

	"fete/internal/event"
	"fete/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loginState tracks the access-code prompt shown before the dashboard.
type loginState struct {
	input   textinput.Model
	failed  bool
	attempt int
}

func newLoginState() loginState {
	ti := textinput.New()
	ti.Placeholder = "access code"
	ti.CharLimit = 128
	ti.Width = 32
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()

	return loginState{input: ti}
}

func (a App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		role, err := a.gate.Verify(a.login.input.Value())
		if err != nil {
			a.login.failed = true
			a.login.attempt++
			a.login.input.SetValue("")
			return a, nil
		}
		a.sess.Login(role)
		a.applyRole()
		a.login.failed = false
		a.activeTab = 0
		a.loaded = false
		return a, loadSheetsCmd(a.gw, event.AllSchemas(), a.loadSub)
	case "esc":
		a.login.input.SetValue("")
		a.login.failed = false
		return a, nil
	}

	var cmd tea.Cmd
	a.login.input, cmd = a.login.input.Update(msg)
	return a, cmd
}

func (a App) renderLogin() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	errStyle := lipgloss.NewStyle().
		Foreground(t.Red).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ fete"))
	b.WriteString(subtitleStyle.Render(" · " + a.cfg.Event.Name))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Enter the access code to continue."))
	b.WriteString("\n\n")
	b.WriteString(a.login.input.View())
	b.WriteString("\n\n")

	if a.login.failed {
		b.WriteString(errStyle.Render("That code didn't match. Try again."))
	} else {
		b.WriteString(subtitleStyle.Render("[Enter] unlock  [Ctrl+C] quit"))
	}

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
