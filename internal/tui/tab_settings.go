package tui

import (
	"fmt"
	"strings"
	"time"

	"fete/internal/access"
	"fete/internal/config"
	"fete/internal/tui/components"
	"fete/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldEventName = iota
	settingsFieldDate
	settingsFieldStartTime
	settingsFieldVenue
	settingsFieldTheme
	settingsFieldAdminCode
	settingsFieldGuestCode
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func themeNames() string {
	names := make([]string, len(theme.All))
	for i, t := range theme.All {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldEventName:
		ti.Placeholder = "Leo's 7th Birthday"
		ti.SetValue(a.cfg.Event.Name)
	case settingsFieldDate:
		ti.Placeholder = "YYYY-MM-DD"
		ti.SetValue(a.cfg.Event.Date)
	case settingsFieldStartTime:
		ti.Placeholder = "HH:MM (24h)"
		ti.SetValue(a.cfg.Event.StartTime)
	case settingsFieldVenue:
		ti.Placeholder = "Rocky Island, Balmoral Beach"
		ti.SetValue(a.cfg.Event.Venue)
	case settingsFieldTheme:
		ti.Placeholder = themeNames()
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldAdminCode:
		ti.Placeholder = "new admin code (empty clears it)"
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	case settingsFieldGuestCode:
		ti.Placeholder = "new guest code (empty clears it)"
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldEventName:
		if val != "" {
			cfg.Event.Name = val
		}
	case settingsFieldDate:
		if _, err := time.Parse("2006-01-02", val); err == nil || val == "" {
			cfg.Event.Date = val
		}
	case settingsFieldStartTime:
		if _, err := time.Parse("15:04", val); err == nil || val == "" {
			cfg.Event.StartTime = val
		}
	case settingsFieldVenue:
		cfg.Event.Venue = val
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldAdminCode:
		if val == "" {
			cfg.Access.AdminCode = ""
		} else if hash, err := access.HashCode(val); err == nil {
			cfg.Access.AdminCode = hash
		}
	case settingsFieldGuestCode:
		if val == "" {
			cfg.Access.GuestCode = ""
		} else if hash, err := access.HashCode(val); err == nil {
			cfg.Access.GuestCode = hash
		}
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr == nil {
		a.cfg = cfg
		a.gate = access.NewGate(config.GetAdminCode(cfg), config.GetGuestCode(cfg))
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	codeDisplay := func(stored string) string {
		if stored == "" {
			return "(not set)"
		}
		return "(set)"
	}

	fields := []field{
		{"Event Name", cfg.Event.Name},
		{"Date", cfg.Event.Date},
		{"Start Time", cfg.Event.StartTime},
		{"Venue", cfg.Event.Venue},
		{"Theme", cfg.Appearance.Theme},
		{"Admin Code", codeDisplay(config.GetAdminCode(cfg))},
		{"Guest Code", codeDisplay(config.GetGuestCode(cfg))},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-12s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-12s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString("  ")
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-12s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Connection + session info card
	source := "demo data (in memory)"
	switch cfg.Sheet.Mode {
	case config.ModeBridge:
		source = config.GetBridgeURL(cfg)
	case config.ModeLocal:
		source = config.WorkbookPath(cfg)
	}
	if a.mode == "demo" {
		source = "demo data (in memory)"
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("Sheet source: ") + valueStyle.Render(source) + "\n")
	infoBody.WriteString(labelStyle.Render("Session:      ") + valueStyle.Render(a.sess.ID) + "\n")
	infoBody.WriteString(labelStyle.Render("Role:         ") + valueStyle.Render(a.sess.Role.String()) + "\n")
	infoBody.WriteString(labelStyle.Render("Last load:    ") + valueStyle.Render(fmt.Sprintf("%.1fs", a.loadTime.Seconds())))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Connection", infoBody.String(), cw))

	return b.String()
}
