package tui

import (
	"fmt"
	"strings"
	"time"

	"fete/internal/access"
	"fete/internal/config"
	"fete/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// setupValues collects the first-run form fields; huh binds directly to them.
type setupValues struct {
	name      string
	date      string
	startTime string
	venue     string
	adminCode string
	guestCode string
	themeName string
}

// WithFirstRunSetup arms the setup wizard. The form opens once the first
// load finishes, prefilled with the demo event so every field shows the
// expected shape.
func (a App) WithFirstRunSetup() App {
	a.needSetup = true
	return a
}

func newSetupForm(cfg config.Config, vals *setupValues, width int) *huh.Form {
	vals.name = cfg.Event.Name
	vals.date = cfg.Event.Date
	vals.startTime = cfg.Event.StartTime
	vals.venue = cfg.Event.Venue
	vals.themeName = theme.Active.Name

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are we celebrating?").
				Placeholder("Leo's 7th Birthday").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("the party needs a name")
					}
					return nil
				}).
				Value(&vals.name),
			huh.NewInput().
				Title("Date").
				Placeholder("2026-02-28").
				Validate(validDate).
				Value(&vals.date),
			huh.NewInput().
				Title("Start time").
				Placeholder("12:00").
				Validate(validClock).
				Value(&vals.startTime),
			huh.NewInput().
				Title("Venue").
				Placeholder("Rocky Island, Balmoral Beach").
				Value(&vals.venue),
		).Title("Welcome to fete!").
			Description("A few details to get the dashboard going. Everything here\ncan be changed later on the Settings tab or with `fete setup`."),

		huh.NewGroup(
			huh.NewInput().
				Title("Admin code").
				Description("Full edit access. Leave both codes blank to skip the login screen.").
				EchoMode(huh.EchoModePassword).
				Value(&vals.adminCode),
			huh.NewInput().
				Title("Guest code").
				Description("RSVP-only view for guests.").
				EchoMode(huh.EchoModePassword).
				Value(&vals.guestCode),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&vals.themeName),
		).Title("Access & looks"),
	).WithWidth(width).WithShowHelp(true)
}

func validDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use HH:MM, 24-hour")
	}
	return nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.setupForm == nil {
		a.needSetup = false
		return a, nil
	}

	model, cmd := a.setupForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		err := a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		if err != nil {
			a.setFlash(fmt.Sprintf("Could not save config: %v", err), true)
		} else {
			a.setFlash("Saved to "+config.Path(), false)
		}
		return a, cmd

	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, cmd
	}

	return a, cmd
}

func (a App) viewSetup() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	body := titleStyle.Render("◈ fete · first run") + "\n\n" + a.setupForm.View()

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

// applySetup writes the collected values to the config file and rebuilds
// the access gate so new codes take effect without a restart.
func (a *App) applySetup() error {
	cfg := a.cfg
	vals := a.setupVals

	if name := strings.TrimSpace(vals.name); name != "" {
		cfg.Event.Name = name
	}
	cfg.Event.Date = strings.TrimSpace(vals.date)
	cfg.Event.StartTime = strings.TrimSpace(vals.startTime)
	cfg.Event.Venue = strings.TrimSpace(vals.venue)

	if code := strings.TrimSpace(vals.adminCode); code != "" {
		if hash, err := access.HashCode(code); err == nil {
			cfg.Access.AdminCode = hash
		}
	}
	if code := strings.TrimSpace(vals.guestCode); code != "" {
		if hash, err := access.HashCode(code); err == nil {
			cfg.Access.GuestCode = hash
		}
	}

	if vals.themeName != "" {
		cfg.Appearance.Theme = vals.themeName
		theme.SetActive(vals.themeName)
	}

	err := config.Save(cfg)

	a.cfg = cfg
	a.gate = access.NewGate(config.GetAdminCode(cfg), config.GetGuestCode(cfg))
	return err
}
