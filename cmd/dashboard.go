package cmd

import (
	"fmt"

	"fete/internal/access"
	"fete/internal/config"
	"fete/internal/logging"
	"fete/internal/tui"
	"fete/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive dashboard (the default)",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	firstRun := !config.Exists()

	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so background styling always produces ANSI codes;
	// lipgloss may otherwise fall back to an uncolored profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	gw, mode, cleanup, err := openGateway(cfg)
	if err != nil {
		if hint := gatewayHint(err); hint != "" {
			return fmt.Errorf("%w\n  %s", err, hint)
		}
		return err
	}
	defer cleanup()

	// The TUI owns the terminal; logs go to a file instead of stderr.
	if stop, err := logging.SetupFile(config.LogPath()); err == nil {
		defer stop()
	}

	gate := access.NewGate(config.GetAdminCode(cfg), config.GetGuestCode(cfg))

	app := tui.NewApp(cfg, gw, gate, mode)
	if firstRun && !flagDemo {
		app = app.WithFirstRunSetup()
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	return nil
}
