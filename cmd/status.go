package cmd

import (
	"context"
	"fmt"
	"time"

	"fete/internal/cli"
	"fete/internal/config"
	"fete/internal/event"
	"fete/internal/sheet"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the sheet connection and worksheets",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println(cli.RenderTitle("FETE STATUS"))
	fmt.Println()

	// Config
	configState := "missing (defaults in effect)"
	if config.Exists() {
		configState = "found"
	}

	target := config.WorkbookPath(cfg)
	if flagDemo {
		target = "seeded demo data"
	} else if cfg.Sheet.Mode == config.ModeBridge {
		target = config.GetBridgeURL(cfg)
		if target == "" {
			target = "(no bridge_url set)"
		}
	}

	gateState := "open (no codes, sessions start as admin)"
	admin := config.GetAdminCode(cfg) != ""
	guest := config.GetGuestCode(cfg) != ""
	switch {
	case admin && guest:
		gateState = "admin and guest codes set"
	case admin:
		gateState = "admin code only"
	case guest:
		gateState = "guest code only"
	}

	mode := cfg.Sheet.Mode
	if flagDemo {
		mode = "demo"
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Configuration",
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Config file", configState + "  " + config.Path()},
			{"Event", cfg.Event.Name},
			{"Sheet mode", mode},
			{"Sheet target", target},
			{"Access gate", gateState},
		},
	}))

	// Connection + worksheets
	gw, _, cleanup, err := openGateway(cfg)
	if err != nil {
		warnStyle := lipgloss.NewStyle().Foreground(cli.ColorOrange)
		fmt.Printf("  %s\n", warnStyle.Render(fmt.Sprintf("Can't open the sheet: %s", err)))
		if hint := gatewayHint(err); hint != "" {
			fmt.Printf("  %s\n", hint)
		}
		fmt.Println()
		return nil
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	okStyle := lipgloss.NewStyle().Foreground(cli.ColorGreen)
	badStyle := lipgloss.NewStyle().Foreground(cli.ColorRed)

	rows := [][]string{}
	missing := 0
	for _, sc := range event.AllSchemas() {
		t, err := sheet.Load(ctx, gw, sc.Worksheet, sc.Columns)
		if err != nil {
			rows = append(rows, []string{sc.Worksheet, "-", badStyle.Render("missing")})
			missing++
			continue
		}
		rows = append(rows, []string{sc.Worksheet, fmt.Sprintf("%d", t.Len()), okStyle.Render("ok")})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Worksheets",
		Headers: []string{"Worksheet", "Rows", "State"},
		Rows:    rows,
	}))

	if missing > 0 {
		fmt.Printf("  %d worksheet(s) missing. Run `fete setup` to create them", missing)
		if cfg.Sheet.Mode == config.ModeBridge && !flagDemo {
			fmt.Print(" (bridge mode: add the tabs in the spreadsheet itself)")
		}
		fmt.Println(".")
		fmt.Println()
	}

	return nil
}
