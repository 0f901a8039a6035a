package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fete/internal/config"
	"fete/internal/event"
	"fete/internal/gateway"
	"fete/internal/sheet"
	"fete/internal/workbook"

	"github.com/spf13/cobra"
)

var (
	flagDemo  bool
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "fete",
	Short: "Party planning dashboard",
	Long:  "Plan the party from your terminal: guests, food, decor, games and budget, all synced to one spreadsheet.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "Use a seeded in-memory sheet instead of the configured one")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// openGateway picks the sheet gateway for the current config. The returned
// mode labels the connection in output; cleanup releases it.
func openGateway(cfg config.Config) (gw gateway.Gateway, mode string, cleanup func(), err error) {
	if flagDemo {
		return gateway.NewMemory(event.DemoWorkbook()), "demo", func() {}, nil
	}

	switch cfg.Sheet.Mode {
	case config.ModeBridge:
		url := config.GetBridgeURL(cfg)
		if url == "" {
			return nil, "", nil, errors.New("sheet mode is bridge but no bridge_url is set; run `fete setup`")
		}
		b := gateway.NewBridge(url, config.GetSheetToken(cfg))
		if b == nil {
			return nil, "", nil, fmt.Errorf("bridge URL %q is not usable; run `fete setup`", url)
		}
		return b, "bridge", func() {}, nil

	default:
		wb, err := workbook.Open(config.WorkbookPath(cfg))
		if err != nil {
			return nil, "", nil, fmt.Errorf("opening workbook: %w", err)
		}
		return wb, "local", func() { wb.Close() }, nil
	}
}

// loadTables pulls the given worksheets, shaping each around its schema.
func loadTables(ctx context.Context, gw gateway.Gateway, schemas []event.Schema) (map[string]*sheet.Table, error) {
	tables := make(map[string]*sheet.Table, len(schemas))
	for _, sc := range schemas {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "\r  Fetching %s...          ", sc.Worksheet)
		}
		t, err := sheet.Load(ctx, gw, sc.Worksheet, sc.Columns)
		if err != nil {
			if !flagQuiet {
				fmt.Fprintln(os.Stderr)
			}
			return nil, err
		}
		tables[sc.Worksheet] = t
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "\r%s\r", "                                ")
	}
	return tables, nil
}

// gatewayHint turns common gateway failures into setup guidance.
func gatewayHint(err error) string {
	switch {
	case errors.Is(err, gateway.ErrWorksheetNotFound):
		return "A worksheet is missing. Run `fete setup` to create the full set."
	case errors.Is(err, gateway.ErrUnauthorized):
		return "The sheet rejected the token. Check FETE_SHEET_TOKEN or run `fete setup`."
	case errors.Is(err, gateway.ErrRateLimited):
		return "The sheet is rate limiting requests. Wait a minute and retry."
	}
	return ""
}
