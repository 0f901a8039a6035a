package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"fete/internal/access"
	"fete/internal/config"
	"fete/internal/event"
	"fete/internal/sheet"
	"fete/internal/tui/theme"
	"fete/internal/workbook"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)
	ask := func(prompt string) string {
		fmt.Print(prompt)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to fete!")
	fmt.Println()

	// 1. The event itself
	fmt.Println("  1. The event")
	if v := ask(fmt.Sprintf("     Name [%s] > ", cfg.Event.Name)); v != "" {
		cfg.Event.Name = v
	}
	if v := ask(fmt.Sprintf("     Date (YYYY-MM-DD) [%s] > ", cfg.Event.Date)); v != "" {
		if _, err := time.Parse("2006-01-02", v); err == nil {
			cfg.Event.Date = v
		} else {
			fmt.Println("     Didn't parse as a date, keeping the old one.")
		}
	}
	if v := ask(fmt.Sprintf("     Start time (HH:MM) [%s] > ", cfg.Event.StartTime)); v != "" {
		if _, err := time.Parse("15:04", v); err == nil {
			cfg.Event.StartTime = v
		} else {
			fmt.Println("     Didn't parse as a time, keeping the old one.")
		}
	}
	if v := ask(fmt.Sprintf("     Venue [%s] > ", cfg.Event.Venue)); v != "" {
		cfg.Event.Venue = v
	}
	fmt.Println()

	// 2. Where the data lives
	fmt.Println("  2. Sheet connection")
	fmt.Println("     (1) Local workbook file [default]")
	fmt.Println("     (2) Remote sheet bridge (HTTP)")
	switch ask("     > ") {
	case "2":
		cfg.Sheet.Mode = config.ModeBridge
		if v := ask(fmt.Sprintf("     Bridge URL [%s] > ", cfg.Sheet.BridgeURL)); v != "" {
			cfg.Sheet.BridgeURL = v
		}
		if v := ask("     Bearer token (empty keeps current) > "); v != "" {
			cfg.Sheet.Token = v
		}
	default:
		cfg.Sheet.Mode = config.ModeLocal
		if v := ask(fmt.Sprintf("     Workbook path [%s] > ", config.WorkbookPath(cfg))); v != "" {
			cfg.Workbook.Path = v
		}
	}
	fmt.Println()

	// 3. Access codes
	fmt.Println("  3. Access codes")
	fmt.Println("     Leave both empty to skip the login screen entirely.")
	if v := ask("     Admin code (empty clears) > "); v != "" {
		hash, err := access.HashCode(v)
		if err != nil {
			return fmt.Errorf("hashing admin code: %w", err)
		}
		cfg.Access.AdminCode = hash
	} else {
		cfg.Access.AdminCode = ""
	}
	if v := ask("     Guest code (empty clears) > "); v != "" {
		hash, err := access.HashCode(v)
		if err != nil {
			return fmt.Errorf("hashing guest code: %w", err)
		}
		cfg.Access.GuestCode = hash
	} else {
		cfg.Access.GuestCode = ""
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	for i, t := range theme.All {
		def := ""
		if i == 0 {
			def = " [default]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, t.Name, def)
	}
	themeChoice := ask("     > ")
	cfg.Appearance.Theme = theme.All[0].Name
	for i, t := range theme.All {
		if themeChoice == fmt.Sprintf("%d", i+1) {
			cfg.Appearance.Theme = t.Name
		}
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())

	// Local mode: offer to create the worksheets right away.
	if cfg.Sheet.Mode == config.ModeLocal {
		if v := ask("  Create the six worksheets in the workbook now? (Y/n) > "); v == "" || strings.EqualFold(v, "y") || strings.EqualFold(v, "yes") {
			if err := createWorksheets(cfg); err != nil {
				return fmt.Errorf("creating worksheets: %w", err)
			}
			fmt.Printf("  Workbook ready at %s\n", config.WorkbookPath(cfg))
		}
	} else {
		fmt.Println("  Make sure the spreadsheet behind the bridge has these tabs:")
		for _, sc := range event.AllSchemas() {
			fmt.Printf("    - %s\n", sc.Worksheet)
		}
	}

	fmt.Println("  Run `fete setup` anytime to reconfigure, or `fete` to open the dashboard.")
	fmt.Println()

	return nil
}

// createWorksheets bootstraps a local workbook with every worksheet the
// dashboard reads: header rows everywhere, seeded limits in Budget_Config.
func createWorksheets(cfg config.Config) error {
	wb, err := workbook.Open(config.WorkbookPath(cfg))
	if err != nil {
		return err
	}
	defer wb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, sc := range event.AllSchemas() {
		if err := wb.CreateWorksheet(ctx, sc.Worksheet); err != nil {
			return err
		}

		// Keep whatever is already there; only shape empty worksheets.
		existing, err := wb.Read(ctx, sc.Worksheet)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}

		t := sheet.New(sc.Worksheet, sc.Columns)
		if sc.Worksheet == event.SheetBudget {
			event.SeedBudget(t)
		}
		if err := sheet.Save(ctx, wb, t); err != nil {
			return err
		}
	}

	return nil
}
