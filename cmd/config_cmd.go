package cmd

import (
	"fmt"

	"fete/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Event]")
	fmt.Printf("    Name:  %s\n", cfg.Event.Name)
	fmt.Printf("    Date:  %s at %s\n", cfg.Event.Date, cfg.Event.StartTime)
	fmt.Printf("    Venue: %s\n", cfg.Event.Venue)
	if cfg.Event.RainPlan != "" {
		fmt.Printf("    Plan B: %s\n", cfg.Event.RainPlan)
	}
	if cfg.Event.Latitude != 0 || cfg.Event.Longitude != 0 {
		fmt.Printf("    Pin:   %.4f, %.4f\n", cfg.Event.Latitude, cfg.Event.Longitude)
	}
	fmt.Println()

	fmt.Println("  [Sheet]")
	fmt.Printf("    Mode: %s\n", cfg.Sheet.Mode)
	switch cfg.Sheet.Mode {
	case config.ModeBridge:
		url := config.GetBridgeURL(cfg)
		if url != "" {
			fmt.Printf("    Bridge URL: %s\n", url)
		} else {
			fmt.Println("    Bridge URL: not configured")
		}
		token := config.GetSheetToken(cfg)
		if token != "" {
			fmt.Printf("    Token: %s\n", maskSecret(token))
		} else {
			fmt.Println("    Token: not configured")
		}
	default:
		fmt.Printf("    Workbook: %s\n", config.WorkbookPath(cfg))
	}
	fmt.Println()

	fmt.Println("  [Access]")
	if config.GetAdminCode(cfg) != "" {
		fmt.Println("    Admin code: set")
	} else {
		fmt.Println("    Admin code: not set")
	}
	if config.GetGuestCode(cfg) != "" {
		fmt.Println("    Guest code: set")
	} else {
		fmt.Println("    Guest code: not set")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `fete setup` to reconfigure.")
	return nil
}

func maskSecret(s string) string {
	if len(s) > 16 {
		return s[:8] + "..." + s[len(s)-4:]
	}
	if len(s) > 4 {
		return s[:4] + "..."
	}
	return "****"
}
