package cmd

import (
	"fmt"

	"fete/internal/config"
	"fete/internal/export"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the printable party summary",
	Long: "Export renders the fixed invitation-style summary with the event\n" +
		"name, date, and venue filled in, and writes it as a markdown file.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "party-summary.md", "Output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	if err := export.Write(flagExportOut, cfg.Event); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", flagExportOut)
	return nil
}
