package cmd

import (
	"context"
	"fmt"
	"time"

	"fete/internal/cli"
	"fete/internal/config"
	"fete/internal/event"
	"fete/internal/metrics"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Budget and headcount summary",
	RunE:  runBudgetSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runBudgetSummary(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	gw, _, cleanup, err := openGateway(cfg)
	if err != nil {
		if hint := gatewayHint(err); hint != "" {
			return fmt.Errorf("%w\n  %s", err, hint)
		}
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	tables, err := loadTables(ctx, gw, []event.Schema{event.Budget, event.Food, event.Decor, event.Guests})
	if err != nil {
		if hint := gatewayHint(err); hint != "" {
			return fmt.Errorf("%w\n  %s", err, hint)
		}
		return err
	}

	budget := tables[event.SheetBudget]
	event.SeedBudget(budget)
	report := metrics.BuildReport(budget, tables[event.SheetFood], tables[event.SheetDecor])

	guests := tables[event.SheetGuests]
	adults, children := metrics.Headcount(guests)
	confirmed := metrics.ConfirmedCount(guests)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  ·  %s", cfg.Event.Name, cfg.Event.Date)))
	fmt.Println()

	// Budget table with per-category bars
	rows := [][]string{}
	for _, line := range report.Lines {
		rows = append(rows, []string{
			line.Category,
			cli.FormatMoney(line.Actual),
			cli.RenderBudgetBar(line.Actual, line.Limit, 20),
			cli.FormatMoney(line.Limit),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatMoney(report.TotalSpent),
		cli.RenderBudgetBar(report.TotalSpent, report.TotalLimit, 20),
		cli.FormatMoney(report.TotalLimit),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget",
		Headers: []string{"Category", "Spent", "", "Limit"},
		Rows:    rows,
	}))

	remaining := report.Remaining()
	if remaining >= 0 {
		fmt.Printf("  %s left to spend.\n", cli.FormatMoney(remaining))
	} else {
		fmt.Printf("  Over budget by %s.\n", cli.FormatMoney(-remaining))
	}
	fmt.Println()

	// Headcount
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Guests",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Families", fmt.Sprintf("%d", guests.Len())},
			{"Confirmed", fmt.Sprintf("%d", confirmed)},
			{"Headcount", cli.FormatHeadcount(adults, children)},
			{"Pizza boxes", fmt.Sprintf("%d", metrics.PizzaBoxes(confirmed))},
		},
	}))

	return nil
}
