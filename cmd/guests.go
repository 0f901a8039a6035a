package cmd

import (
	"context"
	"fmt"
	"time"

	"fete/internal/cli"
	"fete/internal/config"
	"fete/internal/event"
	"fete/internal/metrics"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var guestsCmd = &cobra.Command{
	Use:   "guests",
	Short: "Print the guest list with RSVP state",
	RunE:  runGuests,
}

func init() {
	rootCmd.AddCommand(guestsCmd)
}

func runGuests(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	gw, _, cleanup, err := openGateway(cfg)
	if err != nil {
		if hint := gatewayHint(err); hint != "" {
			return fmt.Errorf("%w\n  %s", err, hint)
		}
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tables, err := loadTables(ctx, gw, []event.Schema{event.Guests})
	if err != nil {
		if hint := gatewayHint(err); hint != "" {
			return fmt.Errorf("%w\n  %s", err, hint)
		}
		return err
	}

	table := tables[event.SheetGuests]
	guests := event.GuestsFrom(table)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GUESTS  ·  %s", cfg.Event.Name)))
	fmt.Println()

	if len(guests) == 0 {
		fmt.Println("  No families on the list yet. Add them in the dashboard.")
		fmt.Println()
		return nil
	}

	confirmedStyle := lipgloss.NewStyle().Foreground(cli.ColorGreen)
	pendingStyle := lipgloss.NewStyle().Foreground(cli.ColorOrange)
	noStyle := lipgloss.NewStyle().Foreground(cli.ColorTextDim)

	rows := make([][]string, 0, len(guests))
	for _, g := range guests {
		rsvp := g.RSVP
		switch {
		case g.Confirmed():
			rsvp = confirmedStyle.Render(rsvp)
		case rsvp == "" || rsvp == event.RSVPPending:
			if rsvp == "" {
				rsvp = "?"
			}
			rsvp = pendingStyle.Render(rsvp)
		default:
			rsvp = noStyle.Render(rsvp)
		}

		rows = append(rows, []string{
			g.Family,
			fmt.Sprintf("%d", g.Adults),
			fmt.Sprintf("%d", g.Children),
			rsvp,
			g.Dietary,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Family", "Adults", "Kids", "RSVP", "Dietary"},
		Rows:    rows,
	}))

	adults, children := metrics.Headcount(table)
	confirmed := metrics.ConfirmedCount(table)

	fmt.Printf("  %s\n", cli.FormatHeadcount(adults, children))
	fmt.Printf("  %d of %d families confirmed · order %d pizza boxes\n",
		confirmed, len(guests), metrics.PizzaBoxes(confirmed))
	fmt.Println()

	return nil
}
