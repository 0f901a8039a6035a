package tui

import (
	"fmt"
	"strings"

	"fete/internal/cli"
	"fete/internal/event"
	"fete/internal/metrics"
	"fete/internal/tui/components"
	"fete/internal/tui/theme"
)

func (a App) renderDecorTab(cw, h int) string {
	t := theme.Active
	decor := a.tables[event.SheetDecor]

	var b strings.Builder

	cost := metrics.SumColumn(decor, event.ColCost)
	counts := map[string]int{}
	if decor != nil {
		for i := 0; i < decor.Len(); i++ {
			status := strings.TrimSpace(decor.Cell(i, event.ColStatus))
			counts[status]++
		}
	}

	cards := []components.Metric{
		{Label: "To Buy", Value: fmt.Sprintf("%d", counts[event.StatusToBuy]), Color: t.Orange},
		{Label: "Purchased", Value: fmt.Sprintf("%d", counts[event.StatusPurchased]), Color: t.Green},
		{Label: "Owned", Value: fmt.Sprintf("%d", counts[event.StatusOwned]), Color: t.Blue},
		{Label: "Decor Spend", Value: cli.FormatMoney(cost), Note: "from Cost column", Color: t.AccentBright},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	title := fmt.Sprintf("Decor  ·  statuses: %s", strings.Join(event.DecorStatuses, " / "))
	b.WriteString(a.renderGrid(a.decor, title, cw, h-6))

	return b.String()
}
