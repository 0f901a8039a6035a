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

func (a App) renderFoodTab(cw, h int) string {
	t := theme.Active
	food := a.tables[event.SheetFood]
	guests := a.tables[event.SheetGuests]

	var b strings.Builder

	total := metrics.SumColumn(food, event.ColTotal)
	items := 0
	if food != nil {
		items = food.Len()
	}

	confirmed := metrics.ConfirmedCount(guests)
	boxes := metrics.PizzaBoxes(confirmed)

	cards := []components.Metric{
		{Label: "Food Spend", Value: cli.FormatMoney(total), Note: "from Total column", Color: t.AccentBright},
		{Label: "Items", Value: fmt.Sprintf("%d", items)},
		{Label: "Pizza Boxes", Value: fmt.Sprintf("%d", boxes), Note: fmt.Sprintf("%d confirmed × 3 slices", confirmed), Color: t.Orange},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(a.renderGrid(a.food, "Food & Drinks  ·  [t] recalc totals", cw, h-6))

	return b.String()
}
