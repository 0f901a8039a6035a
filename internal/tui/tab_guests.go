package tui

import (
	"fmt"
	"strings"

	"fete/internal/access"
	"fete/internal/event"
	"fete/internal/metrics"
	"fete/internal/tui/components"
	"fete/internal/tui/theme"
)

func (a App) renderGuestsTab(cw, h int) string {
	t := theme.Active
	guests := a.tables[event.SheetGuests]

	var b strings.Builder

	adults, children := metrics.Headcount(guests)
	confirmed := metrics.ConfirmedCount(guests)
	families := 0
	dietary := 0
	if guests != nil {
		families = guests.Len()
		for i := 0; i < guests.Len(); i++ {
			if strings.TrimSpace(guests.Cell(i, event.ColDietary)) != "" {
				dietary++
			}
		}
	}

	cards := []components.Metric{
		{Label: "Families", Value: fmt.Sprintf("%d", families)},
		{Label: "Confirmed", Value: fmt.Sprintf("%d", confirmed), Note: fmt.Sprintf("of %d", families), Color: t.Green},
		{Label: "Headcount", Value: fmt.Sprintf("%d", adults+children), Note: fmt.Sprintf("%d + %d kids", adults, children), Color: t.Blue},
		{Label: "Dietary", Value: fmt.Sprintf("%d", dietary), Note: "have notes", Color: t.Yellow},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	title := "Guest List"
	if a.sess.Role != access.RoleAdmin {
		title = "Guest List (RSVPs only)"
	}
	b.WriteString(a.renderGrid(a.guests, title, cw, h-6))

	return b.String()
}
