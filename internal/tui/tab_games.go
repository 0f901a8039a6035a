package tui

import (
	"fmt"
	"strings"

	"fete/internal/access"
	"fete/internal/event"
	"fete/internal/tui/components"
	"fete/internal/tui/theme"
)

func (a App) renderGamesTab(cw, h int) string {
	t := theme.Active
	games := a.tables[event.SheetGames]

	var b strings.Builder

	planned := 0
	decided := 0
	if games != nil {
		planned = games.Len()
		for i := 0; i < games.Len(); i++ {
			if strings.TrimSpace(games.Cell(i, event.ColWinner)) != "" {
				decided++
			}
		}
	}

	cards := []components.Metric{
		{Label: "Games", Value: fmt.Sprintf("%d", planned)},
		{Label: "Winners In", Value: fmt.Sprintf("%d", decided), Note: fmt.Sprintf("of %d", planned), Color: t.Magenta},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	title := "Games & Activities"
	if a.sess.Role != access.RoleAdmin {
		title = "Games & Activities (view only)"
	}
	b.WriteString(a.renderGrid(a.games, title, cw, h-6))

	return b.String()
}
