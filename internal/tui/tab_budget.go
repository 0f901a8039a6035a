package tui

import (
	"fmt"
	"strings"

	"fete/internal/cli"
	"fete/internal/tui/components"
	"fete/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	report := a.report

	var b strings.Builder

	// Row 1: totals
	spentPct := 0.0
	if report.TotalLimit > 0 {
		spentPct = report.TotalSpent / report.TotalLimit
	}
	remaining := report.Remaining()
	remainingColor := t.Green
	if remaining < 0 {
		remainingColor = t.Red
	}
	progressColor := lipgloss.Color(components.ColorForPct(spentPct))

	cards := []components.Metric{
		{Label: "Total Budget", Value: cli.FormatMoney(report.TotalLimit), Note: fmt.Sprintf("%d categories", len(report.Lines))},
		{Label: "Spent", Value: cli.FormatMoney(report.TotalSpent), Color: t.AccentBright},
		{Label: "Remaining", Value: cli.FormatMoney(remaining), Color: remainingColor},
		{Label: "Progress", Value: cli.FormatPercent(spentPct), Color: progressColor},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: per-category gauges
	innerW := components.CardInnerWidth(cw)
	labelW := 14
	barW := innerW - labelW - 24 // money pair on the right
	if barW < 10 {
		barW = 10
	}

	var gaugeBody strings.Builder
	for i, line := range report.Lines {
		gaugeBody.WriteString(components.BudgetGauge(line.Category, line.Actual, line.Limit, labelW, barW))
		if i < len(report.Lines)-1 {
			gaugeBody.WriteString("\n")
		}
	}
	if len(report.Lines) == 0 {
		gaugeBody.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("No budget categories. Press [r] to refresh."))
	}
	b.WriteString(components.ContentCard("Categories", gaugeBody.String(), cw))
	b.WriteString("\n")

	// Row 3: breakdown table
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	spentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	overStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	leftStyle := lipgloss.NewStyle().Foreground(t.Green)
	sourceStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	fixedCols := 10 + 10 + 10 + 8 // Limit, Spent, Left, Source
	gaps := 4
	nameW := innerW - fixedCols - gaps
	if nameW < 14 {
		nameW = 14
	}

	var tableBody strings.Builder
	tableBody.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %10s %10s %10s %8s", nameW, "Category", "Limit", "Spent", "Left", "Source")))
	tableBody.WriteString("\n")
	tableBody.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	tableBody.WriteString("\n")

	for _, line := range report.Lines {
		left := line.Limit - line.Actual
		source := "manual"
		if line.Tracked {
			source = "sheet"
		}

		tableBody.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(line.Category, nameW))))
		tableBody.WriteString(rowStyle.Render(fmt.Sprintf(" %10s", cli.FormatMoney(line.Limit))))
		if line.Over() > 0 {
			tableBody.WriteString(overStyle.Render(fmt.Sprintf(" %10s", cli.FormatMoney(line.Actual))))
			tableBody.WriteString(overStyle.Render(fmt.Sprintf(" %10s", cli.FormatMoney(left))))
		} else {
			tableBody.WriteString(spentStyle.Render(fmt.Sprintf(" %10s", cli.FormatMoney(line.Actual))))
			tableBody.WriteString(leftStyle.Render(fmt.Sprintf(" %10s", cli.FormatMoney(left))))
		}
		tableBody.WriteString(sourceStyle.Render(fmt.Sprintf(" %8s", source)))
		tableBody.WriteString("\n")
	}

	tableBody.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	tableBody.WriteString("\n")
	tableBody.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", nameW, "Total")))
	tableBody.WriteString(rowStyle.Render(fmt.Sprintf(" %10s", cli.FormatMoney(report.TotalLimit))))
	tableBody.WriteString(spentStyle.Render(fmt.Sprintf(" %10s", cli.FormatMoney(report.TotalSpent))))
	tableBody.WriteString(rowStyle.Render(fmt.Sprintf(" %10s", cli.FormatMoney(remaining))))

	b.WriteString(components.ContentCard("Breakdown", tableBody.String(), cw))

	// Row 4: overruns get their own warning card
	var over []string
	for _, line := range report.Lines {
		if line.Over() > 0 {
			over = append(over, fmt.Sprintf("%s is %s over its %s limit",
				line.Category, cli.FormatMoney(line.Over()), cli.FormatMoney(line.Limit)))
		}
	}
	if len(over) > 0 {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		b.WriteString("\n")
		b.WriteString(components.ContentCard("⚠ Over Budget", warnStyle.Render(strings.Join(over, "\n")), cw))
	}

	return b.String()
}
