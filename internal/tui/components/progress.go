package components

import (
	"fmt"
	"strings"
	"time"

	"fete/internal/cli"
	"fete/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a plain progress bar with percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	barColor := lipgloss.Color(ColorForPct(pct))

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForPct returns green/yellow/orange/red based on how much of a
// budget line is spent.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetGauge renders a labeled spend bar with amounts: the category name,
// a colored fill against the limit, and "spent / limit" on the right.
func BudgetGauge(label string, spent, limit float64, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if limit > 0 {
		pct = spent / limit
	}
	fill := pct
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Background(t.Surface).Bold(true)
	limitStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	amounts := amountStyle.Render(cli.FormatMoney(spent)) +
		limitStyle.Render(" / "+cli.FormatMoney(limit))
	if limit <= 0 {
		amounts = amountStyle.Render(cli.FormatMoney(spent)) + limitStyle.Render(" tracked")
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		amounts
}

// Countdown formats the time remaining until the event.
func Countdown(d time.Duration) string {
	if d <= 0 {
		return "now"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h >= 24 {
		days := h / 24
		hours := h % 24
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
