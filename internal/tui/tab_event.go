package tui

import (
	"fmt"
	"strings"
	"time"

	"fete/internal/access"
	"fete/internal/cli"
	"fete/internal/config"
	"fete/internal/event"
	"fete/internal/metrics"
	"fete/internal/tui/components"
	"fete/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// eventTime parses the configured date and start time into a local time.
// A missing or malformed date yields the zero time.
func eventTime(ev config.EventConfig) time.Time {
	layout := "2006-01-02 15:04"
	raw := ev.Date + " " + ev.StartTime
	if ev.StartTime == "" {
		layout = "2006-01-02"
		raw = ev.Date
	}
	t, err := time.ParseInLocation(layout, raw, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (a App) renderEventTab(cw int) string {
	t := theme.Active
	ev := a.cfg.Event
	guests := a.tables[event.SheetGuests]

	var b strings.Builder

	// Row 1: headline metric cards
	when := eventTime(ev)
	countdownValue := "unscheduled"
	countdownNote := ""
	if !when.IsZero() {
		until := time.Until(when)
		switch {
		case until > 0:
			countdownValue = components.Countdown(until)
			countdownNote = when.Format("Mon Jan 2")
		case time.Since(when) < 12*time.Hour:
			countdownValue = "today!"
			countdownNote = when.Format("3:04 PM")
		default:
			countdownValue = "wrapped up"
			countdownNote = when.Format("Mon Jan 2")
		}
	}

	confirmed := metrics.ConfirmedCount(guests)
	adults, children := metrics.Headcount(guests)
	remaining := a.report.Remaining()

	remainingColor := t.Green
	if remaining < 0 {
		remainingColor = t.Red
	}

	cards := []components.Metric{
		{Label: "Countdown", Value: countdownValue, Note: countdownNote, Color: t.AccentBright},
		{Label: "Confirmed", Value: fmt.Sprintf("%d", confirmed), Note: "families", Color: t.Green},
		{Label: "Headcount", Value: fmt.Sprintf("%d", adults+children), Note: fmt.Sprintf("%d adults, %d kids", adults, children), Color: t.Blue},
		{Label: "Budget Left", Value: cli.FormatMoney(remaining), Note: "of " + cli.FormatMoney(a.report.TotalLimit), Color: remainingColor},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: where and when / plan B
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	detail := func(label, value string) string {
		if value == "" {
			return ""
		}
		return labelStyle.Render(fmt.Sprintf("%-10s", label)) + " " + valueStyle.Render(value) + "\n"
	}

	var whenBody strings.Builder
	whenBody.WriteString(detail("Date", ev.Date))
	whenBody.WriteString(detail("Time", ev.StartTime))
	whenBody.WriteString(detail("Venue", ev.Venue))
	if ev.Latitude != 0 || ev.Longitude != 0 {
		whenBody.WriteString(detail("Pin", fmt.Sprintf("%.4f, %.4f", ev.Latitude, ev.Longitude)))
	}

	var planBody strings.Builder
	planBody.WriteString(detail("Rain plan", ev.RainPlan))
	planBody.WriteString(detail("Parking", ev.Parking))
	if ev.ForecastNote != "" {
		planBody.WriteString(dimStyle.Render(ev.ForecastNote))
		planBody.WriteString("\n")
	}
	if planBody.Len() == 0 {
		planBody.WriteString(dimStyle.Render("No contingency notes yet."))
		planBody.WriteString("\n")
	}

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Where & When", whenBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Plan B", planBody.String(), cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		whenCard := components.ContentCard("Where & When", whenBody.String(), halves[0])
		planCard := components.ContentCard("Plan B", planBody.String(), halves[1])
		b.WriteString(components.CardRow([]string{whenCard, planCard}))
	}
	b.WriteString("\n")

	// Row 3: RSVP progress against the invite list
	if guests != nil && guests.Len() > 0 {
		pct := float64(confirmed) / float64(guests.Len())
		barW := components.CardInnerWidth(cw) - 24
		if barW < 10 {
			barW = 10
		}
		rsvpBody := components.ProgressBar(pct, barW) + "\n" +
			labelStyle.Render(fmt.Sprintf("%d of %d families confirmed", confirmed, guests.Len()))
		b.WriteString(components.ContentCard("RSVPs", rsvpBody, cw))
		b.WriteString("\n")
	}

	if a.sess.Role == access.RoleAdmin {
		b.WriteString(dimStyle.Render(" [E] export summary  ·  edit details on the Settings tab  ·  [?] keys"))
	}

	return b.String()
}
