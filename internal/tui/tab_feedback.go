package tui

import (
	"fmt"
	"strings"

	"fete/internal/event"
	"fete/internal/tui/components"
	"fete/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// feedbackValues collects the form fields; huh binds directly to them.
type feedbackValues struct {
	name     string
	rating   int
	comments string
}

// feedbackState holds the embedded feedback form when it is open.
type feedbackState struct {
	form   *huh.Form
	values *feedbackValues
	active bool
}

func newFeedbackForm(vals *feedbackValues, width int) *huh.Form {
	ratings := make([]huh.Option[int], 0, 5)
	for i := 5; i >= 1; i-- {
		ratings = append(ratings, huh.NewOption(strings.Repeat("★", i), i))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Anonymous").
				Value(&vals.name),
			huh.NewSelect[int]().
				Title("Rating").
				Options(ratings...).
				Value(&vals.rating),
			huh.NewText().
				Title("Comments").
				CharLimit(500).
				Value(&vals.comments),
		),
	).WithWidth(width).WithShowHelp(true)
}

func (a App) openFeedbackForm() (tea.Model, tea.Cmd) {
	vals := &feedbackValues{rating: 5}
	form := newFeedbackForm(vals, formWidth(a.width))
	a.feedback = feedbackState{form: form, values: vals, active: true}
	return a, form.Init()
}

func (a App) updateFeedbackForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.feedback.form == nil {
		a.feedback.active = false
		return a, nil
	}

	model, cmd := a.feedback.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		a.feedback.form = f
	}

	switch a.feedback.form.State {
	case huh.StateCompleted:
		vals := a.feedback.values
		a.feedback = feedbackState{}

		table := a.tables[event.SheetFeedback]
		if table == nil {
			a.setFlash("Feedback sheet isn't loaded yet. Press [r] first.", true)
			return a, cmd
		}
		event.AppendFeedback(table, event.FeedbackEntry{
			Name:     vals.name,
			Rating:   vals.rating,
			Comments: vals.comments,
		})
		a.saving = true
		return a, tea.Batch(cmd, saveSheetCmd(a.gw, table))

	case huh.StateAborted:
		a.feedback = feedbackState{}
		return a, cmd
	}

	return a, cmd
}

func (a App) renderFeedbackTab(cw int) string {
	t := theme.Active
	table := a.tables[event.SheetFeedback]

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	starStyle := lipgloss.NewStyle().Foreground(t.Yellow)
	commentStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder

	entries := []event.FeedbackEntry{}
	if table != nil {
		entries = event.FeedbackFrom(table)
	}

	// Row 1: how the party is landing
	avg := 0.0
	for _, e := range entries {
		avg += float64(e.Rating)
	}
	if len(entries) > 0 {
		avg /= float64(len(entries))
	}

	avgValue := "-"
	if len(entries) > 0 {
		avgValue = fmt.Sprintf("%.1f ★", avg)
	}
	cards := []components.Metric{
		{Label: "Entries", Value: fmt.Sprintf("%d", len(entries))},
		{Label: "Average", Value: avgValue, Color: t.Yellow},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: the open form, or the feedback wall
	if a.feedback.active && a.feedback.form != nil {
		b.WriteString(components.ContentCard("Leave Feedback", a.feedback.form.View(), cw))
		return b.String()
	}

	var wall strings.Builder
	if len(entries) == 0 {
		wall.WriteString(dimStyle.Render("No feedback yet. Be the first!"))
		wall.WriteString("\n")
	}
	innerW := components.CardInnerWidth(cw)
	for i := len(entries) - 1; i >= 0; i-- { // newest first
		e := entries[i]
		stars := e.Rating
		if stars < 0 {
			stars = 0
		}
		if stars > 5 {
			stars = 5
		}
		wall.WriteString(nameStyle.Render(e.Name))
		wall.WriteString("  ")
		wall.WriteString(starStyle.Render(strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)))
		wall.WriteString("\n")
		if e.Comments != "" {
			wall.WriteString(commentStyle.Render(truncStr(e.Comments, innerW-2)))
			wall.WriteString("\n")
		}
		if i > 0 {
			wall.WriteString("\n")
		}
	}
	wall.WriteString("\n")
	wall.WriteString(dimStyle.Render("[Enter] leave feedback"))

	b.WriteString(components.ContentCard("Feedback Wall", wall.String(), cw))
	return b.String()
}
