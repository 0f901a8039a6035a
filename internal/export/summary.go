// Package export renders the printable party summary. The text is fixed;
// only the event's name, date, and location flow in. Anything else on the
// dashboard (budgets, guest lists) deliberately stays out of the handout.
package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"fete/internal/config"
)

const header = "You're Invited!"

const closing = "We can't wait to celebrate with you. RSVP via your invitation\n" +
	"so we can save you a seat. See you there!"

// Summary renders the invitation-style summary document.
func Summary(ev config.EventConfig) string {
	var b strings.Builder

	b.WriteString("# " + header + "\n\n")
	b.WriteString("**" + ev.Name + "**\n\n")
	b.WriteString(fmt.Sprintf("- When: %s\n", formatWhen(ev.Date, ev.StartTime)))
	b.WriteString(fmt.Sprintf("- Where: %s\n", ev.Venue))
	b.WriteString("\n" + closing + "\n")

	return b.String()
}

// Write saves the summary document to path.
func Write(path string, ev config.EventConfig) error {
	if err := os.WriteFile(path, []byte(Summary(ev)), 0o644); err != nil {
		return fmt.Errorf("export: writing summary: %w", err)
	}
	return nil
}

// formatWhen renders "Saturday, 28 February 2026 at 12:00", falling back
// to the raw strings when the config holds something unparseable.
func formatWhen(date, start string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		if start == "" {
			return date
		}
		return date + " at " + start
	}

	when := d.Format("Monday, 2 January 2006")
	if start != "" {
		when += " at " + start
	}
	return when
}
