// Package metrics derives the dashboard numbers from loaded tables:
// headcounts, pizza boxes, per-category spend against limits, remaining
// budget. Everything is pure and recomputed from fresh tables on every
// load; nothing is cached, so nothing needs invalidating.
package metrics

import (
	"strings"

	"fete/internal/event"
	"fete/internal/sheet"
)

// Catering rule for the pizza estimate.
const (
	SlicesPerPerson = 3
	SlicesPerBox    = 8
)

// SumColumn totals a column. Non-numeric and missing cells count as zero;
// a nil or empty table sums to zero.
func SumColumn(t *sheet.Table, column string) float64 {
	if t == nil {
		return 0
	}
	var sum float64
	for i := 0; i < t.Len(); i++ {
		sum += t.Number(i, column)
	}
	return sum
}

// CategoryAmount returns the numeric value of column in the first row
// whose Category cell equals category exactly (case-sensitive). No match
// returns 0; that is the documented default, not an error.
func CategoryAmount(t *sheet.Table, category, column string) float64 {
	if t == nil {
		return 0
	}
	for i := 0; i < t.Len(); i++ {
		if t.Cell(i, event.ColCategory) == category {
			return t.Number(i, column)
		}
	}
	return 0
}

// ProgressRatio maps spend against a limit onto [0, 1]. A non-positive
// limit has no meaningful ratio and reports 0 rather than dividing by zero.
func ProgressRatio(current, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	r := current / limit
	if r > 1 {
		return 1
	}
	return r
}

// Remaining is what's left of the total budget. Negative means over.
func Remaining(totalLimit, totalSpent float64) float64 {
	return totalLimit - totalSpent
}

// PizzaBoxes estimates boxes to order for the confirmed families:
// ceil(confirmed * SlicesPerPerson / SlicesPerBox), true ceiling division.
func PizzaBoxes(confirmed int) int {
	if confirmed <= 0 {
		return 0
	}
	return (confirmed*SlicesPerPerson + SlicesPerBox - 1) / SlicesPerBox
}

// ConfirmedCount counts rows whose RSVP cell, trimmed and case-normalized,
// equals "confirmed". A nil table counts zero.
func ConfirmedCount(t *sheet.Table) int {
	if t == nil {
		return 0
	}
	n := 0
	for i := 0; i < t.Len(); i++ {
		if strings.EqualFold(strings.TrimSpace(t.Cell(i, event.ColRSVP)), "confirmed") {
			n++
		}
	}
	return n
}

// Headcount sums the Adults and Children columns across all guest rows.
func Headcount(t *sheet.Table) (adults, children int) {
	return int(SumColumn(t, event.ColAdults)), int(SumColumn(t, event.ColChildren))
}

// ReconcileTotals rewrites each Food row's Total as Quantity*Price, but
// only where both are positive; anything else keeps whatever Total it had,
// stale or blank. Returns how many cells actually changed.
func ReconcileTotals(t *sheet.Table) int {
	if t == nil {
		return 0
	}
	changed := 0
	for i := 0; i < t.Len(); i++ {
		q := t.Number(i, event.ColQuantity)
		p := t.Number(i, event.ColPrice)
		if q <= 0 || p <= 0 {
			continue
		}
		want := sheet.FormatNumber(q * p)
		if t.Cell(i, event.ColTotal) != want {
			t.SetCell(i, event.ColTotal, want)
			changed++
		}
	}
	return changed
}
