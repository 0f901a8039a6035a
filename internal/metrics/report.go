package metrics

import (
	"fete/internal/event"
	"fete/internal/sheet"
)

// LineStatus is one budget category's spend against its limit.
type LineStatus struct {
	Category string
	Limit    float64
	Actual   float64
	Tracked  bool // Actual comes from a live worksheet total, not Manual_Cost
}

// Ratio is the category's fill level for a progress bar.
func (l LineStatus) Ratio() float64 {
	return ProgressRatio(l.Actual, l.Limit)
}

// Over returns how far past the limit this line is, zero if within it.
func (l LineStatus) Over() float64 {
	if l.Actual > l.Limit {
		return l.Actual - l.Limit
	}
	return 0
}

// Report is the whole-budget rollup shown on the Budget page and by
// `fete summary`.
type Report struct {
	Lines      []LineStatus
	TotalLimit float64
	TotalSpent float64
}

// Remaining is TotalLimit - TotalSpent; negative when over budget.
func (r Report) Remaining() float64 {
	return Remaining(r.TotalLimit, r.TotalSpent)
}

// BuildReport computes spend per budget line. Food & Drinks tracks the
// Food sheet's Total column and Decoration tracks the Decor sheet's Cost
// column; every other category spends whatever its Manual_Cost says.
// Tables the caller could not load may be nil and contribute zero.
func BuildReport(budget, food, decor *sheet.Table) Report {
	var r Report
	if budget == nil {
		return r
	}

	foodTotal := 0.0
	if food != nil {
		foodTotal = SumColumn(food, event.ColTotal)
	}
	decorTotal := 0.0
	if decor != nil {
		decorTotal = SumColumn(decor, event.ColCost)
	}

	for i := 0; i < budget.Len(); i++ {
		line := LineStatus{
			Category: budget.Cell(i, event.ColCategory),
			Limit:    budget.Number(i, event.ColLimit),
		}

		switch line.Category {
		case event.CategoryFood:
			line.Actual = foodTotal
			line.Tracked = true
		case event.CategoryDecoration:
			line.Actual = decorTotal
			line.Tracked = true
		default:
			line.Actual = budget.Number(i, event.ColManualCost)
		}

		r.Lines = append(r.Lines, line)
		r.TotalLimit += line.Limit
		r.TotalSpent += line.Actual
	}

	return r
}
