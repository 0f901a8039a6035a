package event

import (
	"strings"

	"fete/internal/sheet"
)

// Guest is one family's row in the Guests worksheet.
type Guest struct {
	Family   string
	Adults   int
	Children int
	Ages     string
	Dietary  string
	RSVP     string
}

// GuestsFrom reads typed guests out of a Guests table. Counts coerce
// non-numeric cells to zero rather than failing.
func GuestsFrom(t *sheet.Table) []Guest {
	out := make([]Guest, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, Guest{
			Family:   t.Cell(i, ColFamily),
			Adults:   int(t.Number(i, ColAdults)),
			Children: int(t.Number(i, ColChildren)),
			Ages:     t.Cell(i, ColAges),
			Dietary:  t.Cell(i, ColDietary),
			RSVP:     t.Cell(i, ColRSVP),
		})
	}
	return out
}

// Confirmed reports whether this guest's RSVP counts as confirmed.
func (g Guest) Confirmed() bool {
	return strings.EqualFold(strings.TrimSpace(g.RSVP), "confirmed")
}

// FoodItem is one row of the Food worksheet.
type FoodItem struct {
	Item     string
	Owner    string
	Sourcing string
	Price    float64
	Quantity float64
	Total    float64
}

// FoodItemsFrom reads typed food items out of a Food table.
func FoodItemsFrom(t *sheet.Table) []FoodItem {
	out := make([]FoodItem, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, FoodItem{
			Item:     t.Cell(i, ColItem),
			Owner:    t.Cell(i, ColOwner),
			Sourcing: t.Cell(i, ColSourcing),
			Price:    t.Number(i, ColPrice),
			Quantity: t.Number(i, ColQuantity),
			Total:    t.Number(i, ColTotal),
		})
	}
	return out
}

// DecorItem is one row of the Decor worksheet.
type DecorItem struct {
	Item   string
	Theme  string
	Status string
	Cost   float64
}

// DecorItemsFrom reads typed decor items out of a Decor table.
func DecorItemsFrom(t *sheet.Table) []DecorItem {
	out := make([]DecorItem, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, DecorItem{
			Item:   t.Cell(i, ColItem),
			Theme:  t.Cell(i, ColTheme),
			Status: t.Cell(i, ColStatus),
			Cost:   t.Number(i, ColCost),
		})
	}
	return out
}

// BudgetLine is one row of the Budget_Config worksheet. Category is a
// free-text match key; lookups scan rows in order and the first match wins.
type BudgetLine struct {
	Category   string
	Limit      float64
	ManualCost float64
}

// BudgetLinesFrom reads typed budget lines out of a Budget_Config table.
func BudgetLinesFrom(t *sheet.Table) []BudgetLine {
	out := make([]BudgetLine, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, BudgetLine{
			Category:   t.Cell(i, ColCategory),
			Limit:      t.Number(i, ColLimit),
			ManualCost: t.Number(i, ColManualCost),
		})
	}
	return out
}

// FeedbackEntry is one row of the Feedback worksheet. Append-only.
type FeedbackEntry struct {
	Name     string
	Rating   int
	Comments string
}

// FeedbackFrom reads typed feedback entries out of a Feedback table.
func FeedbackFrom(t *sheet.Table) []FeedbackEntry {
	out := make([]FeedbackEntry, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, FeedbackEntry{
			Name:     t.Cell(i, ColName),
			Rating:   int(t.Number(i, ColRating)),
			Comments: t.Cell(i, ColComments),
		})
	}
	return out
}

// AppendFeedback adds an entry to a Feedback table, applying the form
// defaults: blank names become "Anonymous", an unset rating means 5, and
// out-of-range ratings clamp to 1..5.
func AppendFeedback(t *sheet.Table, e FeedbackEntry) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		name = "Anonymous"
	}
	rating := e.Rating
	switch {
	case rating == 0:
		rating = 5
	case rating < 1:
		rating = 1
	case rating > 5:
		rating = 5
	}

	i := t.AppendRow()
	t.SetCell(i, ColName, name)
	t.SetCell(i, ColRating, sheet.FormatNumber(float64(rating)))
	t.SetCell(i, ColComments, e.Comments)
}
