package event

import "fete/internal/sheet"

// DefaultBudgetLines returns the starter categories written into an empty
// Budget_Config worksheet. The first two track live totals from the Food
// and Decor sheets; the rest are manual-cost lines.
func DefaultBudgetLines() []BudgetLine {
	return []BudgetLine{
		{Category: CategoryFood, Limit: 800},
		{Category: CategoryVenue, Limit: 500},
		{Category: CategoryDecoration, Limit: 300},
		{Category: CategoryGames, Limit: 100},
		{Category: CategoryInvitations, Limit: 50},
	}
}

// SeedBudget fills an empty Budget_Config table with the default lines.
// Tables that already have rows are left alone; the seed only ever runs
// against a brand-new sheet. Returns true if rows were added.
func SeedBudget(t *sheet.Table) bool {
	if t.Len() > 0 {
		return false
	}
	for _, line := range DefaultBudgetLines() {
		i := t.AppendRow()
		t.SetCell(i, ColCategory, line.Category)
		t.SetCell(i, ColLimit, sheet.FormatNumber(line.Limit))
		t.SetCell(i, ColManualCost, sheet.FormatNumber(line.ManualCost))
	}
	return true
}

// DemoWorkbook returns a fully populated sample plan for demo mode and
// tests. Shapes match the real worksheets exactly.
func DemoWorkbook() map[string][][]string {
	return map[string][][]string{
		SheetGuests: {
			{ColFamily, ColAdults, ColChildren, ColAges, ColDietary, ColRSVP},
			{"Nguyen", "2", "2", "6, 8", "no nuts", "Confirmed"},
			{"Okafor", "1", "1", "7", "", "Confirmed"},
			{"Reyes", "2", "3", "5, 7, 9", "vegetarian", "Pending"},
			{"Smith", "2", "1", "6", "", "confirmed"},
			{"Bergström", "1", "0", "", "gluten-free", "No"},
		},
		SheetFood: {
			{ColItem, ColOwner, ColSourcing, ColPrice, ColQuantity, ColTotal},
			{"Pizza (large)", "Dana", "Order", "22", "6", "132"},
			{"Juice boxes", "Sam", "Buy", "0.8", "30", "24"},
			{"Birthday cake", "Priya", "Make", "45", "1", "45"},
			{"Fruit platter", "Dana", "Buy", "18", "2", ""},
			{"Watermelon", "", "Buy", "", "", ""},
		},
		SheetDecor: {
			{ColItem, ColTheme, ColStatus, ColCost},
			{"Streamers", "Pirate", StatusPurchased, "12.50"},
			{"Balloon arch", "Pirate", StatusToBuy, "38"},
			{"Treasure map banner", "Pirate", StatusOwned, "0"},
			{"Table covers", "Pirate", StatusToBuy, "16"},
		},
		SheetBudget: {
			{ColCategory, ColLimit, ColManualCost},
			{CategoryFood, "800", "0"},
			{CategoryVenue, "500", "450"},
			{CategoryDecoration, "300", "0"},
			{CategoryGames, "100", "35"},
			{CategoryInvitations, "50", "12"},
		},
		SheetGames: {
			{ColGameName, ColRules, ColProps, ColWinner},
			{"Treasure hunt", "Follow the clues to the chest", "Clue cards, chest", ""},
			{"Limbo", "Pole drops each round", "Broom", ""},
			{"Sack race", "First to the flag", "6 sacks", ""},
		},
		SheetFeedback: {
			{ColName, ColRating, ColComments},
			{"Anonymous", "5", "Can't wait!"},
			{"Maya's mum", "4", "Is there parking nearby?"},
		},
	}
}
