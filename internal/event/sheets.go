// Package event defines the party plan's worksheet schemas and the typed
// views the rest of the app reads them through. Column names are the wire
// contract with the spreadsheet; renaming one here breaks existing sheets.
package event

// Worksheet names.
const (
	SheetGuests   = "Guests"
	SheetFood     = "Food"
	SheetDecor    = "Decor"
	SheetBudget   = "Budget_Config"
	SheetGames    = "Games"
	SheetFeedback = "Feedback"
)

// Column names, grouped by worksheet.
const (
	ColFamily   = "Family Name"
	ColAdults   = "Adults"
	ColChildren = "Children"
	ColAges     = "Ages"
	ColDietary  = "Dietary"
	ColRSVP     = "RSVP"

	ColItem     = "Item"
	ColOwner    = "Owner"
	ColSourcing = "Sourcing"
	ColPrice    = "Price"
	ColQuantity = "Quantity"
	ColTotal    = "Total"

	ColTheme  = "Theme"
	ColStatus = "Status"
	ColCost   = "Cost"

	ColCategory   = "Category"
	ColLimit      = "Limit"
	ColManualCost = "Manual_Cost"

	ColGameName = "Game Name"
	ColRules    = "Rules"
	ColProps    = "Props Needed"
	ColWinner   = "Winner"

	ColName     = "Name"
	ColRating   = "Rating"
	ColComments = "Comments"
)

// Schema names a worksheet and the columns a page requires present.
type Schema struct {
	Worksheet string
	Columns   []string
}

var (
	Guests   = Schema{SheetGuests, []string{ColFamily, ColAdults, ColChildren, ColAges, ColDietary, ColRSVP}}
	Food     = Schema{SheetFood, []string{ColItem, ColOwner, ColSourcing, ColPrice, ColQuantity, ColTotal}}
	Decor    = Schema{SheetDecor, []string{ColItem, ColTheme, ColStatus, ColCost}}
	Budget   = Schema{SheetBudget, []string{ColCategory, ColLimit, ColManualCost}}
	Games    = Schema{SheetGames, []string{ColGameName, ColRules, ColProps, ColWinner}}
	Feedback = Schema{SheetFeedback, []string{ColName, ColRating, ColComments}}
)

// AllSchemas returns every worksheet the app consumes, in menu order.
func AllSchemas() []Schema {
	return []Schema{Guests, Food, Decor, Budget, Games, Feedback}
}

// Decor item statuses.
const (
	StatusToBuy     = "To Buy"
	StatusPurchased = "Purchased"
	StatusOwned     = "Owned"
)

// DecorStatuses lists the accepted Status values, in purchase order.
var DecorStatuses = []string{StatusToBuy, StatusPurchased, StatusOwned}

// RSVP values offered by the grids. Matching elsewhere is case-insensitive,
// so sheets hand-edited with lowercase still count.
const (
	RSVPConfirmed = "Confirmed"
	RSVPPending   = "Pending"
	RSVPNo        = "No"
)

// RSVPOptions lists the suggested RSVP values.
var RSVPOptions = []string{RSVPConfirmed, RSVPPending, RSVPNo}

// Budget categories with live spend sources. Every other category's actual
// spend comes from its Manual_Cost cell.
const (
	CategoryFood        = "Food & Drinks"
	CategoryVenue       = "Venue"
	CategoryDecoration  = "Decoration"
	CategoryGames       = "Games"
	CategoryInvitations = "Invitations"
)
