package tui

import (
	"testing"

	"fete/internal/event"
	"fete/internal/sheet"
)

func guestTable() *sheet.Table {
	return sheet.FromValues(event.SheetGuests, [][]string{
		event.Guests.Columns,
		{"Smith", "2", "1", "7", "", "Confirmed"},
		{"Patel", "2", "2", "5, 8", "vegetarian", "Pending"},
		{"Nguyen", "1", "1", "6", "", "Confirmed"},
	})
}

func TestGridNavigationBounds(t *testing.T) {
	g := newGrid(event.SheetGuests, nil, false)
	g.setTable(guestTable())

	// k at the top and h at the left edge stay put.
	g.handleKey("k")
	g.handleKey("h")
	if g.cursorRow != 0 || g.cursorCol != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", g.cursorRow, g.cursorCol)
	}

	g.handleKey("j")
	g.handleKey("l")
	if g.cursorRow != 1 || g.cursorCol != 1 {
		t.Fatalf("cursor = (%d,%d), want (1,1)", g.cursorRow, g.cursorCol)
	}

	g.handleKey("G")
	if g.cursorRow != 2 {
		t.Fatalf("G -> row %d, want 2", g.cursorRow)
	}

	// j at the bottom stays put.
	g.handleKey("j")
	if g.cursorRow != 2 {
		t.Fatalf("j past end -> row %d, want 2", g.cursorRow)
	}
}

func TestGridEditCommit(t *testing.T) {
	g := newGrid(event.SheetGuests, nil, false)
	g.setTable(guestTable())

	handled, _ := g.handleKey("enter")
	if !handled || !g.editing {
		t.Fatalf("enter -> handled=%v editing=%v, want true/true", handled, g.editing)
	}

	g.input.SetValue("  Smith-Jones  ")
	g.handleKey("enter")

	if g.editing {
		t.Fatal("still editing after commit")
	}
	if got := g.table.Cell(0, event.ColFamily); got != "Smith-Jones" {
		t.Fatalf("cell = %q, want trimmed %q", got, "Smith-Jones")
	}
	if !g.dirty {
		t.Fatal("commit did not mark the grid dirty")
	}
}

func TestGridEditCancelKeepsCell(t *testing.T) {
	g := newGrid(event.SheetGuests, nil, false)
	g.setTable(guestTable())

	g.handleKey("enter")
	g.input.SetValue("scratch")
	g.handleKey("esc")

	if g.editing {
		t.Fatal("still editing after esc")
	}
	if got := g.table.Cell(0, event.ColFamily); got != "Smith" {
		t.Fatalf("cell = %q, want untouched %q", got, "Smith")
	}
	if g.dirty {
		t.Fatal("cancel marked the grid dirty")
	}
}

func TestGridAddAndDeleteRow(t *testing.T) {
	g := newGrid(event.SheetGuests, nil, false)
	g.setTable(guestTable())

	g.handleKey("a")
	if g.table.Len() != 4 {
		t.Fatalf("rows after add = %d, want 4", g.table.Len())
	}
	if g.cursorRow != 3 {
		t.Fatalf("cursor after add = %d, want 3", g.cursorRow)
	}

	g.handleKey("D")
	if g.table.Len() != 3 {
		t.Fatalf("rows after delete = %d, want 3", g.table.Len())
	}
	if g.cursorRow != 2 {
		t.Fatalf("cursor after delete = %d, want clamped to 2", g.cursorRow)
	}
}

func TestGridReadOnlyBlocksEdits(t *testing.T) {
	g := newGrid(event.SheetGuests, nil, true)
	g.setTable(guestTable())

	for _, key := range []string{"enter", "a", "D"} {
		if handled, _ := g.handleKey(key); handled {
			t.Fatalf("read-only grid consumed %q", key)
		}
	}
	if g.table.Len() != 3 || g.editing || g.dirty {
		t.Fatal("read-only grid mutated state")
	}

	// Navigation still works.
	if handled, _ := g.handleKey("j"); !handled {
		t.Fatal("read-only grid refused navigation")
	}
}

func TestGridVisibleColumnSubset(t *testing.T) {
	g := newGrid(event.SheetGuests, []string{event.ColFamily, event.ColRSVP}, true)
	g.setTable(guestTable())

	cols := g.visibleCols()
	if len(cols) != 2 {
		t.Fatalf("visibleCols = %d entries, want 2", len(cols))
	}
	if g.table.Columns[cols[0]] != event.ColFamily || g.table.Columns[cols[1]] != event.ColRSVP {
		t.Fatalf("visibleCols resolved to %v", cols)
	}

	// Cursor cannot move past the subset.
	g.handleKey("l")
	g.handleKey("l")
	if g.cursorCol != 1 {
		t.Fatalf("cursorCol = %d, want capped at 1", g.cursorCol)
	}
}

func TestGridUnknownKeyFallsThrough(t *testing.T) {
	g := newGrid(event.SheetGuests, nil, false)
	g.setTable(guestTable())

	if handled, _ := g.handleKey("b"); handled {
		t.Fatal("grid consumed a tab-jump letter")
	}
}

func TestGridColWidthsShrinkToFit(t *testing.T) {
	tbl := sheet.FromValues("Food", [][]string{
		{"Item", "Notes"},
		{"An extremely long catering line item that would overflow", "short"},
	})
	cols := []int{0, 1}

	widths := gridColWidths(tbl, cols, 20)
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	if total > 20 {
		t.Fatalf("total width %d exceeds 20", total)
	}
	if widths[0] >= maxGridColWidth {
		t.Fatalf("widest column %d was not shrunk", widths[0])
	}
	for i, w := range widths {
		if w < 3 {
			t.Fatalf("column %d width %d below minimum", i, w)
		}
	}
}
