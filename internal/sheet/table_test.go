package sheet

import (
	"reflect"
	"testing"
)

func TestFromValuesPadsAndTruncates(t *testing.T) {
	values := [][]string{
		{"Item", "Owner", "Price"},
		{"Cake", "Sam"},                    // short: padded
		{"Juice", "Priya", "14", "extra"},  // long: truncated
	}

	tbl := FromValues("Food", values)

	if got, want := tbl.Columns, []string{"Item", "Owner", "Price"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Columns = %v, want %v", got, want)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if got := tbl.Cell(0, "Price"); got != "" {
		t.Fatalf("padded cell = %q, want empty", got)
	}
	if got := len(tbl.Rows[1]); got != 3 {
		t.Fatalf("row width = %d, want 3", got)
	}
}

func TestValuesRoundTrip(t *testing.T) {
	values := [][]string{
		{"Category", "Limit", "Manual_Cost"},
		{"Venue", "500", "450"},
		{"Games", "100", "0"},
	}

	got := FromValues("Budget_Config", values).Values()
	if !reflect.DeepEqual(got, values) {
		t.Fatalf("Values() = %v, want %v", got, values)
	}
}

func TestEnsureColumnsAppendsOnly(t *testing.T) {
	tbl := FromValues("Guests", [][]string{
		{"Family Name", "Adults"},
		{"Smith", "2"},
	})

	tbl.EnsureColumns([]string{"Family Name", "Adults", "Children", "RSVP"})

	want := []string{"Family Name", "Adults", "Children", "RSVP"}
	if !reflect.DeepEqual(tbl.Columns, want) {
		t.Fatalf("Columns = %v, want %v", tbl.Columns, want)
	}
	if got := tbl.Rows[0]; len(got) != 4 || got[2] != "" || got[3] != "" {
		t.Fatalf("backfilled row = %v, want empty cells appended", got)
	}

	// Idempotent.
	tbl.EnsureColumns([]string{"Children"})
	if len(tbl.Columns) != 4 {
		t.Fatalf("Columns after repeat = %v", tbl.Columns)
	}
}

func TestCellAccessOutOfRange(t *testing.T) {
	tbl := New("Games", []string{"Game Name"})

	if got := tbl.Cell(0, "Game Name"); got != "" {
		t.Fatalf("Cell on empty table = %q, want empty", got)
	}
	if got := tbl.Cell(-1, "Nope"); got != "" {
		t.Fatalf("Cell out of range = %q, want empty", got)
	}

	// Writes outside the table are dropped, not panics.
	tbl.SetCell(5, "Game Name", "Limbo")
	tbl.SetCell(0, "Missing", "x")
	if tbl.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tbl.Len())
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		cell string
		want float64
	}{
		{"12.5", 12.5},
		{" 7 ", 7},
		{"0", 0},
		{"-2", -2},
		{"", 0},
		{"abc", 0},
		{"$5", 0}, // currency symbols do not parse; spreadsheets store raw numbers
		{"3 adults", 0},
	}

	for _, tt := range tests {
		if got := Coerce(tt.cell); got != tt.want {
			t.Errorf("Coerce(%q) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestAppendAndDeleteRow(t *testing.T) {
	tbl := New("Decor", []string{"Item", "Cost"})

	i := tbl.AppendRow()
	tbl.SetCell(i, "Item", "Streamers")
	tbl.SetCell(i, "Cost", "15")

	j := tbl.AppendRow()
	tbl.SetCell(j, "Item", "Balloons")

	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}

	tbl.DeleteRow(0)
	if tbl.Len() != 1 || tbl.Cell(0, "Item") != "Balloons" {
		t.Fatalf("after DeleteRow, rows = %v", tbl.Rows)
	}

	tbl.DeleteRow(99) // out of range: no-op
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tbl := FromValues("Food", [][]string{{"Item"}, {"Cake"}})
	c := tbl.Clone()
	c.SetCell(0, "Item", "Pie")

	if got := tbl.Cell(0, "Item"); got != "Cake" {
		t.Fatalf("original mutated through clone: %q", got)
	}
}
