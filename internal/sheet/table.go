// Package sheet models one worksheet as an ordered table of string cells,
// the way a spreadsheet holds them. Row 0 of the wire format is the header;
// a Table splits that into Columns plus data Rows. All typed interpretation
// (numbers, statuses) happens through explicit coercion helpers so that a
// scribbled cell never breaks an aggregation.
package sheet

import (
	"strconv"
	"strings"
)

// Table is an in-memory copy of one worksheet. It is transient and
// non-authoritative: the spreadsheet owns the data, a Table is what one
// load saw plus any unsaved edits.
type Table struct {
	Worksheet string
	Columns   []string
	Rows      [][]string // every row has exactly len(Columns) cells
}

// New returns an empty table whose schema is exactly columns.
func New(worksheet string, columns []string) *Table {
	return &Table{
		Worksheet: worksheet,
		Columns:   append([]string(nil), columns...),
	}
}

// FromValues builds a table from a raw values matrix. Row 0 becomes the
// column set; short data rows are padded with empty cells and overlong rows
// are truncated to the header width.
func FromValues(worksheet string, values [][]string) *Table {
	t := &Table{Worksheet: worksheet}
	if len(values) == 0 {
		return t
	}

	t.Columns = append([]string(nil), values[0]...)
	width := len(t.Columns)

	for _, raw := range values[1:] {
		row := make([]string, width)
		copy(row, raw)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Values renders the table back into a wire matrix, header row first.
func (t *Table) Values() [][]string {
	if len(t.Columns) == 0 {
		return nil
	}
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, append([]string(nil), t.Columns...))
	for _, row := range t.Rows {
		out = append(out, append([]string(nil), row...))
	}
	return out
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	c := New(t.Worksheet, t.Columns)
	c.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of a column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the cell at (row, column), or "" when either is out of range.
func (t *Table) Cell(row int, column string) string {
	i := t.ColumnIndex(column)
	if i < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][i]
}

// SetCell writes the cell at (row, column); out-of-range writes are dropped.
func (t *Table) SetCell(row int, column, value string) {
	i := t.ColumnIndex(column)
	if i < 0 || row < 0 || row >= len(t.Rows) {
		return
	}
	t.Rows[row][i] = value
}

// Number coerces the cell at (row, column) to a float. Anything that does
// not parse as a plain number (currency symbols included) counts as zero;
// aggregations never reject a row.
func (t *Table) Number(row int, column string) float64 {
	return Coerce(t.Cell(row, column))
}

// Coerce converts one cell to a number, zero if it does not parse.
func Coerce(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatNumber renders a float the way a spreadsheet cell should carry it:
// no exponent, no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AppendRow adds a row of empty cells and returns its index.
func (t *Table) AppendRow() int {
	t.Rows = append(t.Rows, make([]string, len(t.Columns)))
	return len(t.Rows) - 1
}

// DeleteRow removes the row at i; out-of-range is a no-op.
func (t *Table) DeleteRow(i int) {
	if i < 0 || i >= len(t.Rows) {
		return
	}
	t.Rows = append(t.Rows[:i], t.Rows[i+1:]...)
}

// EnsureColumns appends any missing required columns with empty cells for
// every existing row. Existing columns and their order are never touched;
// schema migration is additive only.
func (t *Table) EnsureColumns(required []string) {
	for _, col := range required {
		if t.ColumnIndex(col) >= 0 {
			continue
		}
		t.Columns = append(t.Columns, col)
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], "")
		}
	}
}
