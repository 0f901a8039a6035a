package sheet

import (
	"context"
	"fmt"
)

// Reader is the read half of a spreadsheet gateway.
type Reader interface {
	Read(ctx context.Context, worksheet string) ([][]string, error)
}

// Writer is the write half of a spreadsheet gateway.
type Writer interface {
	Write(ctx context.Context, worksheet string, values [][]string) error
}

// Load pulls a worksheet and shapes it around the required columns.
//
// A missing worksheet surfaces the gateway's not-found error for the page
// to turn into setup guidance. An empty worksheet yields a zero-row table
// whose schema is exactly the required columns. A populated worksheet gets
// any absent required columns appended with empty cells (additive only,
// nothing is ever dropped or reordered).
func Load(ctx context.Context, src Reader, worksheet string, required []string) (*Table, error) {
	values, err := src.Read(ctx, worksheet)
	if err != nil {
		return nil, fmt.Errorf("sheet: loading %q: %w", worksheet, err)
	}

	if len(values) == 0 {
		return New(worksheet, required), nil
	}

	t := FromValues(worksheet, values)
	t.EnsureColumns(required)
	return t, nil
}

// Save replaces the entire worksheet with the table's contents. No merge,
// no partial update; concurrent editors race and the last write wins.
func Save(ctx context.Context, dst Writer, t *Table) error {
	if err := dst.Write(ctx, t.Worksheet, t.Values()); err != nil {
		return fmt.Errorf("sheet: saving %q: %w", t.Worksheet, err)
	}
	return nil
}
