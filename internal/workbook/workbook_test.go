package workbook

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"fete/internal/gateway"
)

func openTemp(t *testing.T) (*Workbook, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workbook.db")
	w, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w, path
}

func TestReadMissingWorksheet(t *testing.T) {
	w, _ := openTemp(t)

	_, err := w.Read(context.Background(), "Guests")
	if !errors.Is(err, gateway.ErrWorksheetNotFound) {
		t.Fatalf("Read() error = %v, want ErrWorksheetNotFound", err)
	}
}

func TestWriteMissingWorksheet(t *testing.T) {
	w, _ := openTemp(t)

	err := w.Write(context.Background(), "Guests", [][]string{{"Family Name"}})
	if !errors.Is(err, gateway.ErrWorksheetNotFound) {
		t.Fatalf("Write() error = %v, want ErrWorksheetNotFound", err)
	}
}

func TestCreateReadEmpty(t *testing.T) {
	w, _ := openTemp(t)
	ctx := context.Background()

	if err := w.CreateWorksheet(ctx, "Food"); err != nil {
		t.Fatalf("CreateWorksheet() error = %v", err)
	}
	// Second create is a no-op.
	if err := w.CreateWorksheet(ctx, "Food"); err != nil {
		t.Fatalf("CreateWorksheet() again error = %v", err)
	}

	values, err := w.Read(ctx, "Food")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("Read() = %v, want empty", values)
	}
}

func TestWriteReplacesEverything(t *testing.T) {
	w, _ := openTemp(t)
	ctx := context.Background()

	if err := w.CreateWorksheet(ctx, "Decor"); err != nil {
		t.Fatalf("CreateWorksheet() error = %v", err)
	}

	first := [][]string{
		{"Item", "Theme", "Status", "Cost"},
		{"Streamers", "Pirate", "To Buy", "15"},
		{"Balloons", "Pirate", "Purchased", "22.50"},
	}
	if err := w.Write(ctx, "Decor", first); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := w.Read(ctx, "Decor")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, first) {
		t.Fatalf("Read() = %v, want %v", got, first)
	}

	// A shorter second write must not leave stale rows behind.
	second := [][]string{
		{"Item", "Theme", "Status", "Cost"},
		{"Bunting", "Pirate", "Owned", "0"},
	}
	if err := w.Write(ctx, "Decor", second); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err = w.Read(ctx, "Decor")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Fatalf("after overwrite Read() = %v, want %v", got, second)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workbook.db")
	ctx := context.Background()

	w, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := w.CreateWorksheet(ctx, "Games"); err != nil {
		t.Fatalf("CreateWorksheet() error = %v", err)
	}
	values := [][]string{{"Game Name", "Rules", "Props Needed", "Winner"}, {"Limbo", "Lower each round", "Broom", ""}}
	if err := w.Write(ctx, "Games", values); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	w2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen Open() error = %v", err)
	}
	defer func() { _ = w2.Close() }()

	got, err := w2.Read(ctx, "Games")
	if err != nil {
		t.Fatalf("Read() after reopen error = %v", err)
	}
	if !reflect.DeepEqual(got, values) {
		t.Fatalf("Read() after reopen = %v, want %v", got, values)
	}
}

func TestWorksheetsListing(t *testing.T) {
	w, _ := openTemp(t)
	ctx := context.Background()

	for _, name := range []string{"Guests", "Food", "Budget_Config"} {
		if err := w.CreateWorksheet(ctx, name); err != nil {
			t.Fatalf("CreateWorksheet(%q) error = %v", name, err)
		}
	}

	names, err := w.Worksheets(ctx)
	if err != nil {
		t.Fatalf("Worksheets() error = %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("Worksheets() = %v, want 3 entries", names)
	}
}
