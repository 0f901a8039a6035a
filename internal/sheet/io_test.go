package sheet

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"fete/internal/gateway"
)

// fakeGateway records writes and serves canned reads.
type fakeGateway struct {
	values  map[string][][]string
	written map[string][][]string
	readErr error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		values:  make(map[string][][]string),
		written: make(map[string][][]string),
	}
}

func (f *fakeGateway) Read(_ context.Context, worksheet string) ([][]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	v, ok := f.values[worksheet]
	if !ok {
		return nil, gateway.ErrWorksheetNotFound
	}
	return v, nil
}

func (f *fakeGateway) Write(_ context.Context, worksheet string, values [][]string) error {
	f.written[worksheet] = values
	return nil
}

func TestLoadMissingWorksheetKeepsSentinel(t *testing.T) {
	gw := newFakeGateway()

	_, err := Load(context.Background(), gw, "Guests", []string{"Family Name"})
	if !errors.Is(err, gateway.ErrWorksheetNotFound) {
		t.Fatalf("Load() error = %v, want ErrWorksheetNotFound", err)
	}
}

func TestLoadEmptyWorksheetGetsSchema(t *testing.T) {
	gw := newFakeGateway()
	gw.values["Feedback"] = nil

	required := []string{"Name", "Rating", "Comments"}
	tbl, err := Load(context.Background(), gw, "Feedback", required)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(tbl.Columns, required) {
		t.Fatalf("Columns = %v, want %v", tbl.Columns, required)
	}
	if tbl.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tbl.Len())
	}
}

func TestLoadBackfillsMissingColumns(t *testing.T) {
	gw := newFakeGateway()
	gw.values["Guests"] = [][]string{
		{"Family Name", "Adults"},
		{"Nguyen", "2"},
		{"Okafor", "1"},
	}

	tbl, err := Load(context.Background(), gw, "Guests",
		[]string{"Family Name", "Adults", "Children", "RSVP"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"Family Name", "Adults", "Children", "RSVP"}
	if !reflect.DeepEqual(tbl.Columns, want) {
		t.Fatalf("Columns = %v, want %v", tbl.Columns, want)
	}
	for i := 0; i < tbl.Len(); i++ {
		if got := tbl.Cell(i, "RSVP"); got != "" {
			t.Fatalf("row %d RSVP = %q, want empty backfill", i, got)
		}
	}
	// Existing data survives the migration.
	if got := tbl.Cell(0, "Adults"); got != "2" {
		t.Fatalf("Adults = %q, want 2", got)
	}
}

func TestSaveWritesFullMatrix(t *testing.T) {
	gw := newFakeGateway()
	tbl := FromValues("Food", [][]string{
		{"Item", "Price"},
		{"Pizza", "120"},
	})

	if err := Save(context.Background(), gw, tbl); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	want := [][]string{{"Item", "Price"}, {"Pizza", "120"}}
	if !reflect.DeepEqual(gw.written["Food"], want) {
		t.Fatalf("written = %v, want %v", gw.written["Food"], want)
	}
}

func TestLoadThenSaveIsNoOp(t *testing.T) {
	original := [][]string{
		{"Item", "Theme", "Status", "Cost"},
		{"Streamers", "Pirate", "To Buy", "15"},
	}
	gw := newFakeGateway()
	gw.values["Decor"] = original

	tbl, err := Load(context.Background(), gw, "Decor",
		[]string{"Item", "Theme", "Status", "Cost"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := Save(context.Background(), gw, tbl); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !reflect.DeepEqual(gw.written["Decor"], original) {
		t.Fatalf("load-then-save changed content:\n got %v\nwant %v", gw.written["Decor"], original)
	}
}
