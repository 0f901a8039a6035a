package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fete/internal/config"
)

func sampleEvent() config.EventConfig {
	return config.EventConfig{
		Name:      "Leo's 7th Birthday",
		Date:      "2026-02-28",
		StartTime: "12:00",
		Venue:     "Rocky Island, Balmoral Beach",
	}
}

func TestSummaryCarriesOnlyEventBasics(t *testing.T) {
	got := Summary(sampleEvent())

	for _, want := range []string{
		"You're Invited!",
		"Leo's 7th Birthday",
		"Saturday, 28 February 2026 at 12:00",
		"Rocky Island, Balmoral Beach",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}

	// The handout must not leak plan data beyond name/date/location.
	for _, forbidden := range []string{"$", "Budget", "Guests", "RSVP:"} {
		if strings.Contains(got, forbidden) {
			t.Errorf("summary leaks %q:\n%s", forbidden, got)
		}
	}
}

func TestSummaryFallsBackOnBadDate(t *testing.T) {
	ev := sampleEvent()
	ev.Date = "sometime in Feb"

	got := Summary(ev)
	if !strings.Contains(got, "sometime in Feb at 12:00") {
		t.Fatalf("summary did not fall back to raw date:\n%s", got)
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")

	if err := Write(path, sampleEvent()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "Leo's 7th Birthday") {
		t.Fatal("written file missing event name")
	}
}
