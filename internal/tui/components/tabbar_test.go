package components

import "testing"

func planTabs() []Tab {
	return []Tab{
		{Name: "Event", Key: 'e', KeyPos: 0},
		{Name: "Budget", Key: 'b', KeyPos: 0},
		{Name: "Guests", Key: 'g', KeyPos: 0},
		{Name: "Food", Key: 'f', KeyPos: 0},
		{Name: "Decor", Key: 'd', KeyPos: 0},
		{Name: "Games", Key: 'm', KeyPos: 2},
		{Name: "Gallery", Key: 'y', KeyPos: 6},
		{Name: "Invites", Key: 'i', KeyPos: 0},
		{Name: "Feedback", Key: 'v', KeyPos: -1},
		{Name: "Chat", Key: 'c', KeyPos: 0},
		{Name: "Settings", Key: 'x', KeyPos: -1},
	}
}

func TestTabRowsSplit(t *testing.T) {
	tabs := planTabs()

	rows := TabRows(tabs[:6])
	if len(rows) != 1 || len(rows[0]) != 6 {
		t.Fatalf("TabRows(6 tabs) = %d rows, want one row of 6", len(rows))
	}

	rows = TabRows(tabs)
	if len(rows) != 2 {
		t.Fatalf("TabRows(11 tabs) = %d rows, want 2", len(rows))
	}
	if len(rows[0]) != 6 || len(rows[1]) != 5 {
		t.Fatalf("row sizes = %d/%d, want 6/5", len(rows[0]), len(rows[1]))
	}
}

func TestTabVisualWidth(t *testing.T) {
	tab := Tab{Name: "Guests", Key: 'g', KeyPos: 0}
	if got := TabVisualWidth(tab, true); got != len("Guests") {
		t.Fatalf("active width = %d, want %d", got, len("Guests"))
	}
	if got := TabVisualWidth(tab, false); got != len("Guests")+2 {
		t.Fatalf("inactive width = %d, want %d", got, len("Guests")+2)
	}

	// Key letter outside the name renders as a trailing [v] marker.
	fb := Tab{Name: "Feedback", Key: 'v', KeyPos: -1}
	if got := TabVisualWidth(fb, false); got != len("Feedback")+3 {
		t.Fatalf("marker width = %d, want %d", got, len("Feedback")+3)
	}
}

// Walk every tab midpoint for every active index and check the hitbox
// resolves back to that tab.
func TestTabAtMidpoints(t *testing.T) {
	tabs := planTabs()

	for active := range tabs {
		base := 0
		for y, row := range TabRows(tabs) {
			pos := 1 // leading space
			for i, tab := range row {
				idx := base + i
				w := TabVisualWidth(tab, idx == active)
				x := pos + w/2
				if got := TabAt(tabs, active, x, y); got != idx {
					t.Fatalf("active=%d row=%d x=%d -> tab %d, want %d", active, y, x, got, idx)
				}
				pos += w + 2
			}
			base += len(row)
		}
	}
}

func TestTabAtMisses(t *testing.T) {
	tabs := planTabs()

	if got := TabAt(tabs, 0, 0, 0); got != -1 {
		t.Fatalf("TabAt(leading space) = %d, want -1", got)
	}
	if got := TabAt(tabs, 0, 5, 4); got != -1 {
		t.Fatalf("TabAt(below the bar) = %d, want -1", got)
	}
	if got := TabAt(tabs, 0, 500, 0); got != -1 {
		t.Fatalf("TabAt(past the last tab) = %d, want -1", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	tabs := planTabs()

	if got := TabIdxByKey(tabs, 'v'); got != 8 {
		t.Fatalf("TabIdxByKey('v') = %d, want 8", got)
	}
	if got := TabIdxByKey(tabs, 'e'); got != 0 {
		t.Fatalf("TabIdxByKey('e') = %d, want 0", got)
	}
	if got := TabIdxByKey(tabs, 'z'); got != -1 {
		t.Fatalf("TabIdxByKey('z') = %d, want -1", got)
	}
}
