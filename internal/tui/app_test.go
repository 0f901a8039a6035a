package tui

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"fete/internal/access"
	"fete/internal/config"
	"fete/internal/event"
	"fete/internal/gateway"
	"fete/internal/sheet"
	"fete/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

// loadedTables fetches every worksheet from the gateway the same way the
// loader goroutine does, so tests can feed Update a sheetsLoadedMsg
// without running commands.
func loadedTables(t *testing.T, gw gateway.Gateway) map[string]*sheet.Table {
	t.Helper()
	tables := make(map[string]*sheet.Table)
	for _, sc := range event.AllSchemas() {
		tb, err := sheet.Load(context.Background(), gw, sc.Worksheet, sc.Columns)
		if err != nil {
			t.Fatalf("load %s: %v", sc.Worksheet, err)
		}
		tables[sc.Worksheet] = tb
	}
	return tables
}

func newTestApp(t *testing.T, gate *access.Gate) (App, gateway.Gateway) {
	t.Helper()
	gw := gateway.NewMemory(event.DemoWorkbook())
	a := NewApp(config.DefaultConfig(), gw, gate, "demo")
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App), gw
}

func loadDemo(t *testing.T, a App, gw gateway.Gateway) App {
	t.Helper()
	m, _ := a.Update(sheetsLoadedMsg{Tables: loadedTables(t, gw), Took: time.Millisecond})
	return m.(App)
}

// demoApp is a logged-in admin dashboard with the demo plan loaded.
func demoApp(t *testing.T) App {
	t.Helper()
	a, gw := newTestApp(t, access.NewGate("", ""))
	return loadDemo(t, a, gw)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(keyMsg(k))
		a = m.(App)
	}
	return a
}

func TestOpenGateStartsAdmin(t *testing.T) {
	a, _ := newTestApp(t, access.NewGate("", ""))
	if a.sess.Role != access.RoleAdmin {
		t.Fatalf("role with open gate = %v, want %v", a.sess.Role, access.RoleAdmin)
	}
}

func TestVisibleTabsByRole(t *testing.T) {
	a, _ := newTestApp(t, access.NewGate("", ""))
	if got := len(a.visibleTabs()); got != 11 {
		t.Fatalf("admin tab count = %d, want 11", got)
	}

	a.sess.Login(access.RoleGuest)
	(&a).applyRole()
	tabs := a.visibleTabs()
	if len(tabs) != 7 {
		t.Fatalf("guest tab count = %d, want 7", len(tabs))
	}
	for _, tab := range tabs {
		if tab.Name == "Budget" || tab.Name == "Settings" {
			t.Fatalf("guest tab set includes %q", tab.Name)
		}
	}
}

func TestLoginWrongThenRightCode(t *testing.T) {
	a, _ := newTestApp(t, access.NewGate("pinata", ""))
	if a.sess.Role != access.RoleNone {
		t.Fatalf("role before login = %v, want %v", a.sess.Role, access.RoleNone)
	}

	a.login.input.SetValue("nope")
	a = press(t, a, "enter")
	if a.sess.Role != access.RoleNone {
		t.Fatalf("role after bad code = %v, want %v", a.sess.Role, access.RoleNone)
	}
	if !a.login.failed {
		t.Fatal("login.failed = false after bad code")
	}
	if a.login.input.Value() != "" {
		t.Fatalf("input after bad code = %q, want cleared", a.login.input.Value())
	}

	a.login.input.SetValue("pinata")
	m, cmd := a.Update(keyMsg("enter"))
	a = m.(App)
	if a.sess.Role != access.RoleAdmin {
		t.Fatalf("role after good code = %v, want %v", a.sess.Role, access.RoleAdmin)
	}
	if a.login.failed {
		t.Fatal("login.failed = true after good code")
	}
	if cmd == nil {
		t.Fatal("expected a reload command after login")
	}
}

func TestGuestLoginRestrictsGuestsGrid(t *testing.T) {
	a, gw := newTestApp(t, access.NewGate("", "lemonade"))
	a.login.input.SetValue("lemonade")
	a = press(t, a, "enter")
	if a.sess.Role != access.RoleGuest {
		t.Fatalf("role = %v, want %v", a.sess.Role, access.RoleGuest)
	}
	a = loadDemo(t, a, gw)

	if !a.guests.readOnly {
		t.Fatal("guests grid writable for guest role")
	}
	want := []string{event.ColFamily, event.ColRSVP}
	if len(a.guests.visible) != len(want) {
		t.Fatalf("guest columns = %v, want %v", a.guests.visible, want)
	}
	for i, col := range want {
		if a.guests.visible[i] != col {
			t.Fatalf("guest columns = %v, want %v", a.guests.visible, want)
		}
	}

	// Budget has no guest tab, so its jump key goes nowhere.
	a = press(t, a, "b")
	if got := a.tabName(); got != "Event" {
		t.Fatalf("tab after guest presses b = %q, want Event", got)
	}
}

func TestSheetsLoadedSeedsEmptyBudget(t *testing.T) {
	a, gw := newTestApp(t, access.NewGate("", ""))
	tables := loadedTables(t, gw)
	tables[event.SheetBudget] = sheet.New(event.SheetBudget, event.Budget.Columns)

	m, _ := a.Update(sheetsLoadedMsg{Tables: tables, Took: time.Millisecond})
	a = m.(App)

	if got := a.tables[event.SheetBudget].Len(); got != 5 {
		t.Fatalf("seeded budget rows = %d, want 5", got)
	}
	if a.report.TotalLimit != 1750 {
		t.Fatalf("TotalLimit = %v, want 1750", a.report.TotalLimit)
	}
	// Seeded manual costs are zero, so spend is just the tracked sheets.
	if a.report.TotalSpent != 267.5 {
		t.Fatalf("TotalSpent = %v, want 267.5", a.report.TotalSpent)
	}
}

func TestMissingWorksheetShowsGuidance(t *testing.T) {
	a, gw := newTestApp(t, access.NewGate("", ""))
	tables := loadedTables(t, gw)
	delete(tables, event.SheetGuests)

	m, _ := a.Update(sheetsLoadedMsg{Tables: tables, Took: time.Millisecond, Err: gateway.ErrWorksheetNotFound})
	a = m.(App)
	if !strings.Contains(a.flash, "fete setup") {
		t.Fatalf("flash = %q, want setup guidance", a.flash)
	}

	// Switching kicks off a reload; completing it with the sheet still
	// absent leaves the guidance card up rather than a loading note.
	a = press(t, a, "g")
	m, _ = a.Update(sheetsLoadedMsg{Tables: map[string]*sheet.Table{}, Err: gateway.ErrWorksheetNotFound})
	a = m.(App)

	if out := a.View(); !strings.Contains(out, "Worksheet Guests is missing") {
		t.Fatal("missing-worksheet guidance not rendered")
	}
}

func TestFirstLoadTotalFailureShowsErrorScreen(t *testing.T) {
	a, _ := newTestApp(t, access.NewGate("", ""))
	m, _ := a.Update(sheetsLoadedMsg{Tables: map[string]*sheet.Table{}, Err: gateway.ErrUnauthorized})
	a = m.(App)

	out := a.View()
	if !strings.Contains(out, "can't reach the sheet") {
		t.Fatal("total load failure should render the failure screen")
	}
	if !strings.Contains(out, "fete status") {
		t.Fatal("failure screen missing diagnostics hint")
	}
}

func TestDemoReportNumbers(t *testing.T) {
	a := demoApp(t)
	if a.report.TotalLimit != 1750 {
		t.Fatalf("TotalLimit = %v, want 1750", a.report.TotalLimit)
	}
	if a.report.TotalSpent != 764.5 {
		t.Fatalf("TotalSpent = %v, want 764.5", a.report.TotalSpent)
	}
	if !a.loaded {
		t.Fatal("loaded = false after sheetsLoadedMsg")
	}
}

func TestTabJumpKeys(t *testing.T) {
	a := demoApp(t)
	a = press(t, a, "b")
	if got := a.tabName(); got != "Budget" {
		t.Fatalf("tab after b = %q, want Budget", got)
	}
	a = press(t, a, "v")
	if got := a.tabName(); got != "Feedback" {
		t.Fatalf("tab after v = %q, want Feedback", got)
	}
}

func TestSwitchTabSameIndexNoReload(t *testing.T) {
	a := demoApp(t)
	m, cmd := a.switchTab(a.activeTab)
	if cmd != nil {
		t.Fatal("switching to the active tab should not reload")
	}
	if got := m.(App).activeTab; got != a.activeTab {
		t.Fatalf("activeTab = %d, want %d", got, a.activeTab)
	}
}

func TestChatFocusOnSwitch(t *testing.T) {
	a := demoApp(t)
	a = press(t, a, "c")
	if got := a.tabName(); got != "Chat" {
		t.Fatalf("tab after c = %q, want Chat", got)
	}
	if !a.chat.focused {
		t.Fatal("chat input not focused after switching to Chat")
	}

	a = press(t, a, "h", "i", "enter")
	msgs := a.sess.Chat()
	if len(msgs) != 1 {
		t.Fatalf("chat length = %d, want 1", len(msgs))
	}
	if msgs[0].Text != "hi" {
		t.Fatalf("chat text = %q, want %q", msgs[0].Text, "hi")
	}
	if a.chat.input.Value() != "" {
		t.Fatalf("chat input after send = %q, want cleared", a.chat.input.Value())
	}
}

func TestHelpToggle(t *testing.T) {
	a := demoApp(t)
	a = press(t, a, "?")
	if !a.showHelp {
		t.Fatal("showHelp = false after ?")
	}
	if out := a.View(); !strings.Contains(out, "Keyboard Shortcuts") {
		t.Fatal("help view missing shortcuts panel")
	}
	a = press(t, a, "j")
	if a.showHelp {
		t.Fatal("showHelp = true after dismissing key")
	}
}

func TestLogoutReturnsToClosedGate(t *testing.T) {
	a, gw := newTestApp(t, access.NewGate("pinata", ""))
	a.login.input.SetValue("pinata")
	a = press(t, a, "enter")
	a = loadDemo(t, a, gw)

	a = press(t, a, "L")
	if a.sess.Role != access.RoleNone {
		t.Fatalf("role after logout = %v, want %v", a.sess.Role, access.RoleNone)
	}
	if a.loaded {
		t.Fatal("loaded = true after logout")
	}
	if len(a.tables) != 0 {
		t.Fatalf("tables after logout = %d, want 0", len(a.tables))
	}
}

func TestSaveKeyMarksSaving(t *testing.T) {
	a := demoApp(t)
	a = press(t, a, "g")
	if got := a.tabName(); got != "Guests" {
		t.Fatalf("tab after g = %q, want Guests", got)
	}

	m, cmd := a.Update(keyMsg("s"))
	a = m.(App)
	if !a.saving {
		t.Fatal("saving = false after s on an editable grid")
	}
	if cmd == nil {
		t.Fatal("expected a save command")
	}
}

func TestReconcileKeyOnFoodTab(t *testing.T) {
	a := demoApp(t)
	a = press(t, a, "f", "t")

	food := a.tables[event.SheetFood]
	if got := food.Cell(3, event.ColTotal); got != "36" {
		t.Fatalf("fruit platter total = %q, want %q", got, "36")
	}
	if !strings.Contains(a.flash, "Recalculated 1 totals") {
		t.Fatalf("flash = %q, want recalculation notice", a.flash)
	}
	if !a.saving {
		t.Fatal("saving = false after totals recalculation")
	}
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := demoApp(t)
	tabs := a.visibleTabs()

	// Middle of the second tab on the first bar row.
	x := 1 + components.TabVisualWidth(tabs[0], true) + 2 +
		components.TabVisualWidth(tabs[1], false)/2
	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	a = m.(App)

	if a.activeTab != 1 {
		t.Fatalf("activeTab after click = %d, want 1", a.activeTab)
	}
}

func TestMouseWheelScrollsGrid(t *testing.T) {
	a := demoApp(t)
	a = press(t, a, "g")
	if a.guests.cursorRow != 0 {
		t.Fatalf("cursorRow = %d, want 0", a.guests.cursorRow)
	}

	m, _ := a.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	a = m.(App)
	if a.guests.cursorRow != 1 {
		t.Fatalf("cursorRow after wheel down = %d, want 1", a.guests.cursorRow)
	}

	m, _ = a.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	a = m.(App)
	if a.guests.cursorRow != 0 {
		t.Fatalf("cursorRow after wheel up = %d, want 0", a.guests.cursorRow)
	}
}

func TestExportKeyWritesSummary(t *testing.T) {
	t.Chdir(t.TempDir())

	a := demoApp(t)
	a = press(t, a, "E")

	data, err := os.ReadFile(exportFileName)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(data), "You're Invited!") {
		t.Fatalf("summary missing header: %q", data)
	}
	if !strings.Contains(a.flash, exportFileName) {
		t.Fatalf("flash = %q, want write notice", a.flash)
	}
}

func TestViewSmoke(t *testing.T) {
	a := demoApp(t)
	out := a.View()
	for _, want := range []string{"Event", "Guests", "admin", "demo"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := demoApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	a = m.(App)
	if out := a.View(); !strings.Contains(out, "Terminal too narrow") {
		t.Fatal("narrow view missing width warning")
	}
}

func TestFirstRunSetupActivates(t *testing.T) {
	gw := gateway.NewMemory(event.DemoWorkbook())
	a := NewApp(config.DefaultConfig(), gw, access.NewGate("", ""), "demo").WithFirstRunSetup()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)

	m, cmd := a.Update(sheetsLoadedMsg{Tables: loadedTables(t, gw), Took: time.Millisecond})
	a = m.(App)
	if a.setupForm == nil {
		t.Fatal("setup form not created on first load")
	}
	if cmd == nil {
		t.Fatal("expected the form init command")
	}
}
