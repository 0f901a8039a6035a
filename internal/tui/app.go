// Package tui provides the interactive Bubble Tea dashboard for fete.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fete/internal/access"
	"fete/internal/cli"
	"fete/internal/config"
	"fete/internal/event"
	"fete/internal/export"
	"fete/internal/gateway"
	"fete/internal/metrics"
	"fete/internal/session"
	"fete/internal/sheet"
	"fete/internal/tui/components"
	"fete/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// sheetsLoadedMsg is sent when a worksheet fetch finishes. Tables holds
// whatever loaded; Err carries the first failure, if any.
type sheetsLoadedMsg struct {
	Tables map[string]*sheet.Table
	Took   time.Duration
	Err    error
}

// loadProgressMsg reports per-worksheet fetch progress.
type loadProgressMsg struct {
	Current int
	Total   int
}

// sheetSavedMsg is sent when a background save completes.
type sheetSavedMsg struct {
	Worksheet string
	Err       error
}

// Tab sets per role. Grid keys own most lowercase letters, so jump keys
// lean on letters the grids leave free.
var adminTabs = []components.Tab{
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

var guestTabs = []components.Tab{
	{Name: "Event", Key: 'e', KeyPos: 0},
	{Name: "Guests", Key: 'g', KeyPos: 0},
	{Name: "Games", Key: 'm', KeyPos: 2},
	{Name: "Gallery", Key: 'y', KeyPos: 6},
	{Name: "Invites", Key: 'i', KeyPos: 0},
	{Name: "Feedback", Key: 'v', KeyPos: -1},
	{Name: "Chat", Key: 'c', KeyPos: 0},
}

// App is the root Bubble Tea model.
type App struct {
	cfg  config.Config
	gw   gateway.Gateway
	gate *access.Gate
	sess *session.Session
	mode string // connection label for the status bar

	// Worksheet data, keyed by worksheet name
	tables   map[string]*sheet.Table
	report   metrics.Report
	loaded   bool
	loadErr  error
	loadTime time.Duration
	lastSync time.Time
	syncing  bool
	saving   bool

	// Transient notice shown in the header
	flash      string
	flashErr   bool
	flashUntil time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	login    loginState
	guests   gridState
	food     gridState
	decor    gridState
	games    gridState
	feedback feedbackState
	chat     chatState
	gallery  uploadsState
	invites  uploadsState
	settings settingsState

	// First-run setup form
	needSetup bool
	setupForm *huh.Form
	setupVals setupValues

	// Loading: channel-based progress subscription.
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg // progress + completion messages from loader goroutine
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	minContentHeight = 5

	flashDuration = 3 * time.Second
	loadTimeout   = 60 * time.Second
	saveTimeout   = 30 * time.Second

	// Written to the working directory by the Event tab's export key.
	exportFileName = "party-summary.md"
)

// loadConfigOrDefault loads config, returning defaults on error so the
// dashboard can always start.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates the dashboard model. When no access codes are configured
// the gate is open and the session starts as admin without a prompt.
func NewApp(cfg config.Config, gw gateway.Gateway, gate *access.Gate, mode string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		cfg:      cfg,
		gw:       gw,
		gate:     gate,
		sess:     session.New(),
		mode:     mode,
		tables:   make(map[string]*sheet.Table),
		login:    newLoginState(),
		guests:   newGrid(event.SheetGuests, nil, false),
		food:     newGrid(event.SheetFood, nil, false),
		decor:    newGrid(event.SheetDecor, nil, false),
		games:    newGrid(event.SheetGames, nil, false),
		chat:     newChatState(),
		gallery:  newUploadsState("gallery"),
		invites:  newUploadsState("invites"),
		spinner:  sp,
		loadSub:  make(chan tea.Msg, 1),
	}

	if gate.Open() {
		a.sess.Login(access.RoleAdmin)
	}
	a.applyRole()
	return a
}

// applyRole wires grid permissions to the session role. Guests get a
// read-only attendance view; admins edit everything.
func (a *App) applyRole() {
	if a.sess.Role == access.RoleAdmin {
		a.guests.visible = nil
		a.guests.readOnly = false
		a.games.readOnly = false
		return
	}
	a.guests.visible = []string{event.ColFamily, event.ColRSVP}
	a.guests.readOnly = true
	a.games.readOnly = true
}

// visibleTabs returns the tab set for the session role.
func (a App) visibleTabs() []components.Tab {
	if a.sess.Role == access.RoleAdmin {
		return adminTabs
	}
	return guestTabs
}

// tabName returns the active tab's name, or "" before login.
func (a App) tabName() string {
	tabs := a.visibleTabs()
	if a.activeTab < 0 || a.activeTab >= len(tabs) {
		return ""
	}
	return tabs[a.activeTab].Name
}

// activeGrid returns the grid backing the active tab, nil for card tabs.
func (a *App) activeGrid() *gridState {
	switch a.tabName() {
	case "Guests":
		return &a.guests
	case "Food":
		return &a.food
	case "Decor":
		return &a.decor
	case "Games":
		return &a.games
	}
	return nil
}

// tabSchemas lists the worksheets a tab reads, for activation-time reloads.
func tabSchemas(name string) []event.Schema {
	switch name {
	case "Event":
		return []event.Schema{event.Guests, event.Budget, event.Food, event.Decor}
	case "Budget":
		return []event.Schema{event.Budget, event.Food, event.Decor}
	case "Guests":
		return []event.Schema{event.Guests}
	case "Food":
		return []event.Schema{event.Food, event.Guests}
	case "Decor":
		return []event.Schema{event.Decor}
	case "Games":
		return []event.Schema{event.Games}
	case "Feedback":
		return []event.Schema{event.Feedback}
	}
	return nil
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		a.spinner.Tick,
		tickCmd(),
	}

	if a.sess.Role != access.RoleNone {
		cmds = append(cmds, loadSheetsCmd(a.gw, event.AllSchemas(), a.loadSub))
	}

	return tea.Batch(cmds...)
}

// recompute rebuilds derived numbers after data or edits change.
func (a *App) recompute() {
	a.report = metrics.BuildReport(
		a.tables[event.SheetBudget],
		a.tables[event.SheetFood],
		a.tables[event.SheetDecor],
	)
}

// syncGrids points each grid at the current table for its worksheet.
func (a *App) syncGrids() {
	a.guests.setTable(a.tables[event.SheetGuests])
	a.food.setTable(a.tables[event.SheetFood])
	a.decor.setTable(a.tables[event.SheetDecor])
	a.games.setTable(a.tables[event.SheetGames])
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash = msg
	a.flashErr = isErr
	a.flashUntil = time.Now().Add(flashDuration)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.feedback.form != nil {
			a.feedback.form = a.feedback.form.WithWidth(formWidth(msg.Width))
		}
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(formWidth(msg.Width))
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.sess.Role == access.RoleNone || a.setupForm != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if g := a.activeGrid(); g != nil && !g.editing {
				g.handleKey("k")
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if g := a.activeGrid(); g != nil && !g.editing {
				g.handleKey("j")
			}
			return a, nil

		case tea.MouseButtonLeft:
			tabs := a.visibleTabs()
			if tab := components.TabAt(tabs, a.activeTab, msg.X, msg.Y); tab >= 0 {
				return a.switchTab(tab)
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case sheetsLoadedMsg:
		a.syncing = false
		a.loaded = true
		a.loadTime = msg.Took
		a.lastSync = time.Now()
		a.loadErr = msg.Err
		for name, t := range msg.Tables {
			a.tables[name] = t
		}
		if bt, ok := a.tables[event.SheetBudget]; ok {
			event.SeedBudget(bt)
		}
		a.recompute()
		a.syncGrids()
		if msg.Err != nil {
			a.setFlash(loadErrorNotice(msg.Err), true)
		}
		// First successful load on a fresh install opens the setup form.
		if a.needSetup && a.setupForm == nil {
			a.setupForm = newSetupForm(a.cfg, &a.setupVals, formWidth(a.width))
			return a, a.setupForm.Init()
		}
		return a, nil

	case loadProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case sheetSavedMsg:
		a.saving = false
		if msg.Err != nil {
			a.setFlash(fmt.Sprintf("Save failed: %v", msg.Err), true)
			return a, nil
		}
		a.setFlash(fmt.Sprintf("Saved to %s!", msg.Worksheet), false)
		// Pull the sheet back so the view reflects what the remote accepted.
		for _, sc := range event.AllSchemas() {
			if sc.Worksheet == msg.Worksheet {
				a.syncing = true
				return a, loadSheetsCmd(a.gw, []event.Schema{sc}, a.loadSub)
			}
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		if a.flash != "" && time.Now().After(a.flashUntil) {
			a.flash = ""
		}
		return a, tickCmd()
	}

	// Forward unhandled messages (cursor blinks, form ticks) to whichever
	// input owns the focus.
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.sess.Role == access.RoleNone {
		var cmd tea.Cmd
		a.login.input, cmd = a.login.input.Update(msg)
		return a, cmd
	}
	switch {
	case a.feedback.active && a.tabName() == "Feedback":
		return a.updateFeedbackForm(msg)
	case a.settings.editing && a.tabName() == "Settings":
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	case a.chat.focused && a.tabName() == "Chat":
		var cmd tea.Cmd
		a.chat.input, cmd = a.chat.input.Update(msg)
		return a, cmd
	case a.gallery.adding && a.tabName() == "Gallery":
		var cmd tea.Cmd
		a.gallery.input, cmd = a.gallery.input.Update(msg)
		return a, cmd
	case a.invites.adding && a.tabName() == "Invites":
		var cmd tea.Cmd
		a.invites.input, cmd = a.invites.input.Update(msg)
		return a, cmd
	}
	if g := a.activeGrid(); g != nil && g.editing {
		return a, g.updateInput(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Access gate intercepts everything until a code checks out.
	if a.sess.Role == access.RoleNone {
		return a.updateLogin(msg)
	}

	if !a.loaded {
		if key == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	// First-run setup intercepts everything until it closes.
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	tab := a.tabName()

	// Focused inputs intercept all keys first.
	if a.settings.editing && tab == "Settings" {
		return a.updateSettingsInput(msg)
	}
	if a.feedback.active && tab == "Feedback" {
		return a.updateFeedbackForm(msg)
	}
	if a.chat.focused && tab == "Chat" {
		return a.updateChatInput(msg)
	}
	if a.gallery.adding && tab == "Gallery" {
		return a.updateUploadInput(&a.gallery, msg)
	}
	if a.invites.adding && tab == "Invites" {
		return a.updateUploadInput(&a.invites, msg)
	}
	if g := a.activeGrid(); g != nil && g.editing {
		if key == "enter" || key == "esc" {
			_, cmd := g.handleKey(key)
			a.recompute()
			return a, cmd
		}
		return a, g.updateInput(msg)
	}

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Grid navigation and editing
	if g := a.activeGrid(); g != nil {
		if handled, cmd := g.handleKey(key); handled {
			a.recompute()
			return a, cmd
		}

		switch key {
		case "s":
			if !g.readOnly && g.table != nil {
				a.saving = true
				return a, saveSheetCmd(a.gw, g.table)
			}
		case "t":
			if tab == "Food" && !g.readOnly && g.table != nil {
				changed := metrics.ReconcileTotals(g.table)
				a.recompute()
				a.saving = true
				a.setFlash(fmt.Sprintf("Recalculated %d totals", changed), false)
				return a, saveSheetCmd(a.gw, g.table)
			}
		}
	}

	// Tab-specific keys outside grids
	switch tab {
	case "Event":
		if key == "E" && a.sess.Role == access.RoleAdmin {
			if err := export.Write(exportFileName, a.cfg.Event); err != nil {
				a.setFlash(fmt.Sprintf("Export failed: %v", err), true)
			} else {
				a.setFlash("Wrote "+exportFileName, false)
			}
			return a, nil
		}
	case "Settings":
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	case "Feedback":
		if key == "enter" {
			return a.openFeedbackForm()
		}
	case "Chat":
		if key == "enter" {
			a.chat.focused = true
			a.chat.input.Focus()
			return a, a.chat.input.Cursor.BlinkCmd()
		}
	case "Gallery":
		if key == "a" {
			return a.startUpload(&a.gallery)
		}
	case "Invites":
		if key == "a" {
			return a.startUpload(&a.invites)
		}
	}

	// Refresh the active tab's worksheets
	if key == "r" && !a.syncing {
		if schemas := tabSchemas(tab); len(schemas) > 0 {
			a.syncing = true
			return a, loadSheetsCmd(a.gw, schemas, a.loadSub)
		}
		return a, nil
	}

	// Logout: wipe the session and return to the gate.
	if key == "L" {
		return a.logout()
	}

	if key == "q" {
		return a, tea.Quit
	}

	// Tab navigation
	tabs := a.visibleTabs()
	switch key {
	case "tab":
		return a.switchTab((a.activeTab + 1) % len(tabs))
	case "shift+tab":
		return a.switchTab((a.activeTab - 1 + len(tabs)) % len(tabs))
	case "left":
		if a.activeGrid() == nil {
			return a.switchTab((a.activeTab - 1 + len(tabs)) % len(tabs))
		}
	case "right":
		if a.activeGrid() == nil {
			return a.switchTab((a.activeTab + 1) % len(tabs))
		}
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(tabs, rune(key[0])); idx >= 0 {
				return a.switchTab(idx)
			}
		}
	}

	return a, nil
}

// switchTab activates a tab and starts a fresh pull of its worksheets, so
// pages always render recently fetched data.
func (a App) switchTab(idx int) (tea.Model, tea.Cmd) {
	if idx == a.activeTab {
		return a, nil
	}
	a.activeTab = idx
	name := a.tabName()

	var cmds []tea.Cmd
	switch name {
	case "Chat":
		a.chat.focused = true
		a.chat.input.Focus()
		cmds = append(cmds, a.chat.input.Cursor.BlinkCmd())
	case "Feedback":
		a.feedback.active = false
	}

	if schemas := tabSchemas(name); len(schemas) > 0 && !a.syncing {
		a.syncing = true
		cmds = append(cmds, loadSheetsCmd(a.gw, schemas, a.loadSub))
	}
	return a, tea.Batch(cmds...)
}

func (a App) logout() (tea.Model, tea.Cmd) {
	a.sess.Logout()
	a.tables = make(map[string]*sheet.Table)
	a.recompute()
	a.syncGrids()
	a.activeTab = 0
	a.flash = ""

	if a.gate.Open() {
		// No codes configured: a fresh admin session starts immediately.
		a.sess.Login(access.RoleAdmin)
		a.applyRole()
		a.loaded = false
		return a, loadSheetsCmd(a.gw, event.AllSchemas(), a.loadSub)
	}

	a.applyRole()
	a.loaded = false
	a.login = newLoginState()
	return a, a.login.input.Cursor.BlinkCmd()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.sess.Role == access.RoleNone {
		return a.renderLogin()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.viewSetup()
	}

	// Nothing loaded at all: the tab chrome would be wall-to-wall guidance
	// cards, so show one failure screen instead.
	if len(a.tables) == 0 && a.loadErr != nil {
		return a.viewLoadFailed()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  fete needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoadFailed() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(2, 4)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Red).
		Background(t.Surface).
		Bold(true)

	bodyStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ fete can't reach the sheet"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(loadErrorNotice(a.loadErr)))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("[r] retry   `fete status` for diagnostics   [q] quit"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ fete"))
	b.WriteString(subtitleStyle.Render(" · " + a.cfg.Event.Name))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := 40
		if barW > w-30 {
			barW = w - 30
		}
		if barW < 20 {
			barW = 20
		}
		pct := float64(a.progress) / float64(a.progressMax)
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Fetching worksheets\n\n"))
		b.WriteString(components.ProgressBar(pct, barW))
	} else {
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Connecting to the sheet..."))
	}

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"e b g f...", "Jump to tab by letter"},
		{"Tab S-Tab", "Next / Previous tab"},
		{"h j k l", "Move around a table"},
		{"G", "Jump to last row"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Tables"))
	b.WriteString("\n")
	tableBindings := []struct{ key, desc string }{
		{"Enter", "Edit the selected cell"},
		{"a", "Add a row"},
		{"D", "Delete the selected row"},
		{"s", "Save the sheet"},
		{"t", "Recalculate food totals (Food tab)"},
		{"r", "Refresh from the sheet"},
	}
	for _, bind := range tableBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Session"))
	b.WriteString("\n")
	sessionBindings := []struct{ key, desc string }{
		{"E", "Export the party summary (Event tab)"},
		{"L", "Log out"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range sessionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + event pill line
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	flashStyle := lipgloss.NewStyle().
		Foreground(t.Green).
		Background(t.Surface).
		Bold(true)
	if a.flashErr {
		flashStyle = flashStyle.Foreground(t.Red)
	}

	pill := pillStyle.Render(" ") + pillAccentStyle.Render(a.cfg.Event.Name)
	if a.cfg.Event.Date != "" {
		pill += pillStyle.Render(" │ ") + pillAccentStyle.Render(a.cfg.Event.Date)
		if until := time.Until(eventTime(a.cfg.Event)); until > 0 {
			pill += pillStyle.Render(" · in "+components.Countdown(until))
		}
	}
	if a.flash != "" {
		pill += pillStyle.Render("   ") + flashStyle.Render(a.flash)
	}

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.visibleTabs(), a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Status bar
	dataAge := ""
	switch {
	case a.saving || a.syncing:
		dataAge = "syncing"
	case !a.lastSync.IsZero():
		dataAge = cli.FormatDuration(int64(time.Since(a.lastSync).Seconds())) + " ago"
	}
	statusBar := components.RenderStatusBar(w, a.sess.Role.String(), a.mode, dataAge)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.tabName() {
	case "Event":
		content = a.renderEventTab(cw)
	case "Budget":
		content = a.renderBudgetTab(cw)
	case "Guests":
		content = a.renderGuestsTab(cw, contentH)
	case "Food":
		content = a.renderFoodTab(cw, contentH)
	case "Decor":
		content = a.renderDecorTab(cw, contentH)
	case "Games":
		content = a.renderGamesTab(cw, contentH)
	case "Gallery":
		content = a.renderUploadsTab(a.gallery, "Gallery", cw)
	case "Invites":
		content = a.renderUploadsTab(a.invites, "Invites", cw)
	case "Feedback":
		content = a.renderFeedbackTab(cw)
	case "Chat":
		content = a.renderChatTab(cw, contentH)
	case "Settings":
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content cap
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ───────────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// loadSheetsCmd fetches worksheets in a background goroutine, streaming
// loadProgressMsg updates and a final sheetsLoadedMsg through sub.
func loadSheetsCmd(gw gateway.Gateway, schemas []event.Schema, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()
			ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
			defer cancel()

			tables := make(map[string]*sheet.Table, len(schemas))
			var firstErr error
			for i, sc := range schemas {
				t, err := sheet.Load(ctx, gw, sc.Worksheet, sc.Columns)
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					continue
				}
				tables[sc.Worksheet] = t

				// Non-blocking send; a skipped update is caught by the next.
				select {
				case sub <- loadProgressMsg{Current: i + 1, Total: len(schemas)}:
				default:
				}
			}

			sub <- sheetsLoadedMsg{Tables: tables, Took: time.Since(start), Err: firstErr}
		}()

		// Block until the first message (progress or completion)
		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// saveSheetCmd writes one worksheet back in a background goroutine. The
// table is snapshotted first so later edits don't race the upload.
func saveSheetCmd(gw gateway.Gateway, t *sheet.Table) tea.Cmd {
	snapshot := t.Clone()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		err := sheet.Save(ctx, gw, snapshot)
		return sheetSavedMsg{Worksheet: snapshot.Worksheet, Err: err}
	}
}

// loadErrorNotice turns a fetch error into a short actionable header note.
func loadErrorNotice(err error) string {
	switch {
	case errors.Is(err, gateway.ErrWorksheetNotFound):
		return "A worksheet is missing. Run `fete setup` to create it."
	case errors.Is(err, gateway.ErrUnauthorized):
		return "The sheet rejected the token. Check `fete status`."
	case errors.Is(err, gateway.ErrRateLimited):
		return "The sheet is rate limiting. Try again shortly."
	default:
		return fmt.Sprintf("Load failed: %v", err)
	}
}

// formWidth sizes embedded forms against the terminal width.
func formWidth(w int) int {
	fw := w - 12
	if fw > 72 {
		fw = 72
	}
	if fw < 30 {
		fw = 30
	}
	return fw
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
