package tui

import (
	"fmt"
	"strings"

	"fete/internal/sheet"
	"fete/internal/tui/components"
	"fete/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxGridColWidth = 26

// gridState is the editable worksheet widget shared by the table tabs.
// Cell edits stay local until the user saves the sheet back.
type gridState struct {
	sheetName string
	table     *sheet.Table
	visible   []string // column subset to show; nil means all
	readOnly  bool

	cursorRow int
	cursorCol int // index into visibleCols
	offset    int // first visible data row

	editing bool
	input   textinput.Model
	dirty   bool
}

func newGrid(sheetName string, visible []string, readOnly bool) gridState {
	return gridState{
		sheetName: sheetName,
		visible:   visible,
		readOnly:  readOnly,
	}
}

// setTable swaps in freshly loaded data and clamps the cursor.
func (g *gridState) setTable(t *sheet.Table) {
	g.table = t
	g.editing = false
	g.dirty = false
	g.clamp()
}

// visibleCols resolves the visible column subset to table indexes.
func (g *gridState) visibleCols() []int {
	if g.table == nil {
		return nil
	}
	if g.visible == nil {
		idx := make([]int, len(g.table.Columns))
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	var idx []int
	for _, name := range g.visible {
		if i := g.table.ColumnIndex(name); i >= 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

func (g *gridState) clamp() {
	if g.table == nil {
		g.cursorRow, g.cursorCol, g.offset = 0, 0, 0
		return
	}
	if g.cursorRow >= g.table.Len() {
		g.cursorRow = g.table.Len() - 1
	}
	if g.cursorRow < 0 {
		g.cursorRow = 0
	}
	cols := g.visibleCols()
	if g.cursorCol >= len(cols) {
		g.cursorCol = len(cols) - 1
	}
	if g.cursorCol < 0 {
		g.cursorCol = 0
	}
}

// cellRef returns the table coordinates under the cursor.
func (g *gridState) cellRef() (row, col int, ok bool) {
	if g.table == nil || g.table.Len() == 0 {
		return 0, 0, false
	}
	cols := g.visibleCols()
	if len(cols) == 0 {
		return 0, 0, false
	}
	return g.cursorRow, cols[g.cursorCol], true
}

func (g *gridState) startEdit() tea.Cmd {
	row, col, ok := g.cellRef()
	if !ok || g.readOnly {
		return nil
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 30
	ti.SetValue(g.table.Rows[row][col])
	ti.Focus()

	g.input = ti
	g.editing = true
	return ti.Cursor.BlinkCmd()
}

func (g *gridState) commitEdit() {
	row, col, ok := g.cellRef()
	if !ok {
		g.editing = false
		return
	}
	g.table.Rows[row][col] = strings.TrimSpace(g.input.Value())
	g.editing = false
	g.dirty = true
}

func (g *gridState) addRow() {
	if g.table == nil || g.readOnly {
		return
	}
	g.table.AppendRow()
	g.cursorRow = g.table.Len() - 1
	g.dirty = true
}

func (g *gridState) deleteRow() {
	if g.table == nil || g.readOnly || g.table.Len() == 0 {
		return
	}
	g.table.DeleteRow(g.cursorRow)
	g.dirty = true
	g.clamp()
}

// handleKey processes one key in grid mode. It reports whether the key was
// consumed so the app can fall through to tab jumps otherwise.
func (g *gridState) handleKey(key string) (bool, tea.Cmd) {
	if g.editing {
		switch key {
		case "enter":
			g.commitEdit()
			return true, nil
		case "esc":
			g.editing = false
			return true, nil
		}
		return true, nil // remaining keys forwarded by the app via updateInput
	}

	if g.table == nil {
		return false, nil
	}

	switch key {
	case "j", "down":
		if g.cursorRow < g.table.Len()-1 {
			g.cursorRow++
		}
		return true, nil
	case "k", "up":
		if g.cursorRow > 0 {
			g.cursorRow--
		}
		return true, nil
	case "h", "left":
		if g.cursorCol > 0 {
			g.cursorCol--
		}
		return true, nil
	case "l", "right":
		if g.cursorCol < len(g.visibleCols())-1 {
			g.cursorCol++
		}
		return true, nil
	case "G":
		g.cursorRow = g.table.Len() - 1
		g.clamp()
		return true, nil
	case "enter":
		if g.readOnly {
			return false, nil
		}
		return true, g.startEdit()
	case "a":
		if g.readOnly {
			return false, nil
		}
		g.addRow()
		return true, nil
	case "D":
		if g.readOnly {
			return false, nil
		}
		g.deleteRow()
		return true, nil
	}
	return false, nil
}

// updateInput forwards non-control keys to the cell editor.
func (g *gridState) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return cmd
}

// gridColWidths sizes each visible column from header and cell content,
// then shrinks the widest columns until the row fits innerW.
func gridColWidths(t *sheet.Table, cols []int, innerW int) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		w := len(t.Columns[c])
		for _, row := range t.Rows {
			if c < len(row) && len(row[c]) > w {
				w = len(row[c])
			}
		}
		if w > maxGridColWidth {
			w = maxGridColWidth
		}
		if w < 3 {
			w = 3
		}
		widths[i] = w
	}

	total := func() int {
		sum := 0
		for _, w := range widths {
			sum += w + 2 // cell padding
		}
		return sum
	}

	for total() > innerW {
		widest := 0
		for i := 1; i < len(widths); i++ {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 4 {
			break
		}
		widths[widest]--
	}

	return widths
}

// renderGrid draws the worksheet as a card: header row, scrolling data rows
// with the selected cell highlighted, and a key-hint footer.
func (a App) renderGrid(g gridState, title string, cw, h int) string {
	t := theme.Active

	if g.table == nil {
		if a.syncing || !a.loaded {
			body := lipgloss.NewStyle().Foreground(t.TextMuted).Render("Loading " + g.sheetName + "...")
			return components.ContentCard(title, body, cw)
		}
		body := lipgloss.NewStyle().Foreground(t.Orange).Render("Worksheet "+g.sheetName+" is missing.") + "\n" +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("Run `fete setup` to create it, or `fete status` to check the connection.")
		return components.ContentCard(title, body, cw)
	}

	cols := g.visibleCols()
	innerW := components.CardInnerWidth(cw)
	widths := gridColWidths(g.table, cols, innerW)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorRowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder

	// Header row
	for i, c := range cols {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", widths[i], truncStr(g.table.Columns[c], widths[i]))))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	// Visible window
	visible := h - 8 // borders, title, header, separator, footer
	if visible < 4 {
		visible = 4
	}
	offset := g.offset
	if g.cursorRow < offset {
		offset = g.cursorRow
	}
	if g.cursorRow >= offset+visible {
		offset = g.cursorRow - visible + 1
	}
	end := offset + visible
	if end > g.table.Len() {
		end = g.table.Len()
	}

	if g.table.Len() == 0 {
		b.WriteString(mutedStyle.Render("(empty)"))
		b.WriteString("\n")
	}

	for r := offset; r < end; r++ {
		for i, c := range cols {
			onCursor := r == g.cursorRow && i == g.cursorCol

			if onCursor && g.editing {
				b.WriteString(g.input.View())
				b.WriteString("  ")
				continue
			}

			cell := truncStr(g.table.Rows[r][c], widths[i])
			padded := fmt.Sprintf("%-*s", widths[i], cell)
			switch {
			case onCursor && !g.readOnly:
				b.WriteString(selectedStyle.Render(padded))
			case r == g.cursorRow:
				b.WriteString(cursorRowStyle.Render(padded))
			default:
				b.WriteString(rowStyle.Render(padded))
			}
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	if end < g.table.Len() {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("… %d more", g.table.Len()-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if g.readOnly {
		b.WriteString(mutedStyle.Render("[j/k] rows  [r] refresh"))
	} else if g.editing {
		b.WriteString(mutedStyle.Render("[Enter] apply  [Esc] cancel"))
	} else {
		b.WriteString(mutedStyle.Render("[hjkl] move  [Enter] edit  [a] add  [D] delete  [s] save  [r] refresh"))
	}

	cardTitle := title
	if g.dirty {
		cardTitle += " (unsaved)"
	}
	return components.ContentCard(cardTitle, b.String(), cw)
}
