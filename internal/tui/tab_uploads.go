package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fete/internal/cli"
	"fete/internal/tui/components"
	"fete/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// uploadsState backs the Gallery and Invites pages. Attachments are
// session-only metadata; the files themselves never move.
type uploadsState struct {
	page   string // session upload bucket
	input  textinput.Model
	adding bool
	errMsg string
}

func newUploadsState(page string) uploadsState {
	ti := textinput.New()
	ti.Placeholder = "path to file"
	ti.CharLimit = 512
	ti.Width = 48
	return uploadsState{page: page, input: ti}
}

func (a App) startUpload(st *uploadsState) (tea.Model, tea.Cmd) {
	st.adding = true
	st.errMsg = ""
	st.input.SetValue("")
	st.input.Focus()
	return a, st.input.Cursor.BlinkCmd()
}

func (a App) updateUploadInput(st *uploadsState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(st.input.Value())
		if path == "" {
			st.adding = false
			return a, nil
		}
		info, err := os.Stat(path)
		if err != nil {
			st.errMsg = fmt.Sprintf("Can't read %s", path)
			return a, nil
		}
		if info.IsDir() {
			st.errMsg = fmt.Sprintf("%s is a directory", path)
			return a, nil
		}
		a.sess.AddUpload(st.page, filepath.Base(path), info.Size())
		st.adding = false
		st.errMsg = ""
		return a, nil
	case "esc":
		st.adding = false
		st.errMsg = ""
		return a, nil
	}

	var cmd tea.Cmd
	st.input, cmd = st.input.Update(msg)
	return a, cmd
}

func (a App) renderUploadsTab(st uploadsState, title string, cw int) string {
	t := theme.Active

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	sizeStyle := lipgloss.NewStyle().Foreground(t.Cyan)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	uploads := a.sess.Uploads(st.page)

	var b strings.Builder

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 10 - 10 - 2
	if nameW < 16 {
		nameW = 16
	}

	if len(uploads) == 0 && !st.adding {
		b.WriteString(dimStyle.Render("Nothing attached this session."))
		b.WriteString("\n")
	}
	for _, u := range uploads {
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(u.Name, nameW))))
		b.WriteString(sizeStyle.Render(fmt.Sprintf(" %10s", cli.FormatBytes(u.SizeBytes))))
		b.WriteString(timeStyle.Render(fmt.Sprintf(" %10s", u.AddedAt.Format("3:04 PM"))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if st.adding {
		b.WriteString(st.input.View())
		b.WriteString("\n")
		if st.errMsg != "" {
			b.WriteString(errStyle.Render(st.errMsg))
		} else {
			b.WriteString(dimStyle.Render("[Enter] attach  [Esc] cancel"))
		}
	} else {
		b.WriteString(dimStyle.Render("[a] attach a file  ·  attachments vanish when the session ends"))
	}

	card := components.ContentCard(title, b.String(), cw)

	note := dimStyle.Render(" Shared files live in the spreadsheet's drive folder; this list is just your session's staging area.")
	return card + "\n" + note
}
