// Package historypopup shows the dismissed-notification history.
package historypopup

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/toasty/internal/errmsg"
	"github.com/llehouerou/toasty/internal/history"
	"github.com/llehouerou/toasty/internal/icons"
	"github.com/llehouerou/toasty/internal/keymap"
	"github.com/llehouerou/toasty/internal/ui/confirm"
	"github.com/llehouerou/toasty/internal/ui/list"
	"github.com/llehouerou/toasty/internal/ui/popup"
	"github.com/llehouerou/toasty/internal/ui/render"
	"github.com/llehouerou/toasty/internal/ui/styles"
)

// Source provides history entries.
type Source interface {
	Recent(n int) ([]history.Entry, error)
	Clear() error
}

// LoadedMsg carries the entries read by the load command.
type LoadedMsg struct {
	Entries []history.Entry
	Err     error
}

// RestoreMsg asks the host to show a history entry again.
type RestoreMsg struct {
	Entry history.Entry
}

// Model is the history popup.
type Model struct {
	src     Source
	keys    keymap.Resolver
	now     func() time.Time
	list    list.Model[history.Entry]
	confirm confirm.Model
	err     error
	loaded  bool
}

var _ popup.Popup = (*Model)(nil)

// New creates the popup. A nil source means history is disabled.
func New(src Source) *Model {
	return &Model{
		src:  src,
		keys: keymap.ForContexts("history"),
		now:  time.Now,
		list: list.New[history.Entry](1),
	}
}

// Init loads the entries.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

func (m *Model) load() tea.Cmd {
	if m.src == nil {
		return nil
	}
	src := m.src
	return func() tea.Msg {
		entries, err := src.Recent(0)
		if err != nil {
			return LoadedMsg{Err: errmsg.Wrap(errmsg.OpHistoryLoad, err)}
		}
		return LoadedMsg{Entries: entries}
	}
}

// Update handles loading results and navigation keys.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.err, m.loaded = msg.Err, true
		m.list.SetItems(msg.Entries)
		m.list.Top()
	case tea.KeyMsg:
		if m.confirm.Active() {
			if done, yes := m.confirm.Update(msg); done && yes {
				return m, m.clear()
			}
			return m, nil
		}
		switch m.keys.Resolve(msg.String()) {
		case keymap.ActionDismiss:
			return m, popup.Close
		case keymap.ActionMoveDown:
			m.list.Move(1)
		case keymap.ActionMoveUp:
			m.list.Move(-1)
		case keymap.ActionTop:
			m.list.Top()
		case keymap.ActionBottom:
			m.list.Bottom()
		case keymap.ActionRestore:
			e, ok := m.list.Selected()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return RestoreMsg{Entry: e} }
		case keymap.ActionClear:
			if m.src != nil && m.list.Len() > 0 {
				m.confirm.Ask(fmt.Sprintf("Clear %d entries?", m.list.Len()))
			}
		}
	}
	return m, nil
}

func (m *Model) clear() tea.Cmd {
	src := m.src
	return func() tea.Msg {
		if err := src.Clear(); err != nil {
			return LoadedMsg{Err: errmsg.Wrap(errmsg.OpHistoryClear, err)}
		}
		return LoadedMsg{}
	}
}

// SetSize sets the content area.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, max(height, 1))
}

// View renders the visible slice of entries.
func (m *Model) View() string {
	st := styles.T().S()
	width := max(m.list.Width(), 20)

	switch {
	case m.src == nil:
		return st.Muted.Render("History is off. Set enable_history = true in [notifications].")
	case m.err != nil:
		return st.Error.Render(render.Truncate(m.err.Error(), width))
	case !m.loaded:
		return st.Muted.Render("Loading…")
	case m.list.Len() == 0:
		return st.Muted.Render("No dismissed notifications yet.")
	}

	start, end := m.list.VisibleRange()
	items := m.list.Items()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		marker := "  "
		if i == m.list.SelectedIndex() {
			marker = st.Action.Render(icons.Action()) + " "
		}
		lines = append(lines, marker+m.line(items[i], width-2))
	}
	if m.confirm.Active() {
		lines = append(lines[:min(len(lines), max(m.list.Height()-1, 0))], m.confirm.View())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) line(e history.Entry, width int) string {
	st := styles.T().S()
	icon := icons.ForType(e.Type)
	age := humanize.RelTime(e.DismissedAt, m.now(), "ago", "from now")
	meta := fmt.Sprintf("%s · %s", e.Reason, age)

	text := e.Message
	if e.Title != "" {
		text = e.Title + ": " + text
	}
	text = strings.ReplaceAll(text, "\n", " ")

	left := styles.T().TypeStyle(e.Type).Render(icon) + " " + st.Base.Render(render.Truncate(text, max(width-lipgloss.Width(icon)-lipgloss.Width(meta)-3, 4)))
	return render.Row(left, st.Subtle.Render(meta), width)
}

// Title returns the popup title.
func (m *Model) Title() string {
	t := styles.T()
	return styles.Gradient{From: t.Primary, To: t.Secondary}.Text(icons.FormatHistory("Notification history"))
}

// Footer returns the key hints.
func (m *Model) Footer() string {
	return "j/k select · enter show again · D clear · esc close"
}
