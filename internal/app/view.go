package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/toasty/internal/keymap"
	"github.com/llehouerou/toasty/internal/ui/overlay"
	"github.com/llehouerou/toasty/internal/ui/render"
	"github.com/llehouerou/toasty/internal/ui/styles"
	"github.com/llehouerou/toasty/internal/ui/toastview"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	footer := m.footer()
	bodyHeight := max(m.Height-lipgloss.Height(footer), 1)

	view := m.background(bodyHeight)
	for _, b := range m.layoutIn(bodyHeight) {
		view = overlay.Place(view, b.Content, b.Bounds.X, b.Bounds.Y, m.Width)
	}
	view += "\n" + footer

	if m.Popups.Active() {
		box, x, y := m.Popups.View()
		view = overlay.Place(view, box, x, y, m.Width)
	}
	return view
}

// layout places the notification stack above the footer. Mouse handling
// and View share it so hit areas match what is drawn.
func (m Model) layout() []toastview.Block {
	return m.layoutIn(max(m.Height-lipgloss.Height(m.footer()), 1))
}

func (m Model) layoutIn(height int) []toastview.Block {
	return toastview.Layout(m.Manager.Snapshot(), toastview.Params{
		Width:   m.Width,
		Height:  height,
		Now:     m.now(),
		Hovered: m.hovered,
		Thumbs:  m.thumbs,
	})
}

// background is the screen under the stack: a status line and blank rows.
func (m Model) background(height int) string {
	st := styles.T().S()
	snap := m.Manager.Snapshot()

	status := fmt.Sprintf("%d shown · %d queued · %d undoable", len(snap.Visible), snap.Queued, len(snap.Undo))
	rows := make([]string, height)
	rows[0] = st.Subtle.Render(render.Truncate(status, m.Width))
	return strings.Join(rows, "\n")
}

func (m Model) footer() string {
	return m.Help.View(helpKeys{})
}

// helpKeys adapts the key bindings to bubbles/help.
type helpKeys struct{}

// ShortHelp shows quit, help, history, close and undo.
func (helpKeys) ShortHelp() []key.Binding {
	global := keymap.Help(keymap.ByContext("global"))
	toast := keymap.Help(keymap.ByContext("toast"))
	return append(global[:3:3], toast[:2]...)
}

func (helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		keymap.Help(keymap.ByContext("global")),
		keymap.Help(keymap.ByContext("toast")),
	}
}
