package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toasty/internal/toast"
	"github.com/llehouerou/toasty/internal/ui/toastview"
)

func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.Popups.Active() {
		m.releasePointer()
		return m, nil
	}
	x := float64(msg.X * toastview.UnitsPerCell)

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.dragging != 0 {
			m.Manager.DragMove(m.dragging, x)
			return m, nil
		}
		hit, _ := toastview.HitTest(m.layout(), msg.X, msg.Y)
		m.setHovered(hit.ID)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		hit, ok := toastview.HitTest(m.layout(), msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		return m, m.handleClick(hit, x)

	case tea.MouseActionRelease:
		if m.dragging != 0 {
			m.Manager.DragEnd(m.dragging)
			m.dragging = 0
		}
	}
	return m, nil
}

func (m *Model) handleClick(hit toastview.Hit, x float64) tea.Cmd {
	switch hit.Target {
	case toastview.TargetClose:
		m.Manager.Remove(hit.ID)
	case toastview.TargetExpand:
		m.Manager.ToggleExpand(hit.ID)
	case toastview.TargetCopy:
		if v, ok := m.view(hit.ID); ok {
			return copyCmd(m.copyText, toastview.PlainText(v.Record))
		}
	case toastview.TargetAction:
		m.Manager.InvokeAction(hit.ID, hit.Action)
	case toastview.TargetBody:
		if m.Manager.DragStart(hit.ID, x) {
			m.dragging = hit.ID
		}
	}
	return nil
}

// setHovered moves the hover pause from the previous notification to id.
func (m *Model) setHovered(id toast.ID) {
	if id == m.hovered {
		return
	}
	if m.hovered != 0 {
		m.Manager.SetHovered(m.hovered, false)
	}
	if id != 0 {
		m.Manager.SetHovered(id, true)
	}
	m.hovered = id
}

// releasePointer ends any drag and hover in progress, springing the
// dragged notification back and resuming its countdown.
func (m *Model) releasePointer() {
	if m.dragging != 0 {
		m.Manager.DragEnd(m.dragging)
		m.dragging = 0
	}
	m.setHovered(0)
}
