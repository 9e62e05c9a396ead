package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toasty/internal/keymap"
	"github.com/llehouerou/toasty/internal/toast"
	"github.com/llehouerou/toasty/internal/ui/historypopup"
	"github.com/llehouerou/toasty/internal/ui/toastview"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.Popups.Active() {
		return m, m.Popups.Update(msg)
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.Help.ShowAll = !m.Help.ShowAll
	case keymap.ActionHistory:
		m.releasePointer()
		return m, m.Popups.Show(historypopup.New(m.history))

	case keymap.ActionAddSuccess:
		m.addSample(toast.TypeSuccess)
	case keymap.ActionAddError:
		m.addSample(toast.TypeError)
	case keymap.ActionAddWarning:
		m.addSample(toast.TypeWarning)
	case keymap.ActionAddInfo:
		m.addSample(toast.TypeInfo)
	case keymap.ActionAddUrgent:
		m.addUrgent()
	case keymap.ActionAddTemplate:
		m.addTemplate()

	case keymap.ActionUndo:
		m.Manager.Undo()
	case keymap.ActionClose:
		if v, ok := m.newest(); ok {
			m.Manager.Remove(v.ID)
		}
	case keymap.ActionToggleExpand:
		if v, ok := m.newest(); ok {
			m.Manager.ToggleExpand(v.ID)
		}
	case keymap.ActionCopy:
		if v, ok := m.newest(); ok {
			return m, copyCmd(m.copyText, toastview.PlainText(v.Record))
		}
	case keymap.ActionRunAction:
		if v, ok := m.newest(); ok {
			m.Manager.InvokeAction(v.ID, 0)
		}
	}
	return m, nil
}

// newest returns the most recently admitted notification that is not
// already leaving.
func (m Model) newest() (toast.View, bool) {
	visible := m.Manager.Snapshot().Visible
	for i := len(visible) - 1; i >= 0; i-- {
		if !visible[i].Leaving {
			return visible[i], true
		}
	}
	return toast.View{}, false
}

func (m Model) view(id toast.ID) (toast.View, bool) {
	for _, v := range m.Manager.Snapshot().Visible {
		if v.ID == id {
			return v, true
		}
	}
	return toast.View{}, false
}
