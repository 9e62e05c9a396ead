package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toasty/internal/ui/popup"
)

// PopupHarness drives a popup the way the app does and records every
// command it returns, starting with Init's.
type PopupHarness struct {
	p    popup.Popup
	cmds []tea.Cmd
}

// NewPopupHarness wraps p and runs its Init.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{p: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SetSize resizes the popup content area.
func (h *PopupHarness) SetSize(width, height int) { h.p.SetSize(width, height) }

// View returns the popup content.
func (h *PopupHarness) View() string { return h.p.View() }

// ViewContains reports whether a line of the unstyled view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.p.View()), substr)
}

// Send delivers msg and returns the popup's command.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.p, cmd = h.p.Update(msg)
	return h.record(cmd)
}

// SendKey delivers Key(k).
func (h *PopupHarness) SendKey(k string) tea.Cmd { return h.Send(Key(k)) }

// Commands returns the recorded commands, oldest first.
func (h *PopupHarness) Commands() []tea.Cmd { return h.cmds }

// LastCommand returns the newest recorded command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ExecuteAndSend runs cmd and feeds its message back to the popup.
func (h *PopupHarness) ExecuteAndSend(cmd tea.Cmd) (tea.Msg, tea.Cmd) {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil, nil
	}
	return msg, h.Send(msg)
}

// ExecuteCmd runs cmd, tolerating nil.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
