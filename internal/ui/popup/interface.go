// Package popup defines modal popups and the box they are drawn in.
package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component shown over the notification stack.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content only; the host draws the box.
	View() string
	SetSize(width, height int)
}

// CloseMsg asks the host to close the active popup.
type CloseMsg struct{}

// Close is a command emitting CloseMsg.
func Close() tea.Msg {
	return CloseMsg{}
}
