package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toasty/internal/ui/popup"
)

const (
	popupMaxWidth = 72
	// title, blank, blank, footer and the border rows
	popupChromeHeight = 6
)

// framed is implemented by popups that supply their own title and footer.
type framed interface {
	Title() string
	Footer() string
}

// PopupManager owns the single active modal popup.
type PopupManager struct {
	active popup.Popup
	width  int
	height int
}

// NewPopupManager creates a manager with no popup shown.
func NewPopupManager() PopupManager {
	return PopupManager{}
}

// SetSize updates the terminal dimensions.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	if p.active != nil {
		p.active.SetSize(p.contentSize())
	}
}

func (p *PopupManager) contentSize() (int, int) {
	w := max(min(popupMaxWidth, p.width-6), 10)
	h := max(p.height-popupChromeHeight-4, 1)
	return w, h
}

// Show makes pp the active popup and returns its init command.
func (p *PopupManager) Show(pp popup.Popup) tea.Cmd {
	p.active = pp
	pp.SetSize(p.contentSize())
	return pp.Init()
}

// Hide closes the active popup.
func (p *PopupManager) Hide() {
	p.active = nil
}

// Active reports whether a popup is shown.
func (p *PopupManager) Active() bool {
	return p.active != nil
}

// Update forwards msg to the active popup.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	if p.active == nil {
		return nil
	}
	var cmd tea.Cmd
	p.active, cmd = p.active.Update(msg)
	return cmd
}

// View renders the active popup in its box and returns where the box
// goes to be centered on the screen.
func (p PopupManager) View() (box string, x, y int) {
	if p.active == nil {
		return "", 0, 0
	}
	b := popup.Box{Content: p.active.View()}
	b.Width, _ = p.contentSize()
	if f, ok := p.active.(framed); ok {
		b.Title = f.Title()
		b.Footer = f.Footer()
	}
	box = b.Render(p.width)
	x, y = popup.Origin(box, p.width, p.height)
	return box, x, y
}
