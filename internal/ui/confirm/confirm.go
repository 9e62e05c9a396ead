// Package confirm provides an inline yes/no prompt for destructive actions.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toasty/internal/ui/styles"
)

// Model is a one-line yes/no prompt. The zero value is inactive.
type Model struct {
	prompt string
	active bool
}

// Ask shows the prompt.
func (m *Model) Ask(prompt string) {
	m.prompt = prompt
	m.active = true
}

// Active reports whether the prompt is waiting for an answer.
func (m Model) Active() bool {
	return m.active
}

// Update consumes a key while the prompt is shown. done reports that the
// prompt closed; yes is the answer. Unrelated keys leave it open.
func (m *Model) Update(msg tea.KeyMsg) (done, yes bool) {
	if !m.active {
		return false, false
	}
	switch msg.String() {
	case "enter", "y", "Y":
		m.active = false
		return true, true
	case "esc", "n", "N":
		m.active = false
		return true, false
	}
	return false, false
}

// View renders the prompt, or nothing when inactive.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	st := styles.T().S()
	return st.Warning.Render(m.prompt) + " " + st.Subtle.Render("enter/y confirm · esc/n cancel")
}
