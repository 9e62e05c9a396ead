package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "toast", "history"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionHistory, []string{"h"}, "History", "global"},

	{ActionAddSuccess, []string{"1"}, "Add success", "global"},
	{ActionAddError, []string{"2"}, "Add error", "global"},
	{ActionAddWarning, []string{"3"}, "Add warning", "global"},
	{ActionAddInfo, []string{"4"}, "Add info", "global"},
	{ActionAddUrgent, []string{"u"}, "Add urgent", "global"},
	{ActionAddTemplate, []string{"t"}, "Add template", "global"},

	// Newest toast
	{ActionClose, []string{"x"}, "Close newest", "toast"},
	{ActionUndo, []string{"z", "ctrl+z"}, "Undo dismiss", "toast"},
	{ActionToggleExpand, []string{"e"}, "Expand/collapse", "toast"},
	{ActionCopy, []string{"c"}, "Copy message", "toast"},
	{ActionRunAction, []string{"a"}, "Run first action", "toast"},

	// History popup
	{ActionMoveUp, []string{"k", "up"}, "Previous entry", "history"},
	{ActionMoveDown, []string{"j", "down"}, "Next entry", "history"},
	{ActionTop, []string{"g", "home"}, "First entry", "history"},
	{ActionBottom, []string{"G", "end"}, "Last entry", "history"},
	{ActionRestore, []string{"enter"}, "Show again", "history"},
	{ActionClear, []string{"D"}, "Clear history", "history"},
	{ActionDismiss, []string{"esc", "h", "q"}, "Close", "history"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Help converts bindings to bubbles key bindings for the help view.
func Help(bindings []Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.Keys[0], b.Description),
		))
	}
	return out
}
