// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"
	ActionHistory Action = "history"

	// Demo notifications
	ActionAddSuccess  Action = "add_success"
	ActionAddError    Action = "add_error"
	ActionAddWarning  Action = "add_warning"
	ActionAddInfo     Action = "add_info"
	ActionAddUrgent   Action = "add_urgent"
	ActionAddTemplate Action = "add_template"

	// Acting on the newest visible notification
	ActionClose        Action = "close"
	ActionUndo         Action = "undo"
	ActionToggleExpand Action = "toggle_expand"
	ActionCopy         Action = "copy"
	ActionRunAction    Action = "run_action"

	// Popup navigation
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionTop      Action = "top"
	ActionBottom   Action = "bottom"
	ActionRestore  Action = "restore"
	ActionDismiss  Action = "dismiss"
	ActionClear    Action = "clear"
)
