// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Alerts
	OpSoundPlay     Op = "play notification sound"
	OpDesktopNotify Op = "send desktop notification"

	// History
	OpHistoryOpen  Op = "open notification history"
	OpHistoryLoad  Op = "load notification history"
	OpHistorySave  Op = "save notification"
	OpHistoryClear Op = "clear notification history"

	// Content
	OpImageLoad     Op = "load notification image"
	OpClipboardCopy Op = "copy to clipboard"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Error is a failed operation. It prints like Format and unwraps to the
// cause.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string { return Format(e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Wrap returns err as an *Error for op, or nil when err is nil.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
