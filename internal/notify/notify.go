// Package notify raises freedesktop desktop notifications.
package notify

import (
	"math"
	"time"
)

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is one desktop notification.
type Notification struct {
	Summary  string
	Body     string
	Icon     string // icon name or image path
	Category string // sent as a hint; also groups replacements
	// Timeout is how long the server shows it. Zero keeps it until the
	// user dismisses it.
	Timeout       time.Duration
	Urgency       Urgency
	SuppressSound bool
}

// Notifier sends desktop notifications and returns the server's ID.
type Notifier interface {
	Notify(n Notification) (uint32, error)
}

// Nop drops every notification.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(Notification) (uint32, error) { return 0, nil }

// expireMillis converts a timeout to the expire_timeout argument, where 0
// means never.
func expireMillis(d time.Duration) int32 {
	if d <= 0 {
		return 0
	}
	return int32(min(max(d.Milliseconds(), 1), math.MaxInt32)) //nolint:gosec // clamped above
}
