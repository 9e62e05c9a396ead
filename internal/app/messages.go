package app

import (
	"time"

	"github.com/llehouerou/toasty/internal/toast"
	"github.com/llehouerou/toasty/internal/ui/thumb"
)

// TickMsg advances the manager's timers.
type TickMsg time.Time

// syncMsg carries no data; Update syncs after every message.
type syncMsg struct{}

// ImageLoadedMsg is sent when a notification image has been decoded.
type ImageLoadedMsg struct {
	ID    toast.ID
	Path  string
	Thumb thumb.Thumb
	Err   error
}

// StderrMsg is a line captured from stderr.
type StderrMsg string

// CopiedMsg reports the result of a clipboard copy.
type CopiedMsg struct {
	Err error
}
