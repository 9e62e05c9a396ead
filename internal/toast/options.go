package toast

import (
	"time"

	"github.com/rs/zerolog"
)

// Timing constants of the notification lifecycle.
const (
	DefaultQueueCadence     = 100 * time.Millisecond
	DefaultLeaveDuration    = 300 * time.Millisecond
	DefaultProgressInterval = 10 * time.Millisecond
	DefaultDragThreshold    = 100
	DefaultMaxVisible       = 5
	DefaultDuration         = 5 * time.Second
)

// Alerter plays sounds and raises desktop notifications. The manager calls
// it when both the global switch and the record's priority ask for it.
type Alerter interface {
	Alert(r Record, sound, desktop bool)
}

// HistorySink receives every dismissed notification when history is
// enabled.
type HistorySink interface {
	Record(r Record, reason DismissReason) error
}

// Options configures a Manager. Start from DefaultOptions.
type Options struct {
	Position        Position
	MaxVisible      int
	DefaultDuration time.Duration
	CustomTypes     map[string]Type

	PauseOnHover  bool
	EnableUndo    bool
	MaxUndo       int // 0 = unbounded
	AllowMarkdown bool

	EnableHistory bool
	MaxHistory    int

	SoundEnabled   bool
	DesktopEnabled bool

	DragThreshold    float64
	QueueCadence     time.Duration
	LeaveDuration    time.Duration
	ProgressInterval time.Duration

	Clock   Clock
	Alerter Alerter
	History HistorySink
	Logger  zerolog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Position:         TopRight,
		MaxVisible:       DefaultMaxVisible,
		DefaultDuration:  DefaultDuration,
		PauseOnHover:     true,
		EnableUndo:       true,
		AllowMarkdown:    true,
		MaxHistory:       50,
		DragThreshold:    DefaultDragThreshold,
		QueueCadence:     DefaultQueueCadence,
		LeaveDuration:    DefaultLeaveDuration,
		ProgressInterval: DefaultProgressInterval,
		Clock:            SystemClock,
		Logger:           zerolog.Nop(),
	}
}

func (o Options) normalized() Options {
	if o.Position == "" {
		o.Position = TopRight
	}
	if o.MaxVisible < 0 {
		o.MaxVisible = DefaultMaxVisible
	}
	if o.DefaultDuration < 0 {
		o.DefaultDuration = DefaultDuration
	}
	if o.DragThreshold <= 0 {
		o.DragThreshold = DefaultDragThreshold
	}
	if o.QueueCadence <= 0 {
		o.QueueCadence = DefaultQueueCadence
	}
	if o.LeaveDuration <= 0 {
		o.LeaveDuration = DefaultLeaveDuration
	}
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = DefaultProgressInterval
	}
	if o.Clock == nil {
		o.Clock = SystemClock
	}
	return o
}
