package toast

import (
	"math"
	"time"
)

// Phase is the lifecycle state of a notification.
type Phase int

const (
	PhasePending  Phase = iota // created, not yet visible
	PhaseCounting              // visible, countdown running
	PhasePaused                // visible, countdown held
	PhaseExpiring              // exit transition running
	PhaseRemoved
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseCounting:
		return "counting"
	case PhasePaused:
		return "paused"
	case PhaseExpiring:
		return "expiring"
	case PhaseRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// PauseReason is a bit set of reasons holding a countdown.
type PauseReason uint8

const (
	PauseHover PauseReason = 1 << iota
	PauseDrag
	PauseLoading // attached image not loaded yet
)

// lifecycle is the per-notification timer. It owns the dismiss and leave
// tasks and cancels whichever is pending when it changes phase.
type lifecycle struct {
	sched     *Scheduler
	duration  time.Duration
	leaveFor  time.Duration
	threshold float64

	phase     Phase
	paused    PauseReason
	remaining time.Duration
	since     time.Time
	dismiss   *Task
	leave     *Task

	dragging bool
	dragFrom float64
	offset   float64

	onLeave   func(DismissReason)
	onRemoved func()
}

func newLifecycle(sched *Scheduler, duration, leaveFor time.Duration, threshold float64) *lifecycle {
	return &lifecycle{
		sched:     sched,
		duration:  duration,
		leaveFor:  leaveFor,
		threshold: threshold,
		remaining: duration,
	}
}

// start moves a pending timer onto the screen.
func (l *lifecycle) start() {
	if l.phase != PhasePending {
		return
	}
	if l.paused != 0 {
		l.phase = PhasePaused
		return
	}
	l.count()
}

func (l *lifecycle) count() {
	l.phase = PhaseCounting
	if l.duration == Forever {
		return
	}
	l.since = l.sched.Now()
	l.dismiss = l.sched.After(l.remaining, func() {
		l.dismiss = nil
		l.expire(ReasonExpired)
	})
}

func (l *lifecycle) pause(r PauseReason) {
	l.paused |= r
	if l.phase != PhaseCounting {
		return
	}
	l.remaining = l.remainingAt(l.sched.Now())
	l.dismiss.Cancel()
	l.dismiss = nil
	l.phase = PhasePaused
}

func (l *lifecycle) resume(r PauseReason) {
	l.paused &^= r
	if l.phase != PhasePaused || l.paused != 0 {
		return
	}
	l.count()
}

func (l *lifecycle) remainingAt(now time.Time) time.Duration {
	if l.phase != PhaseCounting || l.duration == Forever {
		return l.remaining
	}
	return max(l.remaining-now.Sub(l.since), 0)
}

// progress is the remaining share of the countdown, 100 down to 0.
func (l *lifecycle) progress(now time.Time) float64 {
	if l.duration == Forever {
		return 0
	}
	p := 100 * float64(l.remainingAt(now)) / float64(l.duration)
	return math.Max(0, math.Min(100, p))
}

// expire starts the exit transition. It reports false when the timer is
// not on screen or already leaving.
func (l *lifecycle) expire(reason DismissReason) bool {
	if l.phase != PhaseCounting && l.phase != PhasePaused {
		return false
	}
	l.remaining = l.remainingAt(l.sched.Now())
	if reason == ReasonExpired {
		l.remaining = 0
	}
	l.dismiss.Cancel()
	l.dismiss = nil
	l.dragging = false
	l.phase = PhaseExpiring
	l.leave = l.sched.After(l.leaveFor, l.finish)
	if l.onLeave != nil {
		l.onLeave(reason)
	}
	return true
}

func (l *lifecycle) finish() {
	if l.phase == PhaseRemoved {
		return
	}
	l.phase = PhaseRemoved
	l.leave = nil
	if l.onRemoved != nil {
		l.onRemoved()
	}
}

// stop cancels everything without running the removal callback.
func (l *lifecycle) stop() {
	l.dismiss.Cancel()
	l.leave.Cancel()
	l.dismiss, l.leave = nil, nil
	l.dragging = false
	l.phase = PhaseRemoved
}

func (l *lifecycle) dragStart(x float64) bool {
	if l.phase != PhaseCounting && l.phase != PhasePaused {
		return false
	}
	l.dragging = true
	l.dragFrom = x
	l.offset = 0
	l.pause(PauseDrag)
	return true
}

func (l *lifecycle) dragMove(x float64) {
	if !l.dragging {
		return
	}
	l.offset = x - l.dragFrom
}

// dragEnd dismisses when the gesture travelled past the threshold and
// springs back otherwise. It reports whether the gesture dismissed.
func (l *lifecycle) dragEnd() bool {
	if !l.dragging {
		return false
	}
	l.dragging = false
	if math.Abs(l.offset) > l.threshold {
		return l.expire(ReasonSwiped)
	}
	l.offset = 0
	l.resume(PauseDrag)
	return false
}
