package toast

import (
	"container/heap"
	"time"
)

// Clock supplies the current time to the scheduler and lifecycle timers.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Task is a cancellable handle to a callback scheduled on a Scheduler.
type Task struct {
	deadline time.Time
	seq      uint64
	fn       func()
	index    int // position in the heap, -1 once fired or cancelled
	s        *Scheduler
}

// Cancel removes the task from its scheduler. Safe to call more than once,
// on a nil task, or after the task has fired.
func (t *Task) Cancel() {
	if t == nil || t.index < 0 {
		return
	}
	heap.Remove(&t.s.tasks, t.index)
}

// Active reports whether the task is still waiting to fire.
func (t *Task) Active() bool {
	return t != nil && t.index >= 0
}

// Deadline returns when the task is due.
func (t *Task) Deadline() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.deadline
}

type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*Task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler runs deferred callbacks on the caller's goroutine.
//
// Nothing fires on its own: the owner calls Advance with the current time
// (the UI tick) and every task whose deadline has passed runs, in deadline
// order. Tasks scheduled from inside a firing task are measured from that
// task's deadline, so a chain of timers catches up in one Advance even when
// ticks arrive late.
type Scheduler struct {
	clock   Clock
	tasks   taskHeap
	seq     uint64
	firing  bool
	current time.Time
	stopped bool
}

// NewScheduler creates a scheduler reading time from clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's notion of the current time. While a task is
// firing this is the task's deadline.
func (s *Scheduler) Now() time.Time {
	if s.firing {
		return s.current
	}
	return s.clock.Now()
}

// After schedules fn to run d from now. A stopped scheduler returns an
// inactive task and never runs fn.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	t := &Task{fn: fn, index: -1, s: s}
	if s.stopped {
		return t
	}
	if d < 0 {
		d = 0
	}
	s.seq++
	t.seq = s.seq
	t.deadline = s.Now().Add(d)
	heap.Push(&s.tasks, t)
	return t
}

// Advance runs every task due at or before now and returns how many ran.
func (s *Scheduler) Advance(now time.Time) int {
	fired := 0
	for !s.stopped && len(s.tasks) > 0 && !s.tasks[0].deadline.After(now) {
		t := heap.Pop(&s.tasks).(*Task)
		s.run(t)
		fired++
	}
	return fired
}

func (s *Scheduler) run(t *Task) {
	prevFiring, prevCurrent := s.firing, s.current
	s.firing, s.current = true, t.deadline
	defer func() { s.firing, s.current = prevFiring, prevCurrent }()
	t.fn()
}

// Next returns the earliest pending deadline.
func (s *Scheduler) Next() (time.Time, bool) {
	if len(s.tasks) == 0 {
		return time.Time{}, false
	}
	return s.tasks[0].deadline, true
}

// Pending returns the number of tasks waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Stop cancels every pending task. Later calls to After are inert.
func (s *Scheduler) Stop() {
	for len(s.tasks) > 0 {
		heap.Pop(&s.tasks)
	}
	s.stopped = true
}
