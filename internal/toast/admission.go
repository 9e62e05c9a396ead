package toast

import (
	"slices"
	"time"
)

// entry is a live notification: its record plus its timer.
type entry struct {
	rec  Record
	life *lifecycle
}

// admission bounds the visible set and holds the overflow.
//
// The visible list is FIFO. While overflow is non-empty a cadence task
// moves the oldest overflow entry in every interval, evicting the oldest
// visible entries beyond the bound. The cadence task exists only while
// there is overflow.
type admission struct {
	sched    *Scheduler
	max      int
	interval time.Duration

	visible  []*entry
	overflow []*entry
	pump     *Task

	onAdmit func(*entry)
	onEvict func(*entry)
}

func newAdmission(sched *Scheduler, maxVisible int, interval time.Duration) *admission {
	return &admission{
		sched:    sched,
		max:      max(maxVisible, 0),
		interval: interval,
	}
}

// submit shows e when there is room and queues it otherwise.
func (a *admission) submit(e *entry) {
	if len(a.visible) < a.max {
		a.show(e)
		return
	}
	a.overflow = append(a.overflow, e)
	a.schedulePump()
}

func (a *admission) show(e *entry) {
	a.visible = append(a.visible, e)
	for len(a.visible) > a.max {
		oldest := a.visible[0]
		a.visible = a.visible[1:]
		if a.onEvict != nil {
			a.onEvict(oldest)
		}
	}
	if slices.Contains(a.visible, e) && a.onAdmit != nil {
		a.onAdmit(e)
	}
}

// schedulePump starts the cadence if overflow is waiting and none runs.
// With a zero bound nothing can ever be admitted, so it never starts.
func (a *admission) schedulePump() {
	if a.pump.Active() || len(a.overflow) == 0 || a.max == 0 {
		return
	}
	a.pump = a.sched.After(a.interval, a.drainOne)
}

func (a *admission) drainOne() {
	a.pump = nil
	if len(a.overflow) == 0 {
		return
	}
	next := a.overflow[0]
	a.overflow = a.overflow[1:]
	a.show(next)
	a.schedulePump()
}

// remove drops e from whichever list holds it and reports which.
func (a *admission) remove(e *entry) (wasVisible, wasQueued bool) {
	if i := slices.Index(a.visible, e); i >= 0 {
		a.visible = slices.Delete(a.visible, i, i+1)
		wasVisible = true
	}
	if i := slices.Index(a.overflow, e); i >= 0 {
		a.overflow = slices.Delete(a.overflow, i, i+1)
		wasQueued = true
	}
	if len(a.overflow) == 0 {
		a.pump.Cancel()
		a.pump = nil
	}
	return wasVisible, wasQueued
}

func (a *admission) queued(e *entry) bool {
	return slices.Contains(a.overflow, e)
}

func (a *admission) stop() {
	a.pump.Cancel()
	a.pump = nil
}
