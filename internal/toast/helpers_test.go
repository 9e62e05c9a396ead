package toast

import (
	"time"

	"github.com/rs/zerolog"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

// recordingAlerter records alert calls.
type recordingAlerter struct {
	calls []alertCall
}

type alertCall struct {
	id      ID
	sound   bool
	desktop bool
}

func (a *recordingAlerter) Alert(r Record, sound, desktop bool) {
	a.calls = append(a.calls, alertCall{id: r.ID, sound: sound, desktop: desktop})
}

// recordingSink records history writes.
type recordingSink struct {
	records []Record
	reasons []DismissReason
	err     error
}

func (s *recordingSink) Record(r Record, reason DismissReason) error {
	s.records = append(s.records, r)
	s.reasons = append(s.reasons, reason)
	return s.err
}

type harness struct {
	clock *fakeClock
	mgr   *Manager
}

func newHarness(mutate func(*Options)) *harness {
	clock := newFakeClock()
	opts := DefaultOptions()
	opts.Clock = clock
	opts.Logger = zerolog.Nop()
	if mutate != nil {
		mutate(&opts)
	}
	return &harness{clock: clock, mgr: NewManager(opts)}
}

// wait moves the clock forward and fires due timers.
func (h *harness) wait(d time.Duration) {
	h.clock.now = h.clock.now.Add(d)
	h.mgr.Advance(h.clock.now)
}

func (h *harness) messages() []string {
	snap := h.mgr.Snapshot()
	out := make([]string, 0, len(snap.Visible))
	for _, v := range snap.Visible {
		out = append(out, v.Message)
	}
	return out
}

func (h *harness) view(id ID) (View, bool) {
	for _, v := range h.mgr.Snapshot().Visible {
		if v.ID == id {
			return v, true
		}
	}
	return View{}, false
}
