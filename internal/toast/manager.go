// Package toast manages the lifecycle of transient notifications: which
// ones are on screen, how long they stay, how they leave and how a
// dismissal is undone.
//
// A Manager is not safe for concurrent use. It is meant to live on a UI
// event loop: the loop calls Advance on every tick and the other methods in
// response to user input, all from the same goroutine.
package toast

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/toasty/internal/errmsg"
)

// AddOption customizes a notification passed to Manager.Add.
type AddOption func(*addParams)

type addParams struct {
	req       Request
	image     string
	animation Animation
	category  string
	sound     *bool
	desktop   *bool
}

// WithType sets the type key (SUCCESS, ERROR, WARNING, INFO or a custom key).
func WithType(key string) AddOption {
	return func(p *addParams) { p.req.Type = key }
}

// WithPriority sets the priority key (URGENT, HIGH, NORMAL, LOW).
func WithPriority(key string) AddOption {
	return func(p *addParams) { p.req.Priority = key }
}

// WithDuration overrides the resolved duration. Forever disables
// auto-dismiss.
func WithDuration(d time.Duration) AddOption {
	return func(p *addParams) { p.req.Duration = &d }
}

// WithStyle sets per-call style fields; empty fields keep the type's.
func WithStyle(s Style) AddOption {
	return func(p *addParams) {
		title, desc, actions := p.req.Style.Title, p.req.Style.Description, p.req.Style.Actions
		p.req.Style = s
		if s.Title == "" {
			p.req.Style.Title = title
		}
		if s.Description == "" {
			p.req.Style.Description = desc
		}
		if s.Actions == nil {
			p.req.Style.Actions = actions
		}
	}
}

func WithTitle(title string) AddOption {
	return func(p *addParams) { p.req.Style.Title = title }
}

func WithDescription(desc string) AddOption {
	return func(p *addParams) { p.req.Style.Description = desc }
}

func WithActions(actions ...Action) AddOption {
	return func(p *addParams) { p.req.Style.Actions = append(p.req.Style.Actions, actions...) }
}

// WithImage attaches an image. The countdown holds until SetReady is called
// for the notification.
func WithImage(ref string) AddOption {
	return func(p *addParams) { p.image = ref }
}

func WithAnimation(a Animation) AddOption {
	return func(p *addParams) { p.animation = a }
}

func WithCategory(c string) AddOption {
	return func(p *addParams) { p.category = c }
}

// WithAlerts overrides the priority's sound and desktop flags. The global
// switches still apply.
func WithAlerts(sound, desktop bool) AddOption {
	return func(p *addParams) {
		p.sound = &sound
		p.desktop = &desktop
	}
}

// View is a visible notification as the renderer sees it.
type View struct {
	Record
	Phase       Phase
	Progress    float64 // 100 down to 0
	HasProgress bool
	Offset      float64 // drag displacement in logical units
	Dragging    bool
	Leaving     bool
}

// Snapshot is a read-only copy of the manager state.
type Snapshot struct {
	Visible       []View
	Queued        int
	Undo          []Record
	Position      Position
	AllowMarkdown bool
}

// Manager owns the visible list, the overflow queue and the undo stack.
type Manager struct {
	opts     Options
	log      zerolog.Logger
	registry *Registry
	sched    *Scheduler
	queue    *admission
	undo     *UndoStack
	entries  map[ID]*entry
	lastID   ID
	closed   bool
}

// NewManager creates a manager. Zero-valued timing fields in opts fall back
// to the package defaults.
func NewManager(opts Options) *Manager {
	opts = opts.normalized()
	m := &Manager{
		opts:     opts,
		log:      opts.Logger.With().Str("component", "toast").Logger(),
		registry: NewRegistry(opts.CustomTypes, opts.DefaultDuration),
		sched:    NewScheduler(opts.Clock),
		undo:     NewUndoStack(opts.MaxUndo),
		entries:  make(map[ID]*entry),
	}
	m.queue = newAdmission(m.sched, opts.MaxVisible, opts.QueueCadence)
	m.queue.onAdmit = m.admitted
	m.queue.onEvict = m.evicted
	return m
}

// Options returns the normalized options the manager runs with.
func (m *Manager) Options() Options {
	return m.opts
}

// Registry returns the merged type table.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Add creates a notification and submits it for display. Unknown type or
// priority keys fall back to defaults. It returns 0 once the manager is
// closed.
func (m *Manager) Add(message string, opts ...AddOption) ID {
	if m.closed {
		m.log.Warn().Msg("add on closed manager ignored")
		return 0
	}

	var p addParams
	for _, opt := range opts {
		opt(&p)
	}
	res := m.registry.Resolve(p.req)

	rec := Record{
		ID:        m.nextID(),
		Message:   message,
		Type:      res.Type,
		Style:     res.Style,
		Duration:  res.Duration,
		Priority:  res.Priority,
		Sound:     res.Sound,
		Desktop:   res.Desktop,
		Image:     p.image,
		Animation: p.animation,
		Category:  p.category,
		CreatedAt: m.sched.Now(),
		Count:     1,
	}
	if p.sound != nil {
		rec.Sound = *p.sound
	}
	if p.desktop != nil {
		rec.Desktop = *p.desktop
	}

	e := m.newEntry(rec, rec.Image != "")
	m.queue.submit(e)

	m.log.Debug().
		Stringer("id", rec.ID).
		Str("type", rec.Type.Key).
		Stringer("priority", rec.Priority).
		Dur("duration", rec.Duration).
		Bool("queued", m.queue.queued(e)).
		Msg("notification added")

	m.alert(rec)
	return rec.ID
}

// Remove dismisses a notification as if the user closed it. Unknown or
// already dismissed IDs are ignored.
func (m *Manager) Remove(id ID) {
	e, ok := m.entries[id]
	if !ok {
		return
	}
	if m.queue.queued(e) {
		m.queue.remove(e)
		e.life.stop()
		delete(m.entries, id)
		m.dismissed(e, ReasonClosed)
		return
	}
	e.life.expire(ReasonClosed)
}

// Undo restores the most recently dismissed notification under a new ID.
// It returns false when there is nothing to restore.
func (m *Manager) Undo() (ID, bool) {
	if m.closed {
		return 0, false
	}
	rec, ok := m.undo.Pop()
	if !ok {
		return 0, false
	}
	oldID := rec.ID
	rec.ID = m.nextID()
	rec.CreatedAt = m.sched.Now()
	rec.Expanded = false

	// The image is reloaded for the new ID, so the countdown waits again.
	e := m.newEntry(rec, rec.Image != "")
	m.queue.submit(e)

	m.log.Debug().Stringer("id", rec.ID).Stringer("restored_from", oldID).Msg("dismissal undone")
	return rec.ID, true
}

// ToggleExpand flips the expanded flag of a notification.
func (m *Manager) ToggleExpand(id ID) {
	if e, ok := m.entries[id]; ok {
		e.rec.Expanded = !e.rec.Expanded
	}
}

// SetHovered pauses or resumes the countdown while the pointer is over the
// notification. It does nothing when pause-on-hover is disabled.
func (m *Manager) SetHovered(id ID, hovered bool) {
	if !m.opts.PauseOnHover {
		return
	}
	e := m.visibleEntry(id)
	if e == nil {
		return
	}
	if hovered {
		e.life.pause(PauseHover)
	} else {
		e.life.resume(PauseHover)
	}
}

// SetReady releases a notification whose image finished loading.
func (m *Manager) SetReady(id ID) {
	if e, ok := m.entries[id]; ok {
		e.life.resume(PauseLoading)
	}
}

// DragStart begins a swipe gesture at position x.
func (m *Manager) DragStart(id ID, x float64) bool {
	e := m.visibleEntry(id)
	if e == nil {
		return false
	}
	return e.life.dragStart(x)
}

// DragMove updates the gesture's current position.
func (m *Manager) DragMove(id ID, x float64) {
	if e := m.visibleEntry(id); e != nil {
		e.life.dragMove(x)
	}
}

// DragEnd finishes the gesture. It reports whether the notification was
// swiped away; otherwise it springs back.
func (m *Manager) DragEnd(id ID) bool {
	e := m.visibleEntry(id)
	if e == nil {
		return false
	}
	return e.life.dragEnd()
}

// InvokeAction runs the index-th action of a visible notification. A
// dismiss-on-click action dismisses before its callback runs, so a
// panicking callback cannot leave the notification stuck on screen.
func (m *Manager) InvokeAction(id ID, index int) bool {
	e := m.visibleEntry(id)
	if e == nil || index < 0 || index >= len(e.rec.Style.Actions) {
		return false
	}
	action := e.rec.Style.Actions[index]
	if action.DismissOnClick {
		m.Remove(id)
	}
	if action.Run != nil {
		action.Run()
	}
	return true
}

// Advance fires every timer due at now. The UI calls it on each tick.
func (m *Manager) Advance(now time.Time) int {
	return m.sched.Advance(now)
}

// Busy reports whether any timer is pending, i.e. whether the UI still
// needs to tick. Paused and never-expiring notifications do not count.
func (m *Manager) Busy() bool {
	return m.sched.Pending() > 0
}

// Contains reports whether id is visible or queued.
func (m *Manager) Contains(id ID) bool {
	_, ok := m.entries[id]
	return ok
}

// ProgressInterval is how often the UI should sample progress.
func (m *Manager) ProgressInterval() time.Duration {
	return m.opts.ProgressInterval
}

// Snapshot copies the state for rendering.
func (m *Manager) Snapshot() Snapshot {
	now := m.sched.Now()
	snap := Snapshot{
		Visible:       make([]View, 0, len(m.queue.visible)),
		Queued:        len(m.queue.overflow),
		Undo:          m.undo.Items(),
		Position:      m.opts.Position,
		AllowMarkdown: m.opts.AllowMarkdown,
	}
	for _, e := range m.queue.visible {
		snap.Visible = append(snap.Visible, View{
			Record:      e.rec,
			Phase:       e.life.phase,
			Progress:    e.life.progress(now),
			HasProgress: e.rec.Expires(),
			Offset:      e.life.offset,
			Dragging:    e.life.dragging,
			Leaving:     e.life.phase == PhaseExpiring,
		})
	}
	return snap
}

// Close cancels every timer. The manager ignores Add and Undo afterwards.
func (m *Manager) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.queue.stop()
	for id, e := range m.entries {
		e.life.stop()
		delete(m.entries, id)
	}
	m.queue.visible = nil
	m.queue.overflow = nil
	m.sched.Stop()
	m.log.Debug().Msg("manager closed")
}

// Closed reports whether Close was called.
func (m *Manager) Closed() bool {
	return m.closed
}

func (m *Manager) nextID() ID {
	m.lastID++
	return m.lastID
}

func (m *Manager) newEntry(rec Record, loading bool) *entry {
	life := newLifecycle(m.sched, rec.Duration, m.opts.LeaveDuration, m.opts.DragThreshold)
	if loading {
		life.paused |= PauseLoading
	}
	e := &entry{rec: rec, life: life}
	life.onLeave = func(reason DismissReason) { m.dismissed(e, reason) }
	life.onRemoved = func() { m.removed(e) }
	m.entries[rec.ID] = e
	return e
}

func (m *Manager) visibleEntry(id ID) *entry {
	e, ok := m.entries[id]
	if !ok || m.queue.queued(e) {
		return nil
	}
	return e
}

func (m *Manager) admitted(e *entry) {
	e.life.start()
}

func (m *Manager) evicted(e *entry) {
	e.life.stop()
	delete(m.entries, e.rec.ID)
	m.log.Debug().Stringer("id", e.rec.ID).Msg("notification evicted")
}

func (m *Manager) removed(e *entry) {
	m.queue.remove(e)
	delete(m.entries, e.rec.ID)
	m.log.Debug().Stringer("id", e.rec.ID).Msg("notification removed")
}

// dismissed runs once per notification, when it starts leaving.
func (m *Manager) dismissed(e *entry, reason DismissReason) {
	m.log.Debug().Stringer("id", e.rec.ID).Str("reason", string(reason)).Msg("notification dismissed")
	if m.opts.EnableUndo {
		m.undo.Push(e.rec)
	}
	if m.opts.EnableHistory && m.opts.History != nil {
		if err := m.opts.History.Record(e.rec, reason); err != nil {
			m.log.Warn().Err(err).Stringer("id", e.rec.ID).Msg(errmsg.Format(errmsg.OpHistorySave, err))
		}
	}
}

func (m *Manager) alert(rec Record) {
	if m.opts.Alerter == nil {
		return
	}
	sound := m.opts.SoundEnabled && rec.Sound
	desktop := m.opts.DesktopEnabled && rec.Desktop
	if sound || desktop {
		m.opts.Alerter.Alert(rec, sound, desktop)
	}
}
