// Package app is the terminal front-end. It renders the notification stack,
// turns keys and mouse gestures into manager calls and drives the
// manager's timers with ticks.
package app

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/toasty/internal/keymap"
	"github.com/llehouerou/toasty/internal/toast"
	"github.com/llehouerou/toasty/internal/ui/historypopup"
	"github.com/llehouerou/toasty/internal/ui/thumb"
)

// Deps are the collaborators of the model. Zero values are usable.
type Deps struct {
	History historypopup.Source // nil when history is disabled
	Copy    func(string) error  // default: system clipboard
	Stderr  <-chan string       // captured C library output
	Log     zerolog.Logger
	Now     func() time.Time // default: time.Now
}

// Model is the root application model.
type Model struct {
	Manager *toast.Manager
	Popups  PopupManager
	Help    help.Model
	Width   int
	Height  int

	keys     keymap.Resolver
	history  historypopup.Source
	copyText func(string) error
	stderrCh <-chan string
	log      zerolog.Logger
	now      func() time.Time

	thumbs   map[toast.ID]thumb.Thumb
	loading  map[toast.ID]bool
	hovered  toast.ID
	dragging toast.ID
	ticking  bool
	samples  int
	template int
}

// New creates the model around the manager of the provider carried by ctx.
func New(ctx context.Context, deps Deps) (Model, error) {
	mgr, err := toast.From(ctx)
	if err != nil {
		return Model{}, err
	}
	if deps.Copy == nil {
		deps.Copy = clipboard.WriteAll
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return Model{
		Manager:  mgr,
		Popups:   NewPopupManager(),
		Help:     help.New(),
		keys:     keymap.ForContexts("global", "toast"),
		history:  deps.History,
		copyText: deps.Copy,
		stderrCh: deps.Stderr,
		log:      deps.Log.With().Str("component", "app").Logger(),
		now:      deps.Now,
		thumbs:   make(map[toast.ID]thumb.Thumb),
		loading:  make(map[toast.ID]bool),
	}, nil
}

// Init starts listening for captured stderr and schedules the first sync,
// which picks up notifications added before the program started.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return syncMsg{} },
		waitForStderr(m.stderrCh),
	)
}
