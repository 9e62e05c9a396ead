package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toasty/internal/errmsg"
	"github.com/llehouerou/toasty/internal/history"
	"github.com/llehouerou/toasty/internal/toast"
	"github.com/llehouerou/toasty/internal/ui/historypopup"
	"github.com/llehouerou/toasty/internal/ui/popup"
	"github.com/llehouerou/toasty/internal/ui/render"
	"github.com/llehouerou/toasty/internal/ui/thumb"
)

const (
	stderrTitle       = "Audio backend"
	copiedDuration    = 1500 * time.Millisecond
	imageFailedNotice = "image unavailable"
)

// Update handles messages and returns updated model and commands. Every
// message is followed by a sync so new images get loaded and ticking
// resumes whenever the manager has pending timers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	sc := next.sync()
	return next, tea.Batch(cmd, sc)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Popups.SetSize(msg.Width, msg.Height)
		m.Help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.ticking = false
		m.Manager.Advance(time.Time(msg))
		m.pruneThumbs()
		return m, nil

	case syncMsg:
		return m, nil

	case ImageLoadedMsg:
		return m.handleImageLoaded(msg), nil

	case StderrMsg:
		m.Manager.Add(render.Sanitize(string(msg)),
			toast.WithType(toast.TypeWarning),
			toast.WithTitle(stderrTitle),
		)
		return m, waitForStderr(m.stderrCh)

	case CopiedMsg:
		if msg.Err != nil {
			m.log.Warn().Err(msg.Err).Msg("clipboard copy failed")
			m.Manager.Add(errmsg.Format(errmsg.OpClipboardCopy, msg.Err), toast.WithType(toast.TypeError))
			return m, nil
		}
		m.Manager.Add("Copied to clipboard",
			toast.WithType(toast.TypeSuccess),
			toast.WithPriority("LOW"),
			toast.WithDuration(copiedDuration),
		)
		return m, nil

	case popup.CloseMsg:
		m.Popups.Hide()
		return m, nil

	case historypopup.RestoreMsg:
		m.Popups.Hide()
		m.restore(msg.Entry)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// Popup-specific results (history loading, clearing).
	if m.Popups.Active() {
		return m, m.Popups.Update(msg)
	}
	return m, nil
}

func (m Model) handleImageLoaded(msg ImageLoadedMsg) Model {
	delete(m.loading, msg.ID)
	if !m.Manager.Contains(msg.ID) {
		return m
	}
	if msg.Err != nil {
		m.log.Warn().Err(msg.Err).Stringer("id", msg.ID).Str("path", msg.Path).
			Msg(errmsg.FormatWith(errmsg.OpImageLoad, msg.Path, msg.Err))
		m.thumbs[msg.ID] = thumbPlaceholder()
	} else {
		m.thumbs[msg.ID] = msg.Thumb
	}
	// A failed load releases the countdown as well.
	m.Manager.SetReady(msg.ID)
	return m
}

func thumbPlaceholder() thumb.Thumb {
	return thumb.Thumb{Lines: []string{imageFailedNotice}, Width: len(imageFailedNotice), Height: 1}
}

// sync starts image loads for visible notifications and keeps exactly one
// tick in flight while the manager has pending timers.
func (m *Model) sync() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.Manager.Snapshot().Visible {
		if v.Image == "" || m.loading[v.ID] {
			continue
		}
		if _, ok := m.thumbs[v.ID]; ok {
			continue
		}
		m.loading[v.ID] = true
		cmds = append(cmds, loadImageCmd(v.ID, v.Image))
	}
	if !m.ticking && m.Manager.Busy() {
		m.ticking = true
		cmds = append(cmds, TickCmd(m.Manager.ProgressInterval()))
	}
	return tea.Batch(cmds...)
}

func (m Model) pruneThumbs() {
	for id := range m.thumbs {
		if !m.Manager.Contains(id) {
			delete(m.thumbs, id)
		}
	}
}

// restore shows a history entry again as a new notification.
func (m Model) restore(e history.Entry) toast.ID {
	opts := []toast.AddOption{
		toast.WithType(e.Type),
		toast.WithPriority(e.Priority),
		toast.WithCategory(e.Category),
	}
	if e.Title != "" {
		opts = append(opts, toast.WithTitle(e.Title))
	}
	return m.Manager.Add(e.Message, opts...)
}
