package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toasty/internal/toast"
	"github.com/llehouerou/toasty/internal/ui/thumb"
	"github.com/llehouerou/toasty/internal/ui/toastview"
)

// TickCmd returns a command that sends TickMsg after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func loadImageCmd(id toast.ID, path string) tea.Cmd {
	return func() tea.Msg {
		th, err := thumb.Load(path, toastview.ThumbCols, toastview.ThumbRows)
		return ImageLoadedMsg{ID: id, Path: path, Thumb: th, Err: err}
	}
}

// waitForStderr returns a command that waits for the next captured line.
func waitForStderr(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return StderrMsg(line)
	}
}

func copyCmd(copyText func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: copyText(text)}
	}
}
