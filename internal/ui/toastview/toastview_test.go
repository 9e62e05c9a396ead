package toastview

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/toasty/internal/toast"
	"github.com/llehouerou/toasty/internal/ui/testutil"
	"github.com/llehouerou/toasty/internal/ui/thumb"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func view(id toast.ID, msg string) toast.View {
	return toast.View{
		Record: toast.Record{
			ID:        id,
			Message:   msg,
			Type:      toast.Type{Key: toast.TypeInfo},
			Duration:  5 * time.Second,
			CreatedAt: now.Add(-3 * time.Second),
			Count:     1,
		},
		Progress:    50,
		HasProgress: true,
	}
}

func params() Params {
	return Params{Width: 100, Height: 40, Now: now}
}

func TestLayoutTopRight(t *testing.T) {
	snap := toast.Snapshot{
		Position: toast.TopRight,
		Visible:  []toast.View{view(1, "first"), view(2, "second")},
	}
	blocks := Layout(snap, params())
	require.Len(t, blocks, 2)

	a, b := blocks[0].Bounds, blocks[1].Bounds
	assert.Equal(t, margin, a.Y)
	assert.Equal(t, a.Y+a.H, b.Y, "second toast stacks below the first")
	assert.Equal(t, 100-margin, a.X+a.W, "right edge sits at the margin")
	assert.Equal(t, DefaultWidth, a.W)
}

func TestLayoutAnchors(t *testing.T) {
	tests := []struct {
		pos   toast.Position
		check func(t *testing.T, r Rect)
	}{
		{toast.TopLeft, func(t *testing.T, r Rect) {
			assert.Equal(t, margin, r.X)
			assert.Equal(t, margin, r.Y)
		}},
		{toast.BottomLeft, func(t *testing.T, r Rect) {
			assert.Equal(t, margin, r.X)
			assert.Equal(t, 40-margin, r.Y+r.H)
		}},
		{toast.BottomRight, func(t *testing.T, r Rect) {
			assert.Equal(t, 100-margin, r.X+r.W)
			assert.Equal(t, 40-margin, r.Y+r.H)
		}},
		{toast.TopCenter, func(t *testing.T, r Rect) {
			assert.Equal(t, (100-r.W)/2, r.X)
		}},
		{toast.BottomCenter, func(t *testing.T, r Rect) {
			assert.Equal(t, (100-r.W)/2, r.X)
			assert.Equal(t, 40-margin, r.Y+r.H)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			snap := toast.Snapshot{Position: tt.pos, Visible: []toast.View{view(1, "hello")}}
			blocks := Layout(snap, params())
			require.Len(t, blocks, 1)
			tt.check(t, blocks[0].Bounds)
		})
	}
}

func TestLayoutEmptyScreen(t *testing.T) {
	snap := toast.Snapshot{Visible: []toast.View{view(1, "x")}}
	assert.Nil(t, Layout(snap, Params{}))
}

func TestLayoutQueueIndicator(t *testing.T) {
	snap := toast.Snapshot{Position: toast.TopRight, Visible: []toast.View{view(1, "a")}, Queued: 3}
	blocks := Layout(snap, params())
	require.Len(t, blocks, 2)
	assert.Zero(t, blocks[1].ID)
	assert.Contains(t, testutil.StripANSI(blocks[1].Content), "+3 queued")
}

func TestLayoutDragOffset(t *testing.T) {
	v := view(1, "drag me")
	base := Layout(toast.Snapshot{Position: toast.TopLeft, Visible: []toast.View{v}}, params())[0]

	v.Offset = 4 * UnitsPerCell
	moved := Layout(toast.Snapshot{Position: toast.TopLeft, Visible: []toast.View{v}}, params())[0]
	assert.Equal(t, base.Bounds.X+4, moved.Bounds.X)
	assert.Equal(t, base.Close.X+4, moved.Close.X)
}

func TestCardContent(t *testing.T) {
	v := view(1, "Deploy **finished** on `prod`")
	v.Style.Title = "Pipeline"
	v.Style.Description = "Took 3 minutes"
	out := testutil.StripANSI(card(v, true, params()).Content)

	assert.True(t, testutil.ContainsLine(out, "Pipeline"))
	assert.True(t, testutil.ContainsLine(out, "Deploy finished on prod"))
	assert.True(t, testutil.ContainsLine(out, "Took 3 minutes"))
	assert.True(t, testutil.ContainsLine(out, "3 seconds ago"))
	assert.True(t, testutil.ContainsLine(out, "━"), "progress bar expected")
	assert.False(t, testutil.ContainsLine(out, "Urgent"))

	raw := testutil.StripANSI(card(v, false, params()).Content)
	assert.True(t, testutil.ContainsLine(raw, "**finished**"), "markdown disabled keeps markers")
}

func TestCardMarkdownBlocks(t *testing.T) {
	v := view(1, "## Release notes\n\n- fixed `cache_key` lookup\n- faster start")
	v.Expanded = true
	out := testutil.StripANSI(card(v, true, params()).Content)

	assert.True(t, testutil.ContainsLine(out, "Release notes"))
	assert.False(t, testutil.ContainsLine(out, "##"))
	assert.True(t, testutil.ContainsLine(out, "• fixed cache_key lookup"))
	assert.True(t, testutil.ContainsLine(out, "• faster start"))
}

func TestCardUrgentForever(t *testing.T) {
	v := view(1, "server down")
	v.Priority = toast.PriorityUrgent
	v.Duration = toast.Forever
	v.HasProgress = false
	out := testutil.StripANSI(card(v, true, params()).Content)

	assert.True(t, testutil.ContainsLine(out, "Urgent"))
	assert.False(t, testutil.ContainsLine(out, "━"), "no progress bar for forever toasts")
}

func TestCardClampsUntilExpanded(t *testing.T) {
	v := view(1, strings.Repeat("word ", 60))
	collapsed := card(v, true, params())

	v.Expanded = true
	expanded := card(v, true, params())

	assert.Greater(t, expanded.Bounds.H, collapsed.Bounds.H)
	assert.True(t, testutil.ContainsLine(testutil.StripANSI(collapsed.Content), "…"))
}

func TestCardWidthsAreConsistent(t *testing.T) {
	v := view(1, "日本語のメッセージ with **mixed** width text that wraps around")
	v.Style.Actions = []toast.Action{{Label: "Retry"}, {Label: "Report"}}
	b := card(v, true, params())
	for _, line := range strings.Split(b.Content, "\n") {
		assert.Equal(t, DefaultWidth, lipgloss.Width(line))
	}
}

func TestCardContainerWidth(t *testing.T) {
	v := view(1, "wide")
	v.Style.Container = map[string]string{"width": "60"}
	assert.Equal(t, 60, card(v, true, params()).Bounds.W)

	v.Style.Container = map[string]string{"width": "bogus"}
	assert.Equal(t, DefaultWidth, card(v, true, params()).Bounds.W)
}

func TestCardImage(t *testing.T) {
	v := view(7, "with image")
	v.Image = "/tmp/pic.png"

	loading := testutil.StripANSI(card(v, true, params()).Content)
	assert.True(t, testutil.ContainsLine(loading, "loading image"))

	p := params()
	p.Thumbs = map[toast.ID]thumb.Thumb{7: {Lines: []string{"IMGROW"}, Width: 6, Height: 1}}
	loaded := testutil.StripANSI(card(v, true, p).Content)
	assert.True(t, testutil.ContainsLine(loaded, "IMGROW"))
	assert.False(t, testutil.ContainsLine(loaded, "loading image"))
}

func TestCardLeavingIsPlain(t *testing.T) {
	v := view(1, "bye")
	v.Leaving = true
	b := card(v, true, params())
	assert.True(t, testutil.ContainsLine(testutil.StripANSI(b.Content), "bye"))
}

func TestHitTest(t *testing.T) {
	v := view(1, "click me")
	v.Style.Actions = []toast.Action{{Label: "Retry"}, {Label: "Report"}}
	blocks := Layout(toast.Snapshot{Position: toast.TopRight, Visible: []toast.View{v}, Queued: 1}, params())
	b := blocks[0]

	tests := []struct {
		name   string
		x, y   int
		target Target
		action int
	}{
		{"close", b.Close.X, b.Close.Y, TargetClose, 0},
		{"expand", b.Expand.X, b.Expand.Y, TargetExpand, 0},
		{"copy", b.Copy.X, b.Copy.Y, TargetCopy, 0},
		{"second action", b.Actions[1].X, b.Actions[1].Y, TargetAction, 1},
		{"body", b.Bounds.X + 2, b.Bounds.Y + 2, TargetBody, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := HitTest(blocks, tt.x, tt.y)
			require.True(t, ok)
			assert.Equal(t, toast.ID(1), h.ID)
			assert.Equal(t, tt.target, h.Target)
			assert.Equal(t, tt.action, h.Action)
		})
	}

	_, ok := HitTest(blocks, 0, 0)
	assert.False(t, ok, "empty screen area")
	q := blocks[1].Bounds
	_, ok = HitTest(blocks, q.X, q.Y)
	assert.False(t, ok, "queue indicator is not a toast")
}

func TestButtonsRenderedWhereRectsSay(t *testing.T) {
	b := card(view(1, "glyphs"), true, params())
	lines := strings.Split(testutil.StripANSI(b.Content), "\n")
	header := []rune(lines[b.Close.Y])
	// Header is ASCII apart from the glyphs and the border, so runes map
	// to cells.
	assert.Equal(t, "x", string(header[b.Close.X]))
	assert.Equal(t, "▾", string(header[b.Expand.X]))
	assert.Equal(t, "⧉", string(header[b.Copy.X]))
}

func TestPlainText(t *testing.T) {
	tests := []string{
		"**Saved** to [disk](file:///tmp)",
		"renamed snake_case_name to file_name",
		"line one\nline *two*",
	}
	for _, msg := range tests {
		assert.Equal(t, msg, PlainText(toast.Record{Message: msg}))
	}
	assert.Equal(t, "bell", PlainText(toast.Record{Message: "be\all"}))
}
