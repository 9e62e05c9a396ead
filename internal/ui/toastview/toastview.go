// Package toastview renders the notification stack and maps mouse
// positions back to notifications.
package toastview

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/toasty/internal/icons"
	"github.com/llehouerou/toasty/internal/toast"
	"github.com/llehouerou/toasty/internal/ui/render"
	"github.com/llehouerou/toasty/internal/ui/styles"
	"github.com/llehouerou/toasty/internal/ui/thumb"
)

const (
	// DefaultWidth is the toast width in cells, border included.
	DefaultWidth = 44

	// UnitsPerCell converts terminal columns to drag units.
	UnitsPerCell = 8

	// ThumbCols and ThumbRows bound rendered notification images.
	ThumbCols = 12
	ThumbRows = 4

	collapsedLines     = 2
	collapsedDescLines = 1
	margin             = 1
	chrome             = 4 // border and padding, both sides
)

// Params carries what the renderer needs besides the snapshot.
type Params struct {
	Width, Height int // screen
	Now           time.Time
	Hovered       toast.ID
	Thumbs        map[toast.ID]thumb.Thumb
	ToastWidth    int // 0 = DefaultWidth
}

// Rect is a screen area in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Target is the part of a toast under the pointer.
type Target int

const (
	TargetNone Target = iota
	TargetBody
	TargetClose
	TargetExpand
	TargetCopy
	TargetAction
)

// Block is one rendered toast placed on screen. ID is zero for the queue
// indicator.
type Block struct {
	ID      toast.ID
	Content string
	Bounds  Rect
	Close   Rect
	Expand  Rect
	Copy    Rect
	Actions []Rect
}

// Hit is the result of a hit test.
type Hit struct {
	ID     toast.ID
	Target Target
	Action int // index when Target is TargetAction
}

// HitTest finds the toast part at (x, y). Later blocks win where blocks
// overlap.
func HitTest(blocks []Block, x, y int) (Hit, bool) {
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		if b.ID == 0 || !b.Bounds.Contains(x, y) {
			continue
		}
		h := Hit{ID: b.ID, Target: TargetBody}
		switch {
		case b.Close.Contains(x, y):
			h.Target = TargetClose
		case b.Expand.Contains(x, y):
			h.Target = TargetExpand
		case b.Copy.Contains(x, y):
			h.Target = TargetCopy
		default:
			for ai, r := range b.Actions {
				if r.Contains(x, y) {
					h.Target, h.Action = TargetAction, ai
					break
				}
			}
		}
		return h, true
	}
	return Hit{}, false
}

// Layout renders every visible toast and places the stack at the
// snapshot's anchor.
func Layout(snap toast.Snapshot, p Params) []Block {
	if p.Width <= 0 || p.Height <= 0 {
		return nil
	}

	blocks := make([]Block, 0, len(snap.Visible)+1)
	for _, v := range snap.Visible {
		blocks = append(blocks, card(v, snap.AllowMarkdown, p))
	}
	if snap.Queued > 0 {
		blocks = append(blocks, queueIndicator(snap.Queued))
	}

	total := 0
	for _, b := range blocks {
		total += b.Bounds.H
	}

	y := margin
	if !snap.Position.Top() {
		y = p.Height - margin - total
	}
	for i := range blocks {
		b := &blocks[i]
		x := anchorX(snap.Position, p.Width, b.Bounds.W)
		if i < len(snap.Visible) {
			x += int(snap.Visible[i].Offset / UnitsPerCell)
		}
		*b = b.moved(x, y)
		y += b.Bounds.H
	}
	return blocks
}

func anchorX(pos toast.Position, screenW, w int) int {
	switch pos {
	case toast.TopLeft, toast.BottomLeft:
		return margin
	case toast.TopCenter, toast.BottomCenter:
		return max((screenW-w)/2, 0)
	default:
		return max(screenW-w-margin, 0)
	}
}

func (b Block) moved(x, y int) Block {
	b.Bounds = b.Bounds.offset(x, y)
	b.Close = b.Close.offset(x, y)
	b.Expand = b.Expand.offset(x, y)
	b.Copy = b.Copy.offset(x, y)
	actions := make([]Rect, len(b.Actions))
	for i, r := range b.Actions {
		actions[i] = r.offset(x, y)
	}
	b.Actions = actions
	return b
}

func queueIndicator(n int) Block {
	text := styles.T().S().Muted.Render(fmt.Sprintf("+%d queued", n))
	return Block{Content: text, Bounds: Rect{W: lipgloss.Width(text), H: 1}}
}

// toastWidth honors a "width" entry in the record's container style.
func toastWidth(v toast.View, p Params) int {
	w := p.ToastWidth
	if w <= 0 {
		w = DefaultWidth
	}
	if s, ok := v.Style.Container["width"]; ok {
		if n, err := strconv.Atoi(s); err == nil && n > chrome+8 {
			w = n
		}
	}
	return min(w, max(p.Width-2*margin, chrome+1))
}

// card renders one toast at the origin. Button rects are relative to the
// block's top-left corner.
func card(v toast.View, allowMarkdown bool, p Params) Block {
	t := styles.T()
	st := t.S()
	width := toastWidth(v, p)
	inner := width - chrome

	fg := lipgloss.Color(v.Style.Foreground)
	if v.Style.Foreground == "" {
		fg = t.TypeColor(v.Type.Key)
	}
	accent := lipgloss.Color(v.Style.Border)
	if v.Style.Border == "" {
		accent = fg
	}
	base := st.Base
	if v.Style.Foreground != "" {
		base = base.Foreground(fg)
	}

	b := Block{ID: v.ID}
	var lines []string

	// Header: icon and title on the left, badge, age and buttons on the right.
	copyGlyph, expandGlyph, closeGlyph := "⧉", "▾", icons.Close()
	if v.Expanded {
		expandGlyph = "▴"
	}
	var right []string
	if v.Priority == toast.PriorityUrgent {
		right = append(right, st.Badge.Render("Urgent"))
	}
	if !v.CreatedAt.IsZero() && !p.Now.IsZero() {
		right = append(right, st.Subtle.Render(humanize.RelTime(v.CreatedAt, p.Now, "ago", "from now")))
	}
	right = append(right, copyGlyph, expandGlyph, closeGlyph)
	rightStr := strings.Join(right, " ")
	rightW := lipgloss.Width(rightStr)

	// Buttons sit at the end of the header, one space apart.
	col := inner - lipgloss.Width(closeGlyph)
	b.Close = Rect{X: 2 + col, Y: 1, W: lipgloss.Width(closeGlyph), H: 1}
	col -= 1 + lipgloss.Width(expandGlyph)
	b.Expand = Rect{X: 2 + col, Y: 1, W: lipgloss.Width(expandGlyph), H: 1}
	col -= 1 + lipgloss.Width(copyGlyph)
	b.Copy = Rect{X: 2 + col, Y: 1, W: lipgloss.Width(copyGlyph), H: 1}

	title := v.Style.Title
	if title == "" {
		title = displayName(v.Type.Key)
	}
	title = render.Truncate(title, max(inner-rightW-lipgloss.Width(icons.ForType(v.Type.Key))-2, 1))
	if v.Priority == toast.PriorityUrgent {
		title = styles.Gradient{From: t.Error, To: t.Secondary}.BoldText(title)
	} else {
		title = st.Title.Foreground(fg).Render(title)
	}
	left := lipgloss.NewStyle().Foreground(fg).Render(icons.ForType(v.Type.Key)) + " " + title
	lines = append(lines, render.Row(left, rightStr, inner))

	// Image, or a placeholder while it loads.
	if v.Image != "" {
		if th, ok := p.Thumbs[v.ID]; ok {
			lines = append(lines, th.Lines...)
		} else {
			lines = append(lines, st.Subtle.Render("loading image…"))
		}
	}

	// Message.
	msg := render.Sanitize(v.Message)
	var msgLines []string
	if allowMarkdown {
		text := t.FgBase
		if v.Style.Foreground != "" {
			text = fg
		}
		msgLines = markdownLines(msg, text, fg, inner)
	} else {
		msgLines = render.WrapStyled(base.Render(msg), inner)
	}
	if !v.Expanded {
		msgLines = render.Clamp(msgLines, collapsedLines, inner)
	}
	lines = append(lines, msgLines...)

	if v.Style.Description != "" {
		desc := render.Wrap(v.Style.Description, inner)
		if !v.Expanded {
			desc = render.Clamp(desc, collapsedDescLines, inner)
		}
		for _, d := range desc {
			lines = append(lines, st.Muted.Render(d))
		}
	}

	if v.Count > 1 {
		noun := "notifications"
		if v.Count == 2 {
			noun = "notification"
		}
		lines = append(lines, st.Muted.Bold(true).Render(fmt.Sprintf("+%d similar %s", v.Count-1, noun)))
	}

	// Actions on one row.
	if len(v.Style.Actions) > 0 {
		row := len(lines) + 1
		var parts []string
		x := 0
		for _, a := range v.Style.Actions {
			label := icons.Action() + " " + a.Label
			w := lipgloss.Width(label)
			if x+w > inner {
				break
			}
			parts = append(parts, st.Action.Render(label))
			b.Actions = append(b.Actions, Rect{X: 2 + x, Y: row, W: w, H: 1})
			x += w + 2
		}
		lines = append(lines, strings.Join(parts, "  "))
	}

	if v.HasProgress {
		lines = append(lines, styles.Gradient{From: fg, To: t.Primary}.Bar(inner, v.Progress))
	}

	for i, l := range lines {
		if lipgloss.Width(l) > inner {
			l = render.TruncateStyled(l, inner)
		}
		lines[i] = render.Pad(l, inner)
	}

	content := styles.FrameStyle(accent, p.Hovered == v.ID).Render(strings.Join(lines, "\n"))
	if v.Leaving {
		content = st.Leaving.Render(ansi.Strip(content))
	}

	b.Content = content
	b.Bounds = Rect{W: lipgloss.Width(content), H: lipgloss.Height(content)}
	return b
}

// displayName turns "SUCCESS" into "Success".
func displayName(key string) string {
	if key == "" {
		return ""
	}
	lower := strings.ToLower(key)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// PlainText returns the message as the user wrote it, markdown included,
// minus control characters.
func PlainText(r toast.Record) string {
	return render.Sanitize(r.Message)
}
