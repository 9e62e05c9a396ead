// Package cursor tracks a selection and scroll offset in a list.
package cursor

// Cursor is a position and a scroll offset. The list length and viewport
// height are arguments rather than fields because both change over time.
type Cursor struct {
	pos    int
	offset int // first visible item
	margin int // items kept visible around pos
}

// New creates a cursor keeping margin items visible around the selection.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible index.
func (c Cursor) Offset() int {
	return c.offset
}

// Move shifts the selection by delta, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart selects the first item.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd selects the last item.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

// ClampToBounds pulls the cursor back inside a list that shrank. It
// reports whether the position changed.
func (c *Cursor) ClampToBounds(listLen, height int) bool {
	old := c.pos
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return old != 0
	}
	c.pos = clamp(c.pos, listLen-1)
	c.ensureVisible(listLen, height)
	return c.pos != old
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	return start, min(start+height, listLen)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
