// Package list is a scrollable selection over a slice of items. Callers
// render the visible range themselves.
package list

import "github.com/llehouerou/toasty/internal/ui/cursor"

// Model holds the items, the selection and the viewport size.
type Model[T any] struct {
	items         []T
	cursor        cursor.Cursor
	width, height int
}

// New creates an empty list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{cursor: cursor.New(margin)}
}

// SetSize sets the viewport. The selection stays visible.
func (m *Model[T]) SetSize(width, height int) {
	m.width, m.height = width, max(height, 0)
	m.cursor.ClampToBounds(len(m.items), m.height)
}

// Width returns the viewport width.
func (m Model[T]) Width() int { return m.width }

// Height returns the viewport height in rows.
func (m Model[T]) Height() int { return m.height }

// SetItems replaces the items, keeping the selection in bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items), m.Height())
}

// Items returns the items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the selected item, or false when the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// Move shifts the selection.
func (m *Model[T]) Move(delta int) {
	m.cursor.Move(delta, len(m.items), m.Height())
}

// Top selects the first item.
func (m *Model[T]) Top() {
	m.cursor.JumpStart()
}

// Bottom selects the last item.
func (m *Model[T]) Bottom() {
	m.cursor.JumpEnd(len(m.items), m.Height())
}

// VisibleRange returns the [start, end) indices to render.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.Height())
}
