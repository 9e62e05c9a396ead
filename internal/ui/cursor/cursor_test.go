package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		moves      []int
		listLen    int
		height     int
		wantPos    int
		wantOffset int
	}{
		{name: "within viewport", moves: []int{1, 1}, listLen: 10, height: 5, wantPos: 2},
		{name: "clamps at end", moves: []int{20}, listLen: 10, height: 5, wantPos: 9, wantOffset: 5},
		{name: "clamps at start", moves: []int{-3}, listLen: 10, height: 5},
		{name: "scrolls down", moves: []int{5}, listLen: 10, height: 5, wantPos: 5, wantOffset: 1},
		{name: "scrolls back up", moves: []int{9, -8}, listLen: 10, height: 5, wantPos: 1, wantOffset: 1},
		{name: "margin scrolls early", margin: 1, moves: []int{4}, listLen: 10, height: 5, wantPos: 4, wantOffset: 1},
		{name: "margin capped by height", margin: 5, moves: []int{1}, listLen: 10, height: 3, wantPos: 1},
		{name: "empty list", moves: []int{1}, listLen: 0, height: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			for _, d := range tt.moves {
				c.Move(d, tt.listLen, tt.height)
			}
			if c.Pos() != tt.wantPos || c.Offset() != tt.wantOffset {
				t.Errorf("pos, offset = %d, %d; want %d, %d", c.Pos(), c.Offset(), tt.wantPos, tt.wantOffset)
			}
		})
	}
}

func TestJumps(t *testing.T) {
	c := New(0)
	c.JumpEnd(10, 4)
	if c.Pos() != 9 || c.Offset() != 6 {
		t.Errorf("JumpEnd: pos, offset = %d, %d; want 9, 6", c.Pos(), c.Offset())
	}
	c.JumpStart()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("JumpStart: pos, offset = %d, %d; want 0, 0", c.Pos(), c.Offset())
	}

	c.JumpEnd(0, 4)
	if c.Pos() != 0 {
		t.Errorf("JumpEnd on empty list moved to %d", c.Pos())
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.JumpEnd(10, 4)

	if !c.ClampToBounds(5, 4) {
		t.Error("shrinking below the cursor should report a change")
	}
	if c.Pos() != 4 || c.Offset() != 1 {
		t.Errorf("pos, offset = %d, %d; want 4, 1", c.Pos(), c.Offset())
	}
	if c.ClampToBounds(5, 4) {
		t.Error("no change expected")
	}
	if !c.ClampToBounds(0, 4) || c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("empty list: pos, offset = %d, %d", c.Pos(), c.Offset())
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name               string
		move               int
		listLen, height    int
		wantStart, wantEnd int
	}{
		{name: "short list", listLen: 3, height: 5, wantEnd: 3},
		{name: "first page", listLen: 10, height: 4, wantEnd: 4},
		{name: "scrolled", move: 6, listLen: 10, height: 4, wantStart: 3, wantEnd: 7},
		{name: "empty", listLen: 0, height: 4},
		{name: "no height", listLen: 5, height: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0)
			c.Move(tt.move, tt.listLen, tt.height)
			start, end := c.VisibleRange(tt.listLen, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange() = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
