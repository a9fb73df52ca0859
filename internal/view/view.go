package view

import "github.com/kobzarvs/slate/internal/buffer"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Text is the part of the document cursor movement needs.
type Text interface {
	LineCount() int
	LineLen(i int) int
}

// Move computes the cursor position after one step in dir. It returns false
// when the step would leave the document; the position is then unchanged.
func Move(t Text, cur buffer.Pos, dir Direction) (buffer.Pos, bool) {
	switch dir {
	case Up:
		if cur.Line == 0 {
			return cur, false
		}
		return buffer.Pos{Line: cur.Line - 1, Col: min(cur.Col, t.LineLen(cur.Line-1))}, true
	case Down:
		if cur.Line >= t.LineCount()-1 {
			return cur, false
		}
		return buffer.Pos{Line: cur.Line + 1, Col: min(cur.Col, t.LineLen(cur.Line+1))}, true
	case Left:
		if cur.Col > 0 {
			return buffer.Pos{Line: cur.Line, Col: cur.Col - 1}, true
		}
		if cur.Line == 0 {
			return cur, false
		}
		return buffer.Pos{Line: cur.Line - 1, Col: t.LineLen(cur.Line - 1)}, true
	case Right:
		if cur.Col < t.LineLen(cur.Line) {
			return buffer.Pos{Line: cur.Line, Col: cur.Col + 1}, true
		}
		if cur.Line >= t.LineCount()-1 {
			return cur, false
		}
		return buffer.Pos{Line: cur.Line + 1, Col: 0}, true
	}
	return cur, false
}

// Viewport is the visible window onto the document: the buffer coordinate
// shown at the top-left corner plus the size of the text area.
type Viewport struct {
	OffsetY int
	OffsetX int
	Rows    int
	Cols    int

	// HorizontalScroll keeps the cursor column on screen too. Without it
	// OffsetX stays 0 and long lines are clipped.
	HorizontalScroll bool
}

// Resize sets the text area extents. Offsets are fixed up by the next Follow.
func (v *Viewport) Resize(rows, cols int) {
	v.Rows = max(rows, 0)
	v.Cols = max(cols, 0)
}

// Follow scrolls by the minimum amount that brings cur into view and
// reports whether the offsets changed.
func (v *Viewport) Follow(cur buffer.Pos) bool {
	oldY, oldX := v.OffsetY, v.OffsetX
	v.OffsetY = follow(v.OffsetY, cur.Line, v.Rows)
	if v.HorizontalScroll {
		v.OffsetX = follow(v.OffsetX, cur.Col, v.Cols)
	} else {
		v.OffsetX = 0
	}
	return v.OffsetY != oldY || v.OffsetX != oldX
}

func follow(offset, pos, span int) int {
	if offset < 0 {
		offset = 0
	}
	if span <= 0 {
		return offset
	}
	if pos < offset {
		return pos
	}
	if pos >= offset+span {
		return pos - span + 1
	}
	return offset
}

// ToScreen maps a buffer position into text-area coordinates. ok is false
// when the position is outside the visible region.
func (v Viewport) ToScreen(p buffer.Pos) (row, col int, ok bool) {
	row = p.Line - v.OffsetY
	col = p.Col - v.OffsetX
	ok = row >= 0 && row < v.Rows && col >= 0 && col < v.Cols
	return row, col, ok
}
