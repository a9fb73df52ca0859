package render

import (
	"strings"

	"github.com/kobzarvs/slate/internal/highlight"
)

type Role int

const (
	RoleText Role = iota
	RoleGutter
	RoleStatus
)

// Style is what a backend needs to pick colors: the semantic category, the
// selection overlay and the screen region.
type Style struct {
	Category highlight.Category
	Selected bool
	Role     Role
}

// Segment is a run of cells starting at screen column Col sharing one style.
type Segment struct {
	Col   int
	Text  string
	Style Style
}

// DrawCall places text at a screen cell.
type DrawCall struct {
	Row   int
	Col   int
	Text  string
	Style Style
}

// Frame is one composed screen: the text rows, the status line in the last
// row and the cursor cell.
type Frame struct {
	Width  int
	Height int

	Rows   [][]Segment
	Status Segment

	CursorRow     int
	CursorCol     int
	CursorVisible bool
}

// Calls flattens the frame into draw calls, text rows first.
func (f Frame) Calls() []DrawCall {
	var calls []DrawCall
	for row, segs := range f.Rows {
		for _, seg := range segs {
			calls = append(calls, DrawCall{Row: row, Col: seg.Col, Text: seg.Text, Style: seg.Style})
		}
	}
	if f.Height > 0 {
		calls = append(calls, DrawCall{Row: f.Height - 1, Col: f.Status.Col, Text: f.Status.Text, Style: f.Status.Style})
	}
	return calls
}

// RowText renders text row i as plain text, gaps filled with spaces and
// trailing space trimmed.
func (f Frame) RowText(i int) string {
	if i < 0 || i >= len(f.Rows) {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, seg := range f.Rows[i] {
		for col < seg.Col {
			b.WriteByte(' ')
			col++
		}
		for _, r := range seg.Text {
			b.WriteRune(r)
			col++
		}
	}
	return strings.TrimRight(b.String(), " ")
}
