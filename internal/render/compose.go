package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kobzarvs/slate/internal/buffer"
	"github.com/kobzarvs/slate/internal/highlight"
	"github.com/kobzarvs/slate/internal/selection"
	"github.com/kobzarvs/slate/internal/view"
)

// Lines is the read side of a document.
type Lines interface {
	LineCount() int
	Line(i int) string
}

type StatusInfo struct {
	Name     string
	Exists   bool
	Modified bool
	Mode     string
	Message  string
}

// Input is everything one frame depends on.
type Input struct {
	Doc       Lines
	Viewport  view.Viewport
	Cursor    buffer.Pos
	Selection *selection.Selection
	Tokenizer highlight.Tokenizer
	Gutter    int
	Status    StatusInfo
}

// GutterWidth is the width of the line-number column for lineCount lines:
// the digits plus a cell on each side.
func GutterWidth(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1))) + 2
}

// TextArea splits a width x height screen into the text area and the gutter.
// The last row is reserved for the status line.
func TextArea(width, height, lineCount int, lineNumbers bool) (rows, cols, gutter int) {
	rows = max(height-1, 0)
	if lineNumbers {
		gutter = GutterWidth(lineCount)
		if gutter >= width {
			gutter = 0
		}
	}
	cols = max(width-gutter, 0)
	return rows, cols, gutter
}

// Compose builds the frame for a width x height screen.
func Compose(in Input, width, height int) Frame {
	f := Frame{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return f
	}
	tok := in.Tokenizer
	if tok == nil {
		tok = highlight.Plain
	}
	vp := in.Viewport
	rows := min(vp.Rows, height-1)
	f.Rows = make([][]Segment, max(rows, 0))
	for i := range f.Rows {
		lineIdx := vp.OffsetY + i
		if lineIdx < 0 || lineIdx >= in.Doc.LineCount() {
			continue
		}
		var segs []Segment
		if in.Gutter > 0 {
			segs = append(segs, Segment{
				Col:   0,
				Text:  fmt.Sprintf("%*d ", in.Gutter-1, lineIdx+1),
				Style: Style{Role: RoleGutter},
			})
		}
		line := in.Doc.Line(lineIdx)
		selStart, selEnd, selOK := -1, -1, false
		if in.Selection != nil {
			selStart, selEnd, selOK = in.Selection.RangeOnLine(lineIdx, utf8.RuneCountInString(line))
		}
		for _, seg := range composeLine(line, tok.Tokenize(line), selStart, selEnd, selOK, vp.OffsetX, min(vp.Cols, width-in.Gutter)) {
			seg.Col += in.Gutter
			segs = append(segs, seg)
		}
		f.Rows[i] = segs
	}

	f.Status = Segment{Text: StatusLine(in.Status, in.Cursor, in.Doc.LineCount(), width), Style: Style{Role: RoleStatus}}

	if row, col, ok := vp.ToScreen(in.Cursor); ok && row < rows && col+in.Gutter < width {
		f.CursorRow = row
		f.CursorCol = col + in.Gutter
		f.CursorVisible = true
	}
	return f
}

// composeLine paints token categories onto the line's columns, overlays the
// selection and clips to [offX, offX+cols). Tokens are painted in order;
// each paints the gap since the previous token's end as Default and then
// its own span, so a later token overwrites an earlier one where they meet.
func composeLine(line string, tokens []highlight.Token, selStart, selEnd int, selOK bool, offX, cols int) []Segment {
	runes := []rune(line)
	n := len(runes)
	if n == 0 || cols <= 0 || offX >= n {
		return nil
	}
	cats := make([]highlight.Category, n)
	paint := func(from, to int, c highlight.Category) {
		from, to = max(from, 0), min(to, n)
		for i := from; i < to; i++ {
			cats[i] = c
		}
	}
	last := 0
	for _, t := range tokens {
		if t.Start > last {
			paint(last, t.Start, highlight.Default)
		}
		paint(t.Start, t.End, t.Category)
		last = t.End
	}
	if last < n {
		paint(last, n, highlight.Default)
	}

	from := max(offX, 0)
	to := min(n, offX+cols)
	var segs []Segment
	start := from
	styleAt := func(i int) Style {
		return Style{Category: cats[i], Selected: selOK && i >= selStart && i < selEnd}
	}
	for i := from + 1; i <= to; i++ {
		if i < to && styleAt(i) == styleAt(start) {
			continue
		}
		segs = append(segs, Segment{Col: start - offX, Text: cellText(runes[start:i]), Style: styleAt(start)})
		start = i
	}
	return segs
}

// cellText makes runes safe to print: tabs and other control characters
// occupy one blank cell.
func cellText(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if unicode.IsControl(r) {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StatusLine formats the status bar, padded or truncated to width runes.
func StatusLine(info StatusInfo, cur buffer.Pos, lineCount, width int) string {
	name := "untitled"
	if info.Name != "" {
		name = info.Name
	}
	if info.Modified {
		name += "*"
	}
	if !info.Exists {
		name += " (new)"
	}
	mode := info.Mode
	if mode == "" {
		mode = "EDIT"
	}
	s := fmt.Sprintf("%s | Ln %d/%d | Col %d | %s", name, cur.Line+1, lineCount, cur.Col+1, mode)
	if info.Message != "" {
		s += " | " + info.Message
	}
	return fit(s, width)
}

func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) > width {
		return string(rs[:width])
	}
	return s + strings.Repeat(" ", width-len(rs))
}
