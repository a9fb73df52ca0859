package buffer

import (
	"strings"
	"unicode/utf8"
)

// byteIndex returns the byte offset of rune column col in s.
func byteIndex(s string, col int) int {
	if col <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == col {
			return i
		}
		n++
	}
	return len(s)
}

// InsertChar inserts r at pos and returns the position after it.
func (d *Document) InsertChar(pos Pos, r rune) Pos {
	return d.InsertText(pos, string(r))
}

// InsertText inserts text at pos, splitting it into lines on "\n" (and
// "\r\n"). It returns the position just after the inserted text.
func (d *Document) InsertText(pos Pos, text string) Pos {
	pos = d.Clamp(pos)
	if text == "" {
		return pos
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")

	line := d.Line(pos.Line)
	cut := byteIndex(line, pos.Col)
	before, after := line[:cut], line[cut:]

	if len(parts) == 1 {
		d.setLine(pos.Line, before+text+after)
		return Pos{Line: pos.Line, Col: pos.Col + utf8.RuneCountInString(text)}
	}

	last := parts[len(parts)-1]
	d.setLine(pos.Line, before+parts[0])
	rest := make([]string, 0, len(parts)-1)
	rest = append(rest, parts[1:len(parts)-1]...)
	rest = append(rest, last+after)
	d.insertLines(pos.Line+1, rest)
	return Pos{Line: pos.Line + len(parts) - 1, Col: utf8.RuneCountInString(last)}
}

// SplitLine breaks the line at pos (Enter). The tail moves to a new line.
func (d *Document) SplitLine(pos Pos) Pos {
	return d.InsertText(pos, "\n")
}

// JoinLine appends line i+1 to line i. It returns the join point and false
// when i is the last line.
func (d *Document) JoinLine(i int) (Pos, bool) {
	if i < 0 || i+1 >= d.count {
		return Pos{}, false
	}
	line := d.Line(i)
	d.setLine(i, line+d.Line(i+1))
	d.removeLines(i+1, i+2)
	return Pos{Line: i, Col: utf8.RuneCountInString(line)}, true
}

// Slice returns the text between a and b, lines joined with "\n".
func (d *Document) Slice(a, b Pos) string {
	start, end := Order(d.Clamp(a), d.Clamp(b))
	first := d.Line(start.Line)
	if start.Line == end.Line {
		return first[byteIndex(first, start.Col):byteIndex(first, end.Col)]
	}
	var sb strings.Builder
	sb.WriteString(first[byteIndex(first, start.Col):])
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(d.Line(i))
	}
	last := d.Line(end.Line)
	sb.WriteByte('\n')
	sb.WriteString(last[:byteIndex(last, end.Col)])
	return sb.String()
}

// DeleteRange removes the text between a and b (in either order) and
// returns it. The document keeps at least one line.
func (d *Document) DeleteRange(a, b Pos) string {
	start, end := Order(d.Clamp(a), d.Clamp(b))
	if start == end {
		return ""
	}
	removed := d.Slice(start, end)
	first := d.Line(start.Line)
	last := d.Line(end.Line)
	d.setLine(start.Line, first[:byteIndex(first, start.Col)]+last[byteIndex(last, end.Col):])
	if end.Line > start.Line {
		d.removeLines(start.Line+1, end.Line+1)
	}
	return removed
}

// ReplaceRange deletes [a, b) and inserts text in its place.
func (d *Document) ReplaceRange(a, b Pos, text string) Pos {
	start, _ := Order(d.Clamp(a), d.Clamp(b))
	d.DeleteRange(a, b)
	return d.InsertText(start, text)
}

// DeleteLine removes line i and returns its text. The sole remaining line
// is emptied instead of removed.
func (d *Document) DeleteLine(i int) string {
	if i < 0 || i >= d.count {
		return ""
	}
	text := d.Line(i)
	if d.count == 1 {
		d.setLine(0, "")
		return text
	}
	d.removeLines(i, i+1)
	return text
}

// LeadingSpace returns the run of spaces and tabs starting line i.
func (d *Document) LeadingSpace(i int) string {
	line := d.Line(i)
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
