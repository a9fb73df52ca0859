package selection

import "github.com/kobzarvs/slate/internal/buffer"

// Selection is an anchor/active pair. A nil *Selection means no selection;
// a selection whose ends coincide is empty but still active.
type Selection struct {
	Anchor buffer.Pos
	Active buffer.Pos
}

// BeginOrExtend starts a selection at before when s is nil and moves its
// active end to after.
func BeginOrExtend(s *Selection, before, after buffer.Pos) *Selection {
	if s == nil {
		return &Selection{Anchor: before, Active: after}
	}
	s.Active = after
	return s
}

// Normalize returns the selection ends in document order.
func (s *Selection) Normalize() (start, end buffer.Pos) {
	return buffer.Order(s.Anchor, s.Active)
}

func (s *Selection) IsEmpty() bool {
	return s == nil || s.Anchor == s.Active
}

// RangeOnLine returns the selected columns [start, end) of line, or false
// when the line is not covered.
func (s *Selection) RangeOnLine(line, lineLen int) (start, end int, ok bool) {
	if s.IsEmpty() {
		return 0, 0, false
	}
	from, to := s.Normalize()
	if line < from.Line || line > to.Line {
		return 0, 0, false
	}
	switch {
	case from.Line == to.Line:
		start, end = from.Col, to.Col
	case line == from.Line:
		start, end = from.Col, lineLen
	case line == to.Line:
		start, end = 0, to.Col
	default:
		start, end = 0, lineLen
	}
	start = min(max(start, 0), lineLen)
	end = min(max(end, start), lineLen)
	return start, end, true
}

// Extract returns the selected text, lines joined with "\n".
func (s *Selection) Extract(doc *buffer.Document) string {
	if s.IsEmpty() {
		return ""
	}
	from, to := s.Normalize()
	return doc.Slice(from, to)
}

// Remove deletes the selected text and returns the new cursor position,
// the normalized start. Callers record history first.
func (s *Selection) Remove(doc *buffer.Document) buffer.Pos {
	from, to := s.Normalize()
	doc.DeleteRange(from, to)
	return doc.Clamp(from)
}
