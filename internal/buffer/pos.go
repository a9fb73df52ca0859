package buffer

// Pos points into the document by (line, column). Col counts runes and
// Col == LineLen(Line) means end of line.
type Pos struct {
	Line int
	Col  int
}

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// Less reports whether p sorts before q.
func (p Pos) Less(q Pos) bool {
	return ComparePos(p, q) < 0
}

// Order returns a and b sorted so that the first is not after the second.
func Order(a, b Pos) (Pos, Pos) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
