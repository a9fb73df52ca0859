package buffer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasOneEmptyLine(t *testing.T) {
	d := New()
	require.Equal(t, 1, d.LineCount())
	assert.Equal(t, "", d.Line(0))
	assert.Empty(t, d.Bytes())
}

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"\n",
		"hello",
		"hello\n",
		"a\nb\n\n",
		"one\r\ntwo\r\n",
		"привет\nмир",
	}
	for _, in := range cases {
		d := Parse([]byte(in))
		assert.Equal(t, in, string(d.Bytes()), "round trip of %q", in)
		assert.GreaterOrEqual(t, d.LineCount(), 1)
	}
}

func TestParseLines(t *testing.T) {
	d := Parse([]byte("a\r\nb\r\n"))
	assert.Equal(t, []string{"a", "b"}, d.Lines())
}

func TestInsertTextMultiLine(t *testing.T) {
	d := FromLines([]string{"xy"})
	end := d.InsertText(Pos{Line: 0, Col: 1}, "ab\ncd")
	assert.Equal(t, []string{"xab", "cdy"}, d.Lines())
	assert.Equal(t, Pos{Line: 1, Col: 2}, end)
}

func TestInsertTextThreeLines(t *testing.T) {
	d := FromLines([]string{"start end"})
	end := d.InsertText(Pos{Line: 0, Col: 6}, "1\n2\n3")
	assert.Equal(t, []string{"start 1", "2", "3end"}, d.Lines())
	assert.Equal(t, Pos{Line: 2, Col: 1}, end)
}

func TestInsertCharUnicodeColumns(t *testing.T) {
	d := FromLines([]string{"héllo"})
	end := d.InsertChar(Pos{Line: 0, Col: 2}, 'ß')
	assert.Equal(t, "héßllo", d.Line(0))
	assert.Equal(t, Pos{Line: 0, Col: 3}, end)
	assert.Equal(t, 6, d.LineLen(0))
}

func TestInsertThenDeleteRestores(t *testing.T) {
	lines := []string{"alpha", "béta", ""}
	for _, s := range []string{"x", "hello", "日本語", "  "} {
		for line := range lines {
			d := FromLines(lines)
			for col := 0; col <= d.LineLen(line); col++ {
				start := Pos{Line: line, Col: col}
				end := d.InsertText(start, s)
				removed := d.DeleteRange(start, end)
				require.Equal(t, s, removed)
				require.Equal(t, lines, d.Lines(), "insert %q at %v", s, start)
			}
		}
	}
}

func TestDeleteRangeNormalizes(t *testing.T) {
	d := FromLines([]string{"hello", "world"})
	removed := d.DeleteRange(Pos{Line: 1, Col: 2}, Pos{Line: 0, Col: 3})
	assert.Equal(t, "lo\nwo", removed)
	assert.Equal(t, []string{"helrld"}, d.Lines())
}

func TestDeleteEverythingLeavesOneLine(t *testing.T) {
	d := FromLines([]string{"a", "b", "c"})
	d.DeleteRange(Pos{}, Pos{Line: 2, Col: 1})
	require.Equal(t, 1, d.LineCount())
	assert.Equal(t, "", d.Line(0))

	d = FromLines([]string{"x"})
	d.DeleteRange(Pos{Line: 0, Col: 0}, Pos{Line: 0, Col: 1})
	require.Equal(t, 1, d.LineCount())
	assert.Equal(t, "", d.Line(0))
}

func TestSplitAndJoin(t *testing.T) {
	d := FromLines([]string{"abcd"})
	pos := d.SplitLine(Pos{Line: 0, Col: 2})
	assert.Equal(t, Pos{Line: 1, Col: 0}, pos)
	assert.Equal(t, []string{"ab", "cd"}, d.Lines())

	joined, ok := d.JoinLine(0)
	require.True(t, ok)
	assert.Equal(t, Pos{Line: 0, Col: 2}, joined)
	assert.Equal(t, []string{"abcd"}, d.Lines())

	_, ok = d.JoinLine(0)
	assert.False(t, ok)
}

func TestDeleteLine(t *testing.T) {
	d := FromLines([]string{"a", "b"})
	assert.Equal(t, "a", d.DeleteLine(0))
	assert.Equal(t, []string{"b"}, d.Lines())
	assert.Equal(t, "b", d.DeleteLine(0))
	assert.Equal(t, []string{""}, d.Lines())
}

func TestReplaceRange(t *testing.T) {
	d := FromLines([]string{"one two three"})
	end := d.ReplaceRange(Pos{Line: 0, Col: 8}, Pos{Line: 0, Col: 4}, "2\n")
	assert.Equal(t, []string{"one 2", "three"}, d.Lines())
	assert.Equal(t, Pos{Line: 1, Col: 0}, end)
}

func TestClamp(t *testing.T) {
	d := FromLines([]string{"ab", "c"})
	assert.Equal(t, Pos{Line: 1, Col: 1}, d.Clamp(Pos{Line: 9, Col: 9}))
	assert.Equal(t, Pos{Line: 0, Col: 0}, d.Clamp(Pos{Line: -1, Col: -1}))
}

func TestLeadingSpace(t *testing.T) {
	d := FromLines([]string{"\t  x := 1"})
	assert.Equal(t, "\t  ", d.LeadingSpace(0))
}

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestSnapshotIsolation(t *testing.T) {
	d := FromLines(numbered(500))
	snap := d.Snapshot()

	d.InsertText(Pos{Line: 250, Col: 0}, "edited\n")
	d.DeleteRange(Pos{Line: 10, Col: 0}, Pos{Line: 20, Col: 0})

	require.Equal(t, 500, snap.LineCount())
	assert.Equal(t, numbered(500), snap.Lines())
	assert.Equal(t, 491, d.LineCount())

	// Writes to a restored snapshot must not leak back either.
	again := snap.Snapshot()
	snap.setLine(0, "changed")
	assert.Equal(t, "line 0", again.Line(0))
	assert.Equal(t, "changed", snap.Line(0))
}

func TestSnapshotSharesUntouchedChunks(t *testing.T) {
	d := FromLines(numbered(4 * chunkSize))
	snap := d.Snapshot()
	d.setLine(0, "x")
	require.Len(t, d.chunks, len(snap.chunks))
	assert.NotSame(t, d.chunks[0], snap.chunks[0])
	for i := 1; i < len(d.chunks); i++ {
		assert.Same(t, d.chunks[i], snap.chunks[i])
	}
}

func TestLargeInsertSplitsChunks(t *testing.T) {
	d := New()
	d.InsertText(Pos{}, joinLines(numbered(1000)))
	require.Equal(t, 1000, d.LineCount())
	for _, c := range d.chunks {
		assert.LessOrEqual(t, len(c.lines), 2*chunkSize)
	}
	assert.Equal(t, "line 999", d.Line(999))
	assert.Equal(t, "line 500", d.Line(500))

	d.DeleteRange(Pos{Line: 1, Col: 0}, Pos{Line: 999, Col: 0})
	assert.Equal(t, []string{"line 0", "line 999"}, d.Lines())
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
