package buffer

import (
	"slices"
	"strings"
	"sync/atomic"
	"unicode/utf8"
)

// chunkSize is the number of lines a chunk is split down to once it grows
// past twice that size.
const chunkSize = 64

var generation atomic.Uint64

func nextGen() uint64 {
	return generation.Add(1)
}

// chunk is a run of consecutive lines. A chunk whose gen differs from the
// owning document's gen may be shared with a snapshot and is cloned before
// it is written.
type chunk struct {
	lines []string
	gen   uint64
}

// Document is an ordered sequence of lines. It always holds at least one
// line. Snapshot is O(1); the first write after a snapshot copies only the
// chunk index and the chunk being edited.
//
// A Document is not safe for concurrent use.
type Document struct {
	chunks    []*chunk
	count     int
	gen       uint64
	ownsIndex bool

	eol             string
	trailingNewline bool
}

// New returns a document holding a single empty line.
func New() *Document {
	return FromLines(nil)
}

// FromLines builds a document from lines. An empty slice yields one empty line.
func FromLines(lines []string) *Document {
	if len(lines) == 0 {
		lines = []string{""}
	}
	d := &Document{gen: nextGen(), ownsIndex: true, eol: "\n"}
	for start := 0; start < len(lines); start += chunkSize {
		end := min(start+chunkSize, len(lines))
		d.chunks = append(d.chunks, &chunk{
			lines: append(make([]string, 0, end-start), lines[start:end]...),
			gen:   d.gen,
		})
	}
	d.count = len(lines)
	return d
}

// Parse splits file content into lines. CRLF endings and a final line
// terminator are remembered so Bytes reproduces data exactly.
func Parse(data []byte) *Document {
	text := string(data)
	eol := "\n"
	if strings.Contains(text, "\r\n") {
		eol = "\r\n"
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = text[:len(text)-1]
	}
	d := FromLines(strings.Split(text, "\n"))
	d.eol = eol
	d.trailingNewline = trailing
	return d
}

// Bytes joins the lines with the document's line terminator.
func (d *Document) Bytes() []byte {
	var b strings.Builder
	for i, line := range d.Lines() {
		if i > 0 {
			b.WriteString(d.eol)
		}
		b.WriteString(line)
	}
	if d.trailingNewline {
		b.WriteString(d.eol)
	}
	return []byte(b.String())
}

// Text returns the content joined with "\n", without a trailing terminator.
func (d *Document) Text() string {
	return strings.Join(d.Lines(), "\n")
}

// Lines returns a copy of all lines.
func (d *Document) Lines() []string {
	out := make([]string, 0, d.count)
	for _, c := range d.chunks {
		out = append(out, c.lines...)
	}
	return out
}

func (d *Document) LineCount() int {
	return d.count
}

// Line returns line i, or "" when i is out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= d.count {
		return ""
	}
	ci, off := d.locate(i)
	return d.chunks[ci].lines[off]
}

// LineLen returns the rune length of line i.
func (d *Document) LineLen(i int) int {
	return utf8.RuneCountInString(d.Line(i))
}

// Snapshot returns an immutable-by-convention copy sharing storage with d.
func (d *Document) Snapshot() *Document {
	d.gen = nextGen()
	d.ownsIndex = false
	return &Document{
		chunks:          d.chunks,
		count:           d.count,
		gen:             nextGen(),
		eol:             d.eol,
		trailingNewline: d.trailingNewline,
	}
}

// Clamp moves p to the nearest valid position.
func (d *Document) Clamp(p Pos) Pos {
	line := clampInt(p.Line, 0, d.count-1)
	return Pos{Line: line, Col: clampInt(p.Col, 0, d.LineLen(line))}
}

// locate maps a line index to (chunk, offset). Index count maps to the end
// of the last chunk.
func (d *Document) locate(i int) (int, int) {
	last := len(d.chunks) - 1
	for ci, c := range d.chunks {
		if i < len(c.lines) || ci == last {
			return ci, i
		}
		i -= len(c.lines)
	}
	return last, i
}

func (d *Document) ownIndex() {
	if d.ownsIndex {
		return
	}
	d.chunks = append(make([]*chunk, 0, len(d.chunks)+1), d.chunks...)
	d.ownsIndex = true
}

func (d *Document) writable(ci int) *chunk {
	d.ownIndex()
	c := d.chunks[ci]
	if c.gen != d.gen {
		c = &chunk{
			lines: append(make([]string, 0, len(c.lines)+1), c.lines...),
			gen:   d.gen,
		}
		d.chunks[ci] = c
	}
	return c
}

func (d *Document) setLine(i int, s string) {
	ci, off := d.locate(i)
	d.writable(ci).lines[off] = s
}

func (d *Document) insertLines(at int, lines []string) {
	if len(lines) == 0 {
		return
	}
	ci, off := d.locate(at)
	c := d.writable(ci)
	c.lines = slices.Insert(c.lines, off, lines...)
	d.count += len(lines)
	d.split(ci)
}

// removeLines drops lines [from, to). Callers keep at least one line.
func (d *Document) removeLines(from, to int) {
	for n := to - from; n > 0; {
		ci, off := d.locate(from)
		c := d.writable(ci)
		k := min(n, len(c.lines)-off)
		c.lines = slices.Delete(c.lines, off, off+k)
		n -= k
		d.count -= k
		if len(c.lines) == 0 && len(d.chunks) > 1 {
			d.chunks = slices.Delete(d.chunks, ci, ci+1)
		}
	}
}

func (d *Document) split(ci int) {
	c := d.chunks[ci]
	if len(c.lines) <= 2*chunkSize {
		return
	}
	parts := make([]*chunk, 0, len(c.lines)/chunkSize+1)
	for start := 0; start < len(c.lines); start += chunkSize {
		end := min(start+chunkSize, len(c.lines))
		parts = append(parts, &chunk{
			lines: append(make([]string, 0, end-start), c.lines[start:end]...),
			gen:   d.gen,
		})
	}
	d.chunks = slices.Replace(d.chunks, ci, ci+1, parts...)
}
