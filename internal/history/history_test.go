package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobzarvs/slate/internal/buffer"
	"github.com/kobzarvs/slate/internal/view"
)

func state(doc *buffer.Document, line, col int) Snapshot {
	return Snapshot{
		Doc:      doc,
		Cursor:   buffer.Pos{Line: line, Col: col},
		Viewport: view.Viewport{OffsetY: line, Rows: 10, Cols: 20},
	}
}

func TestUndoRedoRestoresExactState(t *testing.T) {
	h := New(0)
	doc := buffer.FromLines([]string{"abc"})

	before := state(doc, 0, 1)
	h.Record(before)
	doc.InsertChar(buffer.Pos{Line: 0, Col: 1}, 'x')
	after := state(doc, 0, 2)
	after.Modified = true

	restored, ok := h.Undo(after)
	require.True(t, ok)
	assert.Equal(t, []string{"abc"}, restored.Doc.Lines())
	assert.Equal(t, before.Cursor, restored.Cursor)
	assert.Equal(t, before.Viewport, restored.Viewport)
	assert.False(t, restored.Modified)

	again, ok := h.Redo(restored)
	require.True(t, ok)
	assert.Equal(t, []string{"axbc"}, again.Doc.Lines())
	assert.Equal(t, after.Cursor, again.Cursor)
	assert.True(t, again.Modified)
}

func TestEmptyStacks(t *testing.T) {
	h := New(0)
	_, ok := h.Undo(Snapshot{})
	assert.False(t, ok)
	_, ok = h.Redo(Snapshot{})
	assert.False(t, ok)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestRecordClearsRedo(t *testing.T) {
	h := New(0)
	doc := buffer.New()
	h.Record(state(doc, 0, 0))
	_, ok := h.Undo(state(doc, 0, 0))
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.Record(state(doc, 0, 0))
	assert.False(t, h.CanRedo())
	assert.Equal(t, 1, h.UndoDepth())
}

func TestLongChain(t *testing.T) {
	h := New(0)
	doc := buffer.New()
	var texts []string
	for i := 0; i < 200; i++ {
		texts = append(texts, doc.Text())
		h.Record(state(doc, 0, i))
		doc.InsertChar(buffer.Pos{Line: 0, Col: i}, 'a'+rune(i%26))
	}
	final := doc.Text()

	cur := state(doc, 0, 200)
	for i := 199; i >= 0; i-- {
		s, ok := h.Undo(cur)
		require.True(t, ok)
		require.Equal(t, texts[i], s.Doc.Text())
		require.Equal(t, i, s.Cursor.Col)
		cur = s
	}
	_, ok := h.Undo(cur)
	assert.False(t, ok)

	for i := 0; i < 200; i++ {
		s, ok := h.Redo(cur)
		require.True(t, ok)
		cur = s
	}
	assert.Equal(t, final, cur.Doc.Text())
}

func TestRestoredDocumentIsIndependent(t *testing.T) {
	h := New(0)
	doc := buffer.FromLines([]string{"one"})
	h.Record(state(doc, 0, 0))
	doc.InsertText(buffer.Pos{Line: 0, Col: 3}, " two")

	s, ok := h.Undo(state(doc, 0, 7))
	require.True(t, ok)
	s.Doc.InsertText(buffer.Pos{Line: 0, Col: 0}, "zero ")

	s2, ok := h.Redo(state(s.Doc, 0, 0))
	require.True(t, ok)
	assert.Equal(t, "one two", s2.Doc.Text())

	s3, ok := h.Undo(s2)
	require.True(t, ok)
	assert.Equal(t, "zero one", s3.Doc.Text())
}

func TestLimit(t *testing.T) {
	h := New(3)
	doc := buffer.New()
	for i := 0; i < 10; i++ {
		h.Record(state(doc, 0, i))
	}
	assert.Equal(t, 3, h.UndoDepth())
	s, ok := h.Undo(state(doc, 0, 10))
	require.True(t, ok)
	assert.Equal(t, 9, s.Cursor.Col)
}
