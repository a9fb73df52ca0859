package history

import (
	"github.com/kobzarvs/slate/internal/buffer"
	"github.com/kobzarvs/slate/internal/view"
)

// Snapshot captures the editor state needed to rewind one command.
type Snapshot struct {
	Doc      *buffer.Document
	Cursor   buffer.Pos
	Viewport view.Viewport
	Modified bool
}

// History keeps undo and redo stacks of snapshots. Limit caps the undo
// depth; zero means unbounded.
type History struct {
	undo  []Snapshot
	redo  []Snapshot
	limit int
}

func New(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Record pushes the state as it was before a mutating command and discards
// the redo stack. The document is snapshotted here, so callers pass the live
// document.
func (h *History) Record(s Snapshot) {
	h.undo = append(h.undo, freeze(s))
	if h.limit > 0 && len(h.undo) > h.limit {
		drop := len(h.undo) - h.limit
		clear(h.undo[:drop])
		h.undo = h.undo[drop:]
	}
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo pops the most recent snapshot, pushing cur on the redo stack. It
// returns false when there is nothing to undo.
func (h *History) Undo(cur Snapshot) (Snapshot, bool) {
	return swap(&h.undo, &h.redo, cur)
}

// Redo is the inverse of Undo.
func (h *History) Redo(cur Snapshot) (Snapshot, bool) {
	return swap(&h.redo, &h.undo, cur)
}

func swap(from, to *[]Snapshot, cur Snapshot) (Snapshot, bool) {
	n := len(*from)
	if n == 0 {
		return Snapshot{}, false
	}
	s := (*from)[n-1]
	(*from)[n-1] = Snapshot{}
	*from = (*from)[:n-1]
	*to = append(*to, freeze(cur))
	// The restored document becomes live again; hand out a fresh copy so the
	// stored one stays untouched if it is pushed back later.
	s.Doc = s.Doc.Snapshot()
	return s, true
}

func freeze(s Snapshot) Snapshot {
	if s.Doc != nil {
		s.Doc = s.Doc.Snapshot()
	}
	return s
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

func (h *History) UndoDepth() int { return len(h.undo) }
func (h *History) RedoDepth() int { return len(h.redo) }

// Reset drops both stacks.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}
