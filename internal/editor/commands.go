package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kobzarvs/slate/internal/buffer"
	"github.com/kobzarvs/slate/internal/history"
	"github.com/kobzarvs/slate/internal/logger"
	"github.com/kobzarvs/slate/internal/selection"
	"github.com/kobzarvs/slate/internal/view"
)

type Kind int

const (
	KindNone Kind = iota
	KindMove
	KindInsertChar
	KindInsertText
	KindInsertTab
	KindDeleteBackward
	KindDeleteForward
	KindSplitLine
	KindCut
	KindCopy
	KindPaste
	KindUndo
	KindRedo
	KindResize
	KindSetLanguage
	KindCancelSelection
)

// Command is one discrete request from the input layer. Only the fields
// its Kind uses are read.
type Command struct {
	Kind   Kind
	Dir    view.Direction
	Extend bool
	Rune   rune
	Text   string
	Rows   int
	Cols   int
	Ext    string
}

func Move(dir view.Direction, extend bool) Command {
	return Command{Kind: KindMove, Dir: dir, Extend: extend}
}
func InsertChar(r rune) Command      { return Command{Kind: KindInsertChar, Rune: r} }
func InsertText(s string) Command    { return Command{Kind: KindInsertText, Text: s} }
func InsertTab() Command             { return Command{Kind: KindInsertTab} }
func DeleteBackward() Command        { return Command{Kind: KindDeleteBackward} }
func DeleteForward() Command         { return Command{Kind: KindDeleteForward} }
func SplitLine() Command             { return Command{Kind: KindSplitLine} }
func Cut() Command                   { return Command{Kind: KindCut} }
func Copy() Command                  { return Command{Kind: KindCopy} }
func Paste() Command                 { return Command{Kind: KindPaste} }
func Undo() Command                  { return Command{Kind: KindUndo} }
func Redo() Command                  { return Command{Kind: KindRedo} }
func SetLanguage(ext string) Command { return Command{Kind: KindSetLanguage, Ext: ext} }
func CancelSelection() Command       { return Command{Kind: KindCancelSelection} }

// Resize reports new terminal extents, status line included.
func Resize(rows, cols int) Command { return Command{Kind: KindResize, Rows: rows, Cols: cols} }

// Result tells the caller whether the document changed and whether the
// command stopped at a boundary (for a bell).
type Result struct {
	Mutated  bool
	Boundary bool
}

var mutated = Result{Mutated: true}

// Execute runs cmd to completion and leaves the viewport following the
// cursor.
func (e *Editor) Execute(cmd Command) Result {
	if cmd.Kind != KindResize {
		e.message = ""
	}
	var res Result
	switch cmd.Kind {
	case KindMove:
		res = e.move(cmd.Dir, cmd.Extend)
	case KindInsertChar:
		res = e.insertChar(cmd.Rune)
	case KindInsertText:
		res = e.insertText(cmd.Text)
	case KindInsertTab:
		res = e.insertText(strings.Repeat(" ", e.opts.TabWidth))
	case KindDeleteBackward:
		res = e.deleteBackward()
	case KindDeleteForward:
		res = e.deleteForward()
	case KindSplitLine:
		res = e.splitLine()
	case KindCut:
		res = e.cut()
	case KindCopy:
		e.copy()
	case KindPaste:
		res = e.paste()
	case KindUndo:
		res = e.undo()
	case KindRedo:
		res = e.redo()
	case KindResize:
		e.width, e.height = max(cmd.Cols, 0), max(cmd.Rows, 0)
	case KindSetLanguage:
		e.lang, e.tokenizer = e.registry.ForExtension(cmd.Ext)
	case KindCancelSelection:
		e.sel = nil
	}
	e.layout()
	return res
}

// record snapshots the state before a mutation. Every mutating command
// calls it exactly once, before touching the document.
func (e *Editor) record() {
	e.hist.Record(e.snapshot())
}

func (e *Editor) snapshot() history.Snapshot {
	return history.Snapshot{Doc: e.doc, Cursor: e.cursor, Viewport: e.vp, Modified: e.modified}
}

func (e *Editor) restore(s history.Snapshot) {
	e.doc = s.Doc
	e.cursor = e.doc.Clamp(s.Cursor)
	e.vp.OffsetY, e.vp.OffsetX = s.Viewport.OffsetY, s.Viewport.OffsetX
	e.modified = s.Modified
	e.sel = nil
}

func (e *Editor) move(dir view.Direction, extend bool) Result {
	next, ok := view.Move(e.doc, e.cursor, dir)
	if extend {
		e.sel = selection.BeginOrExtend(e.sel, e.cursor, next)
	} else {
		e.sel = nil
	}
	e.cursor = next
	if !ok {
		logger.Debug("cursor at boundary", "dir", dir.String(), "line", e.cursor.Line, "col", e.cursor.Col)
		return Result{Boundary: true}
	}
	return Result{}
}

func (e *Editor) insertChar(r rune) Result {
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return Result{}
	}
	e.record()
	e.sel = nil
	e.cursor = e.doc.InsertChar(e.cursor, r)
	e.modified = true
	return mutated
}

// insertText pastes text at the cursor, replacing a non-empty selection.
func (e *Editor) insertText(text string) Result {
	if text == "" {
		return Result{}
	}
	e.record()
	if !e.sel.IsEmpty() {
		from, to := e.sel.Normalize()
		e.cursor = e.doc.ReplaceRange(from, to, text)
	} else {
		e.cursor = e.doc.InsertText(e.cursor, text)
	}
	e.sel = nil
	e.modified = true
	return mutated
}

func (e *Editor) splitLine() Result {
	indent := ""
	if e.opts.AutoIndent {
		indent = e.doc.LeadingSpace(e.cursor.Line)
	}
	e.record()
	e.sel = nil
	e.cursor = e.doc.InsertText(e.cursor, "\n"+indent)
	e.modified = true
	return mutated
}

func (e *Editor) deleteBackward() Result {
	e.sel = nil
	switch {
	case e.cursor.Col > 0:
		e.record()
		start := buffer.Pos{Line: e.cursor.Line, Col: e.cursor.Col - 1}
		e.doc.DeleteRange(start, e.cursor)
		e.cursor = start
	case e.cursor.Line > 0:
		e.record()
		e.cursor, _ = e.doc.JoinLine(e.cursor.Line - 1)
	default:
		return Result{Boundary: true}
	}
	e.modified = true
	return mutated
}

func (e *Editor) deleteForward() Result {
	e.sel = nil
	switch {
	case e.cursor.Col < e.doc.LineLen(e.cursor.Line):
		e.record()
		e.doc.DeleteRange(e.cursor, buffer.Pos{Line: e.cursor.Line, Col: e.cursor.Col + 1})
	case e.cursor.Line < e.doc.LineCount()-1:
		e.record()
		e.doc.JoinLine(e.cursor.Line)
	default:
		return Result{Boundary: true}
	}
	e.modified = true
	return mutated
}

// copy puts the selection, or the whole current line without one, on the
// clipboard.
func (e *Editor) copy() {
	var text string
	if !e.sel.IsEmpty() {
		text = e.sel.Extract(e.doc)
		e.sel = nil
	} else {
		text = e.doc.Line(e.cursor.Line)
	}
	e.setClipboard(text)
}

// cut removes the selection, or the whole current line without one. The
// sole line of a document is emptied instead.
func (e *Editor) cut() Result {
	e.record()
	var text string
	if !e.sel.IsEmpty() {
		text = e.sel.Extract(e.doc)
		e.cursor = e.sel.Remove(e.doc)
	} else {
		text = e.doc.DeleteLine(e.cursor.Line)
		e.cursor = e.doc.Clamp(e.cursor)
	}
	e.sel = nil
	e.modified = true
	e.setClipboard(text)
	return mutated
}

// paste inserts the external clipboard when it has text, else the internal
// one.
func (e *Editor) paste() Result {
	if e.ext != nil {
		text, err := e.ext.ReadAll()
		switch {
		case err != nil:
			logger.Debug("clipboard read failed", "error", err)
		case text != "":
			e.clip = text
		}
	}
	return e.insertText(e.clip)
}

func (e *Editor) setClipboard(text string) {
	e.clip = text
	if e.ext == nil {
		return
	}
	if err := e.ext.WriteAll(text); err != nil {
		logger.Warn("clipboard write failed", "error", err)
	}
}

func (e *Editor) undo() Result {
	if !e.hist.CanUndo() {
		logger.Debug("nothing to undo")
		return Result{Boundary: true}
	}
	s, _ := e.hist.Undo(e.snapshot())
	e.restore(s)
	logger.Debug("undo", "undo_depth", e.hist.UndoDepth(), "redo_depth", e.hist.RedoDepth())
	return mutated
}

func (e *Editor) redo() Result {
	if !e.hist.CanRedo() {
		logger.Debug("nothing to redo")
		return Result{Boundary: true}
	}
	s, _ := e.hist.Redo(e.snapshot())
	e.restore(s)
	logger.Debug("redo", "undo_depth", e.hist.UndoDepth(), "redo_depth", e.hist.RedoDepth())
	return mutated
}
