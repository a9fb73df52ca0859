package editor

import (
	"errors"
	"fmt"

	"github.com/kobzarvs/slate/internal/buffer"
	"github.com/kobzarvs/slate/internal/config"
	"github.com/kobzarvs/slate/internal/highlight"
	"github.com/kobzarvs/slate/internal/history"
	"github.com/kobzarvs/slate/internal/logger"
	"github.com/kobzarvs/slate/internal/render"
	"github.com/kobzarvs/slate/internal/selection"
	"github.com/kobzarvs/slate/internal/view"
)

var ErrNoFileName = errors.New("no file name")

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Editor is one editing session: the document with its cursor, viewport,
// selection, history and clipboard. All state changes go through Execute,
// Load and Save.
type Editor struct {
	doc    *buffer.Document
	cursor buffer.Pos
	vp     view.Viewport
	sel    *selection.Selection
	hist   *history.History

	clip string
	ext  Clipboard

	registry  *highlight.Registry
	tokenizer highlight.Tokenizer
	lang      string

	filename string
	exists   bool
	modified bool
	message  string

	width  int
	height int
	gutter int

	opts config.EditorOptions
}

// New creates a session holding one empty line. reg may be nil for plain
// text only; clip may be nil to keep the clipboard internal.
func New(opts config.EditorOptions, reg *highlight.Registry, clip Clipboard) *Editor {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	if reg == nil {
		reg = highlight.NewRegistry()
	}
	e := &Editor{
		doc:       buffer.New(),
		hist:      history.New(opts.HistoryLimit),
		ext:       clip,
		registry:  reg,
		tokenizer: highlight.Plain,
		width:     defaultWidth,
		height:    defaultHeight,
		opts:      opts,
	}
	e.layout()
	return e
}

// Load replaces the session with data read from name. exists reports
// whether the file was found on storage. A nil data yields one empty line.
func (e *Editor) Load(name string, data []byte, exists bool) {
	e.doc = buffer.Parse(data)
	e.cursor = buffer.Pos{}
	e.vp.OffsetX, e.vp.OffsetY = 0, 0
	e.sel = nil
	e.hist.Reset()
	e.filename = name
	e.exists = exists
	e.modified = false
	e.message = ""
	if name != "" {
		e.lang, e.tokenizer = e.registry.ForFile(name)
	} else {
		e.lang, e.tokenizer = "", highlight.Plain
	}
	e.layout()
	logger.Info("document loaded", "file", name, "lines", e.doc.LineCount(), "exists", exists, "language", e.lang)
}

// Save writes the document to its file. The modified flag survives a
// failed write.
func (e *Editor) Save(store Storage) error {
	if e.filename == "" {
		return ErrNoFileName
	}
	if err := store.WriteFile(e.filename, e.doc.Bytes()); err != nil {
		logger.Warn("save failed", "file", e.filename, "error", err)
		return fmt.Errorf("save %s: %w", e.filename, err)
	}
	e.modified = false
	e.exists = true
	e.message = "Saved: " + e.filename
	logger.Info("document saved", "file", e.filename)
	return nil
}

// SaveAs sets the file name and saves.
func (e *Editor) SaveAs(name string, store Storage) error {
	if name == "" {
		return ErrNoFileName
	}
	if name != e.filename {
		e.filename = name
		e.exists = false
		e.lang, e.tokenizer = e.registry.ForFile(name)
	}
	return e.Save(store)
}

// Render composes the current frame.
func (e *Editor) Render() render.Frame {
	return render.Compose(render.Input{
		Doc:       e.doc,
		Viewport:  e.vp,
		Cursor:    e.cursor,
		Selection: e.sel,
		Tokenizer: e.tokenizer,
		Gutter:    e.gutter,
		Status: render.StatusInfo{
			Name:     e.filename,
			Exists:   e.exists,
			Modified: e.modified,
			Mode:     e.Mode(),
			Message:  e.message,
		},
	}, e.width, e.height)
}

// layout recomputes the text area for the screen size and line count and
// scrolls the viewport to the cursor.
func (e *Editor) layout() {
	rows, cols, gutter := render.TextArea(e.width, e.height, e.doc.LineCount(), e.opts.ShowLineNumbers())
	e.gutter = gutter
	e.vp.Resize(rows, cols)
	e.vp.HorizontalScroll = e.opts.HorizontalScroll
	e.vp.Follow(e.cursor)
}

func (e *Editor) Mode() string {
	if e.sel != nil {
		return "SELECT"
	}
	return "EDIT"
}

func (e *Editor) Lines() []string { return e.doc.Lines() }
func (e *Editor) Text() string { return e.doc.Text() }
func (e *Editor) Cursor() buffer.Pos { return e.cursor }
func (e *Editor) Viewport() view.Viewport { return e.vp }
func (e *Editor) Filename() string { return e.filename }
func (e *Editor) Exists() bool { return e.exists }
func (e *Editor) Modified() bool { return e.modified }
func (e *Editor) Language() string { return e.lang }
func (e *Editor) Clipboard() string { return e.clip }
func (e *Editor) Message() string { return e.message }
func (e *Editor) SetMessage(msg string) { e.message = msg }
func (e *Editor) History() *history.History { return e.hist }

// Selection returns a copy of the active selection, or nil.
func (e *Editor) Selection() *selection.Selection {
	if e.sel == nil {
		return nil
	}
	s := *e.sel
	return &s
}
