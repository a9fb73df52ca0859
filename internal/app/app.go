package app

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/slate/internal/config"
	"github.com/kobzarvs/slate/internal/editor"
	"github.com/kobzarvs/slate/internal/highlight"
	"github.com/kobzarvs/slate/internal/logger"
	"github.com/kobzarvs/slate/internal/screen"
)

// App is the top-level runtime for slate.
type App struct {
	args  []string
	debug bool
}

// New takes the command-line arguments after the program name. "--debug"
// enables debug logging; the first other argument is the file to open.
func New(args []string) *App {
	a := &App{}
	for _, arg := range args {
		if arg == "--debug" {
			a.debug = true
			continue
		}
		a.args = append(a.args, arg)
	}
	return a
}

func (a *App) Run() error {
	runtime.LockOSThread()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	langs, err := config.LoadLanguages()
	if err != nil {
		return err
	}
	if err := logger.Init(a.debug); err != nil {
		fmt.Fprintln(os.Stderr, "slate: logging disabled:", err)
	}
	defer logger.Close()

	reg := highlight.DefaultRegistry()
	reg.SetStrict(cfg.Editor.StrictHighlight)
	if err := reg.Apply(langs); err != nil {
		logger.Warn("language config", "error", err)
	}
	logger.Debug("languages registered", "names", reg.Languages())

	var clip editor.Clipboard
	if cfg.Editor.SystemClipboard {
		clip = editor.SystemClipboard{}
	}
	ed := editor.New(cfg.Editor, reg, clip)
	store := editor.FileStorage{}
	if len(a.args) > 0 {
		open(ed, store, a.args[0])
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	sess := newSession(s, ed, store, cfg)
	sess.loop()
	return nil
}

// open loads path into ed. A missing file starts a new document under that
// name; an unreadable one starts empty with an error message.
func open(ed *editor.Editor, store editor.FileStorage, path string) {
	data, exists, err := store.ReadFile(path)
	if err != nil {
		logger.Error("open failed", "file", path, "error", err)
		ed.Load(path, nil, false)
		ed.SetMessage("Cannot read " + path)
		return
	}
	ed.Load(path, data, exists)
}

type promptKind int

const (
	promptNone promptKind = iota
	promptSaveAs
	promptQuit
)

const (
	saveAsLabel  = "Save as: "
	confirmLabel = "Unsaved changes. Quit? (y/n)"
)

// session routes terminal events to the editor and draws its frames.
type session struct {
	s       tcell.Screen
	ed      *editor.Editor
	store   editor.Storage
	keymap  config.Keymap
	painter *screen.Painter

	prompt promptKind
	input  []rune
}

func newSession(s tcell.Screen, ed *editor.Editor, store editor.Storage, cfg config.Config) *session {
	w, h := s.Size()
	ed.Execute(editor.Resize(h, w))
	return &session{
		s:       s,
		ed:      ed,
		store:   store,
		keymap:  cfg.Keymap,
		painter: screen.NewPainter(cfg.Theme),
	}
}

func (ss *session) loop() {
	ss.draw()
	for {
		switch ev := ss.s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ss.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			ss.ed.Execute(editor.Resize(h, w))
			ss.s.Sync()
		}
		ss.draw()
	}
}

func (ss *session) draw() {
	f := ss.ed.Render()
	if ss.prompt != promptNone && f.Height > 0 {
		label := confirmLabel
		if ss.prompt == promptSaveAs {
			label = saveAsLabel
		}
		text, n := fitTail(label+string(ss.input), f.Width)
		f.Status.Text = text
		f.CursorRow = f.Height - 1
		f.CursorCol = min(n, max(f.Width-1, 0))
		f.CursorVisible = true
	}
	ss.painter.Paint(ss.s, f)
}

// fitTail pads text to width, or keeps its last width runes so the end of
// a prompt and the typed input stay visible. It returns the visible length.
func fitTail(text string, width int) (string, int) {
	rs := []rune(text)
	if len(rs) > width {
		rs = rs[len(rs)-max(width, 0):]
	}
	n := len(rs)
	return string(rs) + strings.Repeat(" ", max(width-n, 0)), n
}

// handleKey applies one key event and reports whether the program should
// exit.
func (ss *session) handleKey(ev *tcell.EventKey) bool {
	if ss.prompt != promptNone {
		return ss.handlePrompt(ev)
	}
	key := screen.KeyString(ev)
	action, bound := ss.keymap[key]
	if !bound {
		if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
			ss.exec(editor.InsertChar(ev.Rune()))
		}
		return false
	}
	logger.Debug("key", "key", key, "action", action)
	switch action {
	case "quit":
		if ss.ed.Modified() {
			ss.prompt = promptQuit
			return false
		}
		return true
	case "save":
		if ss.ed.Filename() == "" {
			ss.prompt = promptSaveAs
			ss.input = ss.input[:0]
			return false
		}
		ss.save(func() error { return ss.ed.Save(ss.store) })
	default:
		if cmd, ok := commandFor(action); ok {
			ss.exec(cmd)
		}
	}
	return false
}

func (ss *session) handlePrompt(ev *tcell.EventKey) bool {
	switch ss.prompt {
	case promptQuit:
		ss.prompt = promptNone
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y') {
			return true
		}
		ss.ed.SetMessage("")
	case promptSaveAs:
		switch ev.Key() {
		case tcell.KeyEscape:
			ss.prompt = promptNone
			ss.ed.SetMessage("Save cancelled")
		case tcell.KeyEnter:
			ss.prompt = promptNone
			name := strings.TrimSpace(string(ss.input))
			ss.save(func() error { return ss.ed.SaveAs(name, ss.store) })
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(ss.input) > 0 {
				ss.input = ss.input[:len(ss.input)-1]
			}
		case tcell.KeyRune:
			ss.input = append(ss.input, ev.Rune())
		}
	}
	return false
}

func (ss *session) save(fn func() error) {
	if err := fn(); err != nil {
		ss.ed.SetMessage("Error saving: " + err.Error())
	}
}

func (ss *session) exec(cmd editor.Command) {
	if res := ss.ed.Execute(cmd); res.Boundary {
		_ = ss.s.Beep()
	}
}
