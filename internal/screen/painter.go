package screen

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/slate/internal/config"
	"github.com/kobzarvs/slate/internal/highlight"
	"github.com/kobzarvs/slate/internal/render"
)

// Painter draws composed frames onto a tcell screen using theme colors.
type Painter struct {
	base   tcell.Style
	gutter tcell.Style
	status tcell.Style
	fg     map[highlight.Category]tcell.Color
}

func NewPainter(th config.Theme) *Painter {
	fg := parseColor(th.Foreground, tcell.ColorDefault)
	bg := parseColor(th.Background, tcell.ColorDefault)
	base := tcell.StyleDefault.Foreground(fg).Background(bg)
	return &Painter{
		base:   base,
		gutter: base.Foreground(parseColor(th.LineNumber, fg)),
		status: tcell.StyleDefault.
			Foreground(parseColor(th.StatuslineForeground, fg)).
			Background(parseColor(th.StatuslineBackground, bg)),
		fg: map[highlight.Category]tcell.Color{
			highlight.Default:    fg,
			highlight.Keyword:    parseColor(th.Keyword, fg),
			highlight.String:     parseColor(th.String, fg),
			highlight.Comment:    parseColor(th.Comment, fg),
			highlight.Number:     parseColor(th.Number, fg),
			highlight.HeaderText: parseColor(th.Header, fg),
			highlight.LinkText:   parseColor(th.Link, fg),
		},
	}
}

// Style maps a frame style to a terminal style. Selected cells are shown
// in reverse video.
func (p *Painter) Style(s render.Style) tcell.Style {
	var st tcell.Style
	switch s.Role {
	case render.RoleGutter:
		st = p.gutter
	case render.RoleStatus:
		st = p.status
	default:
		st = p.base
		if c, ok := p.fg[s.Category]; ok {
			st = st.Foreground(c)
		}
		if s.Category == highlight.HeaderText {
			st = st.Bold(true)
		}
		if s.Category == highlight.LinkText {
			st = st.Underline(true)
		}
	}
	if s.Selected || s.Category == highlight.SelectionOverlay {
		st = st.Reverse(true)
	}
	return st
}

// Paint clears s, draws f and places the terminal cursor.
func (p *Painter) Paint(s tcell.Screen, f render.Frame) {
	s.Fill(' ', p.base)
	for _, call := range f.Calls() {
		st := p.Style(call.Style)
		col := call.Col
		for _, r := range call.Text {
			if col >= f.Width {
				break
			}
			s.SetContent(col, call.Row, r, nil, st)
			col++
		}
	}
	if f.CursorVisible {
		s.ShowCursor(f.CursorCol, f.CursorRow)
	} else {
		s.HideCursor()
	}
	s.Show()
}

// parseColor accepts "#rrggbb", a color name or "default".
func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
