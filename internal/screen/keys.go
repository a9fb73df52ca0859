package screen

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyString names a key event the way keymaps spell it: "ctrl+s",
// "shift+left", "enter". Plain runes are returned as themselves.
func KeyString(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	// Enter, Tab and Backspace share codes with ctrl+m, ctrl+i and ctrl+h.
	switch ev.Key() {
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		if mods&tcell.ModShift != 0 {
			return "shift+tab"
		}
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyEscape:
		return "esc"
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if mods&tcell.ModCtrl != 0 {
			return "ctrl+" + strings.ToLower(string(r))
		}
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+ev.Key()-tcell.KeyCtrlA))
	}
	var name string
	switch ev.Key() {
	case tcell.KeyUp:
		name = "up"
	case tcell.KeyDown:
		name = "down"
	case tcell.KeyLeft:
		name = "left"
	case tcell.KeyRight:
		name = "right"
	case tcell.KeyPgUp:
		name = "pgup"
	case tcell.KeyPgDn:
		name = "pgdn"
	case tcell.KeyHome:
		name = "home"
	case tcell.KeyEnd:
		name = "end"
	case tcell.KeyDelete:
		name = "del"
	default:
		return ""
	}
	if mods&tcell.ModShift != 0 {
		name = "shift+" + name
	}
	if mods&tcell.ModCtrl != 0 {
		name = "ctrl+" + name
	}
	return name
}
