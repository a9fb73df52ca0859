package app

import (
	"github.com/kobzarvs/slate/internal/editor"
	"github.com/kobzarvs/slate/internal/view"
)

// commandFor maps a keymap action name to an editor command. Session-level
// actions (save, quit) are handled by the caller.
func commandFor(action string) (editor.Command, bool) {
	switch action {
	case "move_up":
		return editor.Move(view.Up, false), true
	case "move_down":
		return editor.Move(view.Down, false), true
	case "move_left":
		return editor.Move(view.Left, false), true
	case "move_right":
		return editor.Move(view.Right, false), true
	case "select_up":
		return editor.Move(view.Up, true), true
	case "select_down":
		return editor.Move(view.Down, true), true
	case "select_left":
		return editor.Move(view.Left, true), true
	case "select_right":
		return editor.Move(view.Right, true), true
	case "backspace":
		return editor.DeleteBackward(), true
	case "delete_char":
		return editor.DeleteForward(), true
	case "newline":
		return editor.SplitLine(), true
	case "indent":
		return editor.InsertTab(), true
	case "undo":
		return editor.Undo(), true
	case "redo":
		return editor.Redo(), true
	case "copy":
		return editor.Copy(), true
	case "cut":
		return editor.Cut(), true
	case "paste":
		return editor.Paste(), true
	case "cancel_selection":
		return editor.CancelSelection(), true
	}
	return editor.Command{}, false
}
