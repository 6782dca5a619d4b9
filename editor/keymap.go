package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/highlit/buffer"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Undo, Redo key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Redo, k.Home, k.End}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.WordLeft, k.WordRight, k.Home, k.End, k.DocStart, k.DocEnd},
		{k.Backspace, k.Delete, k.Enter, k.Undo, k.Redo},
	}
}

// motion maps msg to the cursor move it is bound to.
func (k KeyMap) motion(msg tea.KeyMsg) (buffer.Move, bool) {
	bindings := []struct {
		b  key.Binding
		mv buffer.Move
	}{
		{k.Left, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft}},
		{k.Right, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight}},
		{k.Up, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp}},
		{k.Down, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown}},
		{k.ShiftLeft, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true}},
		{k.ShiftRight, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true}},
		{k.ShiftUp, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true}},
		{k.ShiftDown, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true}},
		{k.WordLeft, buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft}},
		{k.WordRight, buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight}},
		{k.Home, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome}},
		{k.End, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd}},
		{k.DocStart, buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome}},
		{k.DocEnd, buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd}},
	}
	for _, e := range bindings {
		if key.Matches(msg, e.b) {
			return e.mv, true
		}
	}
	return buffer.Move{}, false
}
