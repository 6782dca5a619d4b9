package autobold

import (
	"reflect"

	"github.com/iw2rmb/highlit/buffer"
	"github.com/iw2rmb/highlit/editor"
	"github.com/iw2rmb/highlit/token"
)

// Editor is the part of the host editor the bolder reads and writes through.
//
// Editors are tracked by identity, so implementations must be comparable:
// pointer types, or value types without slice, map or func fields. Tracker
// and Plugin ignore editors whose dynamic type is not comparable.
type Editor interface {
	// Cursor returns the current cursor; ok is false when the host has none.
	Cursor() (pos buffer.Pos, ok bool)
	// TokenAt returns the token ending at (or covering the character before) p.
	TokenAt(p buffer.Pos) token.Token
	// Line returns the full text of row.
	Line(row int) string
	// ReplaceRange replaces [from, to) with text.
	ReplaceRange(text string, from, to buffer.Pos)
}

// Instance is an open editor that delivers key events.
//
// *editor.Handle implements Instance.
type Instance interface {
	Editor
	On(kind editor.KeyEventKind, fn editor.KeyHandler) editor.Subscription
	Off(sub editor.Subscription) bool
}

var _ Instance = (*editor.Handle)(nil)

// identifiable reports whether ed can key a map without panicking.
func identifiable(ed Editor) bool {
	return ed != nil && reflect.TypeOf(ed).Comparable()
}
