package editor

import "github.com/iw2rmb/highlit/buffer"

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection buffer.SelectionState

	// Full text after the change; hosts can diff if needed.
	Text string

	// Changes holds every text change since the previous event, oldest
	// first. A keystroke that an extension rewrote reports both edits.
	// Cursor-only moves leave it empty.
	Changes []buffer.Change
}

// TextChanged reports whether the event carries any text change.
func (e ChangeEvent) TextChanged() bool { return len(e.Changes) > 0 }

func buildChangeEvent(b *buffer.Buffer, changes []buffer.Change) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	ev.Changes = changes
	return ev
}

// KeyEventKind identifies when a key handler runs relative to the editor
// applying the key to its buffer.
type KeyEventKind uint8

const (
	// KeyDown handlers run before the key is applied.
	KeyDown KeyEventKind = iota
	// KeyUp handlers run after the key is applied.
	KeyUp
)

func (k KeyEventKind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	default:
		return "unknown"
	}
}
