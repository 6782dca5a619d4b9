package editor

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/highlit/buffer"
	"github.com/iw2rmb/highlit/token"
)

// KeyHandler receives the editor handle and the raw key message.
type KeyHandler func(h *Handle, msg tea.KeyMsg)

// Subscription identifies one registered key handler. The zero value is not
// a valid subscription.
type Subscription struct {
	kind KeyEventKind
	id   uint64
}

// Kind reports which event the subscription listens to.
func (s Subscription) Kind() KeyEventKind { return s.kind }

type keySub struct {
	id uint64
	fn KeyHandler
}

// Handle is the extension surface of one editor instance. A Model and all
// of its copies share the same Handle, so its pointer identifies the
// instance.
//
// Queries always read the live buffer; nothing is cached between calls.
type Handle struct {
	buf      *buffer.Buffer
	readOnly bool

	mu     sync.Mutex
	nextID uint64
	subs   map[KeyEventKind][]keySub
}

func newHandle(b *buffer.Buffer, readOnly bool) *Handle {
	return &Handle{
		buf:      b,
		readOnly: readOnly,
		subs:     make(map[KeyEventKind][]keySub),
	}
}

// ReadOnly reports whether the editor refuses edits. ReplaceRange does
// nothing on a read-only handle.
func (h *Handle) ReadOnly() bool { return h != nil && h.readOnly }

// Cursor returns the current cursor. ok is false when the handle has no
// backing buffer.
func (h *Handle) Cursor() (buffer.Pos, bool) {
	if h == nil || h.buf == nil {
		return buffer.Pos{}, false
	}
	return h.buf.Cursor(), true
}

// Line returns the text of row, or "" when it does not exist.
func (h *Handle) Line(row int) string {
	if h == nil || h.buf == nil {
		return ""
	}
	return h.buf.Line(row)
}

// TokenAt returns the token ending at or covering the character before p.
func (h *Handle) TokenAt(p buffer.Pos) token.Token {
	return token.At(h.Line(p.Row), p.GraphemeCol)
}

// ReplaceRange replaces [from, to) with text as one undoable change.
// The cursor is mapped through the edit.
func (h *Handle) ReplaceRange(text string, from, to buffer.Pos) {
	if h == nil || h.buf == nil || h.readOnly {
		return
	}
	h.buf.ReplaceRange(buffer.Range{Start: from, End: to}, text)
}

// On registers fn for kind. Handlers run in registration order.
func (h *Handle) On(kind KeyEventKind, fn KeyHandler) Subscription {
	if fn == nil {
		return Subscription{}
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := Subscription{kind: kind, id: h.nextID}
	h.subs[kind] = append(h.subs[kind], keySub{id: sub.id, fn: fn})
	return sub
}

// Off removes a handler registered with On. It reports whether the
// subscription was still registered.
func (h *Handle) Off(sub Subscription) bool {
	if sub.id == 0 {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	list := h.subs[sub.kind]
	for i, s := range list {
		if s.id != sub.id {
			continue
		}
		next := make([]keySub, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		h.subs[sub.kind] = next
		return true
	}
	return false
}

// Subscribers returns the number of handlers registered for kind.
func (h *Handle) Subscribers(kind KeyEventKind) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[kind])
}

// dispatch runs the handlers registered for kind. Handlers may call On or
// Off; changes apply from the next dispatch.
func (h *Handle) dispatch(kind KeyEventKind, msg tea.KeyMsg) {
	h.mu.Lock()
	list := h.subs[kind]
	h.mu.Unlock()

	for _, s := range list {
		s.fn(h, msg)
	}
}
