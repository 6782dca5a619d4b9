package autobold

import (
	"sync"

	"github.com/iw2rmb/highlit/buffer"
)

// Tracker remembers the last cursor position observed for each editor
// instance. Instances are keyed by identity, so two views over the same
// document keep separate slots.
type Tracker struct {
	mu   sync.Mutex
	last map[Editor]buffer.Pos
}

func NewTracker() *Tracker {
	return &Tracker{last: make(map[Editor]buffer.Pos)}
}

// Record stores ed's current cursor. When ed reports no cursor the previous
// value is kept. Editors that are not comparable are not recorded.
func (t *Tracker) Record(ed Editor) {
	if !identifiable(ed) {
		return
	}
	pos, ok := ed.Cursor()
	if !ok {
		return
	}
	t.mu.Lock()
	t.last[ed] = pos
	t.mu.Unlock()
}

// Last returns the recorded cursor for ed.
func (t *Tracker) Last(ed Editor) (buffer.Pos, bool) {
	if !identifiable(ed) {
		return buffer.Pos{}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	pos, ok := t.last[ed]
	return pos, ok
}

// Forget drops ed's slot.
func (t *Tracker) Forget(ed Editor) {
	if !identifiable(ed) {
		return
	}
	t.mu.Lock()
	delete(t.last, ed)
	t.mu.Unlock()
}

// Len returns the number of instances with a recorded cursor.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.last)
}
