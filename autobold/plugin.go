package autobold

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/highlit/editor"
)

// Option configures a Plugin.
type Option func(p *Plugin)

// WithOnBold registers fn to be called after every rewrite.
func WithOnBold(fn func(Bolded)) Option {
	return func(p *Plugin) {
		p.bolder.onBold = fn
	}
}

type attachment struct {
	keyUp   editor.Subscription
	keyDown editor.Subscription
}

// Plugin wires the Tracker and Bolder to editor instances. One Plugin serves
// any number of instances; each keeps its own cursor slot.
type Plugin struct {
	tracker *Tracker
	bolder  *Bolder

	mu       sync.Mutex
	attached map[Instance]attachment
}

func New(opts ...Option) *Plugin {
	t := NewTracker()
	p := &Plugin{
		tracker:  t,
		bolder:   NewBolder(t),
		attached: make(map[Instance]attachment),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Attach subscribes to inst's key events and reports whether inst is
// attached afterwards. Attaching an instance twice is a no-op; an instance
// whose type is not comparable is refused.
func (p *Plugin) Attach(inst Instance) bool {
	if !identifiable(inst) {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.attached[inst]; ok {
		return true
	}
	ed := Editor(inst)
	p.attached[inst] = attachment{
		keyUp: inst.On(editor.KeyUp, func(*editor.Handle, tea.KeyMsg) {
			p.RecordCursor(ed)
		}),
		keyDown: inst.On(editor.KeyDown, func(*editor.Handle, tea.KeyMsg) {
			p.OnKeyPress(ed)
		}),
	}
	return true
}

// Detach removes exactly the subscriptions Attach made and forgets inst's
// cursor slot.
func (p *Plugin) Detach(inst Instance) {
	if !identifiable(inst) {
		return
	}
	p.mu.Lock()
	a, ok := p.attached[inst]
	delete(p.attached, inst)
	p.mu.Unlock()

	if !ok {
		return
	}
	inst.Off(a.keyUp)
	inst.Off(a.keyDown)
	p.tracker.Forget(inst)
}

// Unload detaches every attached instance.
func (p *Plugin) Unload() {
	p.mu.Lock()
	insts := make([]Instance, 0, len(p.attached))
	for inst := range p.attached {
		insts = append(insts, inst)
	}
	p.mu.Unlock()

	for _, inst := range insts {
		p.Detach(inst)
	}
}

// Attached returns the number of attached instances.
func (p *Plugin) Attached() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.attached)
}

// RecordCursor handles a key release on ed.
func (p *Plugin) RecordCursor(ed Editor) { p.tracker.Record(ed) }

// OnKeyPress handles a key press on ed and reports whether it bolded a label.
func (p *Plugin) OnKeyPress(ed Editor) bool { return p.bolder.OnKeyPress(ed) }
