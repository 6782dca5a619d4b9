package autobold

import "github.com/iw2rmb/highlit/buffer"

// Bolded describes one applied rewrite.
type Bolded struct {
	Editor Editor
	From   buffer.Pos
	To     buffer.Pos
	Label  string
	Text   string
}

// Bolder rewrites labels on key press, using the cursors recorded by its
// Tracker to recognize ordinary typing.
type Bolder struct {
	tracker *Tracker
	onBold  func(Bolded)
}

func NewBolder(t *Tracker) *Bolder {
	if t == nil {
		t = NewTracker()
	}
	return &Bolder{tracker: t}
}

// OnKeyPress evaluates one key press on ed and reports whether it replaced
// anything. Every mismatch is a silent no-op.
func (b *Bolder) OnKeyPress(ed Editor) bool {
	prev, ok := b.tracker.Last(ed)
	if !ok {
		return false
	}
	cur, ok := ed.Cursor()
	if !ok || !IsSequentialTyping(prev, cur) {
		return false
	}

	tok := ed.TokenAt(cur)
	if tok.Text != string(labelTerminator) {
		return false
	}

	plan, ok := PlanLine(ed.Line(cur.Row), tok.End)
	if !ok || isReadOnly(ed) {
		return false
	}

	from := buffer.Pos{Row: cur.Row, GraphemeCol: plan.From}
	to := buffer.Pos{Row: cur.Row, GraphemeCol: plan.To}
	ed.ReplaceRange(plan.Text, from, to)

	if b.onBold != nil {
		b.onBold(Bolded{
			Editor: ed,
			From:   from,
			To:     to,
			Label:  plan.Label,
			Text:   plan.Text,
		})
	}
	return true
}

// isReadOnly reports whether ed refuses edits. Editors without a ReadOnly
// method are writable.
func isReadOnly(ed Editor) bool {
	ro, ok := ed.(interface{ ReadOnly() bool })
	return ok && ro.ReadOnly()
}
