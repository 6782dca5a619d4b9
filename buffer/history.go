package buffer

// bufferSnapshot is the state undo and redo return to. It shares rows with
// the buffer, which never writes into a row after creating it.
type bufferSnapshot struct {
	lines  [][]string
	cursor Pos
	sel    selection
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		lines:  append([][]string(nil), b.lines...),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = append([][]string(nil), s.lines...)
	b.cursor = b.clampPos(s.cursor)
	b.sel = s.sel
}

func pushBounded(stack []bufferSnapshot, s bufferSnapshot, limit int) []bufferSnapshot {
	stack = append(stack, s)
	if n := len(stack) - limit; n > 0 {
		stack = stack[n:]
	}
	return stack
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = pushBounded(b.hist.undo, prev, b.opt.HistoryLimit)
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo returns to the state before the last edit.
func (b *Buffer) Undo() bool {
	n := len(b.hist.undo)
	if n == 0 {
		return false
	}
	target := b.hist.undo[n-1]
	b.hist.undo = b.hist.undo[:n-1]
	b.hist.redo = append(b.hist.redo, b.travel(target))
	return true
}

// Redo reapplies the last undone edit.
func (b *Buffer) Redo() bool {
	n := len(b.hist.redo)
	if n == 0 {
		return false
	}
	target := b.hist.redo[n-1]
	b.hist.redo = b.hist.redo[:n-1]
	cur := b.travel(target)
	if b.opt.HistoryLimit > 0 {
		b.hist.undo = pushBounded(b.hist.undo, cur, b.opt.HistoryLimit)
	}
	return true
}

// travel swaps in target as one history change and returns the state it
// replaced. The logged edit spans the whole document.
func (b *Buffer) travel(target bufferSnapshot) bufferSnapshot {
	t := b.begin(ChangeSourceHistory)
	before := b.Text()
	beforeEnd := b.docEnd()

	b.restore(target)
	b.version++
	if after := b.Text(); after != before {
		t.edits = append(t.edits, AppliedEdit{
			RangeBefore: Range{End: beforeEnd},
			RangeAfter:  Range{End: b.docEnd()},
			InsertText:  after,
			DeletedText: before,
		})
		b.logChange(t)
	}
	return t.prev
}
