package buffer

// ChangeSource tells which buffer operation produced a change.
type ChangeSource uint8

const (
	// ChangeSourceEdit covers typing, deletion and Apply.
	ChangeSourceEdit ChangeSource = iota
	// ChangeSourceReplace is a ReplaceRange call, typically from an extension.
	ChangeSourceReplace
	// ChangeSourceHistory is an undo or redo step.
	ChangeSourceHistory
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceEdit:
		return "edit"
	case ChangeSourceReplace:
		return "replace"
	case ChangeSourceHistory:
		return "history"
	default:
		return "unknown"
	}
}

// SelectionState is a normalized selection at one point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit is one effective edit. RangeBefore is in the coordinates of
// the text before the edit, RangeAfter in those after it.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change records one text mutation. Edits apply in order.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

func (c Change) clone() Change {
	c.AppliedEdits = append([]AppliedEdit(nil), c.AppliedEdits...)
	return c
}

// LastChange returns the most recent text change.
func (b *Buffer) LastChange() (Change, bool) {
	if len(b.log) == 0 {
		return Change{}, false
	}
	return b.log[len(b.log)-1].clone(), true
}

// ChangesSince returns, oldest first, every logged change made after the
// buffer reached version v. The log keeps the last Options.ChangeLogLimit
// changes.
func (b *Buffer) ChangesSince(v uint64) []Change {
	i := len(b.log)
	for i > 0 && b.log[i-1].VersionBefore >= v {
		i--
	}
	if i == len(b.log) {
		return nil
	}
	out := make([]Change, 0, len(b.log)-i)
	for _, c := range b.log[i:] {
		out = append(out, c.clone())
	}
	return out
}

// txn collects the edits of one change until it is committed.
type txn struct {
	source  ChangeSource
	prev    bufferSnapshot
	version uint64
	cursor  Pos
	sel     SelectionState
	edits   []AppliedEdit
}

func (b *Buffer) begin(source ChangeSource) *txn {
	return &txn{
		source:  source,
		prev:    b.snapshot(),
		version: b.version,
		cursor:  b.cursor,
		sel:     b.sel.state(),
	}
}

// splice applies one edit inside t and returns where the inserted text ends.
func (t *txn) splice(b *Buffer, r Range, text string) (Pos, bool) {
	e, ok := b.splice(r, text)
	if !ok {
		return Pos{}, false
	}
	t.edits = append(t.edits, e)
	return e.RangeAfter.End, true
}

// commit finishes an edit transaction: the cursor lands on cursor, the
// selection is dropped, and the change is recorded for undo and the log.
func (b *Buffer) commit(t *txn, cursor Pos) bool {
	if len(t.edits) == 0 {
		return false
	}
	b.cursor = b.clampPos(cursor)
	b.sel = selection{}
	b.version++
	b.recordUndo(t.prev)
	b.logChange(t)
	return true
}

func (b *Buffer) logChange(t *txn) {
	b.log = append(b.log, Change{
		Source:          t.source,
		VersionBefore:   t.version,
		VersionAfter:    b.version,
		CursorBefore:    t.cursor,
		CursorAfter:     b.cursor,
		SelectionBefore: t.sel,
		SelectionAfter:  b.sel.state(),
		AppliedEdits:    t.edits,
	})
	if n := len(b.log) - b.opt.ChangeLogLimit; n > 0 {
		b.log = append([]Change(nil), b.log[n:]...)
	}
}
