package buffer

// Apply runs edits as one undoable change. Each range is read against the
// text left by the edits before it and clamped to the document. The cursor
// ends after the last edit that changed anything; edits that change nothing
// are skipped.
func (b *Buffer) Apply(edits ...TextEdit) {
	t := b.begin(ChangeSourceEdit)
	cursor := b.cursor
	for _, e := range edits {
		if end, ok := t.splice(b, e.Range, e.Text); ok {
			cursor = end
		}
	}
	b.commit(t, cursor)
}
