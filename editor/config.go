package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	// TabWidth is the cell width of a tab stop. Zero means 4.
	TabWidth int

	// Optional line highlighter. Spans are applied to visible lines only.
	Highlighter Highlighter

	// KeyMap overrides the default bindings when non-nil.
	KeyMap *KeyMap

	// ReadOnly disables all buffer mutations from key handling and from
	// Handle.ReplaceRange. Cursor movement and selection still work.
	ReadOnly bool

	// OnChange is called after every effective buffer or cursor change caused
	// by Update.
	OnChange func(ChangeEvent)

	// Forwarded to buffer.Options.
	HistoryLimit   int
	ChangeLogLimit int
}

func (c Config) keyMap() KeyMap {
	if c.KeyMap != nil {
		return *c.KeyMap
	}
	return DefaultKeyMap()
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return defaultTabWidth
	}
	return c.TabWidth
}
