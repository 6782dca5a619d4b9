package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/highlit/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
//
// Model is a value; copies share the buffer and the Handle.
type Model struct {
	cfg    Config
	keys   KeyMap
	buf    *buffer.Buffer
	handle *Handle

	focused  bool
	viewport viewport.Model

	// Buffer state at the last OnChange, used to detect host and
	// extension edits.
	seenVersion uint64
	seenCursor  buffer.Pos
}

func New(cfg Config) Model {
	buf := buffer.New(cfg.Text, buffer.Options{
		HistoryLimit:   cfg.HistoryLimit,
		ChangeLogLimit: cfg.ChangeLogLimit,
	})
	m := Model{
		cfg:         cfg,
		keys:        cfg.keyMap(),
		buf:         buf,
		handle:      newHandle(buf, cfg.ReadOnly),
		focused:     true,
		viewport:    viewport.New(0, 0),
		seenVersion: buf.Version(),
		seenCursor:  buf.Cursor(),
	}
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Handle returns the extension handle shared by all copies of this Model.
func (m Model) Handle() *Handle { return m.handle }

func (m Model) KeyMap() KeyMap { return m.keys }

func (m Model) Focused() bool { return m.focused }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) View() string { return m.viewport.View() }

// SetSize resizes the view. Negative sizes count as zero.
func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.rebuildContent()
	m.scrollToCursor()
	return m
}

func (m Model) Focus() Model { return m.setFocus(true) }

func (m Model) Blur() Model { return m.setFocus(false) }

func (m Model) setFocus(on bool) Model {
	if m.focused == on {
		return m
	}
	m.focused = on
	m.rebuildContent()
	if on {
		m.scrollToCursor()
	}
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		if m.sync() {
			m.scrollToCursor()
		}
		return m, cmd
	case tea.MouseMsg:
		// The wheel scrolls freely; a click must not snap the view back.
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		m.sync()
		return m, cmd
	}

	// Hosts may have edited the buffer directly since the last message.
	if m.sync() {
		m.scrollToCursor()
	}
	return m, nil
}

// sync re-renders and fires OnChange when the buffer moved on since the
// last call. It reports whether the cursor changed.
func (m *Model) sync() bool {
	if m.buf == nil {
		return false
	}
	ver, cur := m.buf.Version(), m.buf.Cursor()
	if ver == m.seenVersion && cur == m.seenCursor {
		return false
	}

	changes := m.buf.ChangesSince(m.seenVersion)
	moved := cur != m.seenCursor
	m.seenVersion, m.seenCursor = ver, cur
	m.rebuildContent()

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, changes))
	}
	return moved
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) bodyHeight() int {
	return m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
}

// scrollToCursor scrolls the least amount that brings the cursor row into
// view.
func (m *Model) scrollToCursor() {
	h := m.bodyHeight()
	if m.buf == nil || h <= 0 {
		return
	}
	row, top := m.buf.Cursor().Row, m.viewport.YOffset
	switch {
	case row < top:
		top = row
	case row >= top+h:
		top = row - h + 1
	default:
		return
	}
	m.viewport.SetYOffset(top)
	m.rebuildContent()
}
