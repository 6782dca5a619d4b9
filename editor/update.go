package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// updateKey runs KeyDown handlers, applies the key, then runs KeyUp
// handlers. Handlers therefore observe the cursor before and after the key
// respectively.
func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events are not keystrokes: they insert literal text, never trigger
	// shortcuts, and are not delivered to key handlers.
	if msg.Type == tea.KeyRunes && msg.Paste {
		if !m.cfg.ReadOnly && len(msg.Runes) > 0 {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	m.handle.dispatch(KeyDown, msg)
	m.applyKey(msg)
	m.handle.dispatch(KeyUp, msg)
	return m, nil
}

func (m Model) applyKey(msg tea.KeyMsg) {
	if mv, ok := m.keys.motion(msg); ok {
		m.buf.Move(mv)
		return
	}
	if m.cfg.ReadOnly {
		return
	}

	km := m.keys
	switch {
	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()
	case key.Matches(msg, km.Undo):
		m.buf.Undo()
	case key.Matches(msg, km.Redo):
		m.buf.Redo()
	case msg.Type == tea.KeyTab:
		m.buf.InsertText("\t")
	case msg.Type == tea.KeySpace:
		m.buf.InsertText(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0:
		m.buf.InsertText(string(msg.Runes))
	}
}

// normalizeNewlines converts CRLF and lone CR from external sources to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
