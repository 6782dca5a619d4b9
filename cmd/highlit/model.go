package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/highlit/autobold"
	"github.com/iw2rmb/highlit/editor"
)

type model struct {
	editor editor.Model
	plugin *autobold.Plugin
}

func logPrintf(format string, args ...any) { log.Printf(format, args...) }

func newModel(text string, hl editor.Highlighter, lineNumbers bool, logf func(string, ...any)) model {
	cfg := editor.Config{
		Text:         text,
		ShowLineNums: lineNumbers,
		Style:        editor.DefaultStyle(),
		Highlighter:  hl,
	}
	ed := editor.New(cfg)

	plugin := autobold.New(autobold.WithOnBold(func(b autobold.Bolded) {
		logf("bold row=%d cols=%d..%d label=%q", b.From.Row, b.From.GraphemeCol, b.To.GraphemeCol, b.Label)
	}))
	plugin.Attach(ed.Handle())

	return model{editor: ed, plugin: plugin}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }
