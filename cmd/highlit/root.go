package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/highlit"
	"github.com/iw2rmb/highlit/markdown"
)

type options struct {
	lineNumbers bool
	style       string
	debug       string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:     "highlit [file]",
		Short:   "Preview label bolding on a Markdown file in a terminal editor",
		Long:    "Opens file (or an empty buffer) in a terminal editor. Typing a colon after a label at the start of a line wraps the label in **bold** markup.\n\nThe file is only read: edits live in the session and are not saved.",
		Version: highlit.Version(),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(path, opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&opts.lineNumbers, "line-numbers", "n", false, "show line numbers")
	cmd.Flags().StringVar(&opts.style, "style", markdown.DefaultStyle, "chroma style used for highlighting")
	cmd.Flags().StringVar(&opts.debug, "debug", "", "write a debug log to this file")
	return cmd
}

func run(path string, opts options) error {
	text, err := loadFile(path)
	if err != nil {
		return err
	}

	hl, err := markdown.NewHighlighter(opts.style)
	if err != nil {
		return err
	}

	logf := func(string, ...any) {}
	if opts.debug != "" {
		f, err := tea.LogToFile(opts.debug, "highlit")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
		logf = logPrintf
	}

	m := newModel(text, hl, opts.lineNumbers, logf)
	defer m.plugin.Unload()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

// loadFile returns the contents of path. A missing file starts an empty
// buffer.
func loadFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}
