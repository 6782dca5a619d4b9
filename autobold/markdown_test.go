package autobold

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func renderMarkdown(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, goldmark.Convert([]byte(src), &out))
	return out.String()
}

// The rewritten lines must render as bold labels with list structure intact.
func TestRewrittenLinesRenderAsStrong(t *testing.T) {
	tests := []struct {
		line     string
		contains []string
	}{
		{"Title: body", []string{"<p><strong>Title:</strong> body</p>"}},
		{"- Task: done", []string{"<ul>", "<li><strong>Task:</strong> done</li>"}},
		{"1. Step: mix", []string{"<ol>", "<li><strong>Step:</strong> mix</li>"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ed := &fakeEditor{lines: []string{tt.line}}
			b := NewBolder(nil)
			i := bytes.IndexByte([]byte(tt.line), ':') + 1

			require.True(t, press(b, ed, at(0, i), at(0, i)))

			html := renderMarkdown(t, ed.lines[0])
			for _, want := range tt.contains {
				assert.Contains(t, html, want)
			}
		})
	}
}
