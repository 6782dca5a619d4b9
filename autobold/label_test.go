package autobold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/highlit/buffer"
)

func TestIsSequentialTyping(t *testing.T) {
	tests := []struct {
		name string
		prev buffer.Pos
		cur  buffer.Pos
		want bool
	}{
		{"same position", buffer.Pos{Row: 2, GraphemeCol: 5}, buffer.Pos{Row: 2, GraphemeCol: 5}, true},
		{"one column forward", buffer.Pos{Row: 2, GraphemeCol: 5}, buffer.Pos{Row: 2, GraphemeCol: 6}, true},
		{"two columns forward", buffer.Pos{Row: 2, GraphemeCol: 5}, buffer.Pos{Row: 2, GraphemeCol: 7}, false},
		{"one column back", buffer.Pos{Row: 2, GraphemeCol: 5}, buffer.Pos{Row: 2, GraphemeCol: 4}, false},
		{"other row same column", buffer.Pos{Row: 2, GraphemeCol: 5}, buffer.Pos{Row: 3, GraphemeCol: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSequentialTyping(tt.prev, tt.cur))
		})
	}
}

func TestIsOrderedListItem(t *testing.T) {
	assert.True(t, IsOrderedListItem("1. Step:"))
	assert.True(t, IsOrderedListItem("12.Step:"))
	assert.True(t, IsOrderedListItem("3. two words:"))
	// Heuristic: any "<digits>." prefix counts, list context or not.
	assert.True(t, IsOrderedListItem("2024. was a year:"))
	assert.False(t, IsOrderedListItem("Step 1. go:"))
	assert.False(t, IsOrderedListItem("- Task:"))
	assert.False(t, IsOrderedListItem(".5 ratio:"))
}

func TestLabelStart(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Title:", 0},
		{"- Task:", 2},
		{"1. Step:", 3},
		{"10. Step:", 4},
		{"1.Step:", 2},
		{"1.\tStep:", 3},
		{"-Task:", 0},
		{"  Indented:", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelStart(tt.text), "LabelStart(%q)", tt.text)
	}
}

func TestPlanLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		tokenEnd int
		want     Replacement
	}{
		{
			name:     "plain label",
			line:     "Title:",
			tokenEnd: 6,
			want:     Replacement{From: 0, To: 6, Label: "Title:", Text: "**Title:**"},
		},
		{
			name:     "unordered list",
			line:     "- Task:",
			tokenEnd: 7,
			want:     Replacement{From: 2, To: 7, Label: "Task:", Text: "**Task:**"},
		},
		{
			name:     "ordered list",
			line:     "1. Step:",
			tokenEnd: 8,
			want:     Replacement{From: 3, To: 8, Label: "Step:", Text: "**Step:**"},
		},
		{
			name:     "trailing content stays outside",
			line:     "Note: later text",
			tokenEnd: 5,
			want:     Replacement{From: 0, To: 5, Label: "Note:", Text: "**Note:**"},
		},
		{
			name:     "whitespace label",
			line:     "   :",
			tokenEnd: 4,
			want:     Replacement{From: 0, To: 4, Label: "   :", Text: "**   :**"},
		},
		{
			name:     "multi-byte label",
			line:     "Tâche:",
			tokenEnd: 6,
			want:     Replacement{From: 0, To: 6, Label: "Tâche:", Text: "**Tâche:**"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PlanLine(tt.line, tt.tokenEnd)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanLine_NoOps(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		tokenEnd int
	}{
		{"no colon", "Title", 5},
		{"already bolded", "**Already:**", 10},
		{"already bolded list item", "- **Task:**", 9},
		{"already bolded ordered item", "1. **Step:**", 10},
		{"typed colon is not the first", "Note: see:", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := PlanLine(tt.line, tt.tokenEnd)
			assert.False(t, ok)
		})
	}
}

func TestWrapAndIsBolded(t *testing.T) {
	require.Equal(t, "**Title:**", Wrap("Title:"))
	require.True(t, IsBolded(Wrap("x")))
	require.False(t, IsBolded("*x*"))
}
