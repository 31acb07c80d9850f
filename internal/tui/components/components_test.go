package components

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/chmielowski/baggage/internal/packlist"
	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		want    string
	}{
		{"empty", 0, "0%"},
		{"partial", 33, "33%"},
		{"full", 100, "100%"},
		{"clamped", 140, "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderProgress(ProgressProps{Percent: tt.percent, Width: 10})
			assert.Contains(t, out, tt.want)
			assert.Equal(t, 15, lipgloss.Width(out))
		})
	}
}

func TestRenderRow(t *testing.T) {
	row := packlist.ItemRow{ID: 1, Name: "Socks"}

	out := RenderRow(RowProps{Row: row})
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "Socks")
	assert.NotContains(t, out, "✕")
	assert.NotContains(t, out, "›")

	row.IsChecked = true
	row.IsDeleteVisible = true
	out = RenderRow(RowProps{Row: row, Selected: true})
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "✕")
	assert.Contains(t, out, "›")
}

func TestRenderRow_WrapsLongNames(t *testing.T) {
	row := packlist.ItemRow{ID: 1, Name: "a very long list of things that will not fit on a single narrow line"}

	out := RenderRow(RowProps{Row: row, Width: 30})
	assert.Greater(t, lipgloss.Height(out), 1)
	assert.LessOrEqual(t, lipgloss.Width(out), 30)

	assert.Equal(t, 1, lipgloss.Height(RenderRow(RowProps{Row: row})))
}

func TestRenderMarkdown(t *testing.T) {
	assert.Contains(t, RenderMarkdown("", 40), "Nothing to show")
	assert.Contains(t, RenderMarkdown("**Keys**", 40), "Keys")
}
