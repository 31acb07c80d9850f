package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/chmielowski/baggage/internal/tui/theme"
)

// ProgressProps configures the packing progress bar
type ProgressProps struct {
	Percent int
	Width   int
}

// RenderProgress renders a bar followed by the percentage, e.g. "█████░░░░░ 50%".
func RenderProgress(props ProgressProps) string {
	percent := min(max(props.Percent, 0), 100)
	width := max(props.Width, 1)
	filled := width * percent / 100

	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Packed)).
		Render(strings.Repeat("█", filled))
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ProgressEmpty)).
		Render(strings.Repeat("░", width-filled))

	return bar + empty + fmt.Sprintf(" %3d%%", percent)
}
