package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/chmielowski/baggage/internal/tui/components"
	"github.com/chmielowski/baggage/internal/tui/theme"
)

// HelpMarkdown builds the key reference shown in the help overlay.
func (m Model) HelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, kb := range m.Keys.HelpBindings() {
		h := kb.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	return b.String()
}

// helpLayer renders the help overlay centered over the list.
func (m Model) helpLayer() *lipgloss.Layer {
	width := min(60, max(m.Width-4, 20))
	content := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Render(components.RenderMarkdown(m.HelpMarkdown(), width-4))

	x := max((m.Width-lipgloss.Width(content))/2, 0)
	y := max((m.Height-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}
