package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/chmielowski/baggage/internal/packlist"
	"github.com/chmielowski/baggage/internal/tui/theme"
	"github.com/muesli/reflow/wordwrap"
)

// rowIndent is the width of the cursor and check box columns
const rowIndent = 6

// RowProps configures a single item row
type RowProps struct {
	Row      packlist.ItemRow
	Selected bool
	// Width wraps long names onto indented lines. Zero disables wrapping.
	Width int
}

// RenderRow renders "› [x] Name ✕" with the cursor, check box and delete marker.
func RenderRow(props RowProps) string {
	cursor := "  "
	if props.Selected {
		cursor = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true).
			Render("› ")
	}

	box := "[ ]"
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if props.Row.IsChecked {
		box = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Packed)).Render("[x]")
		nameStyle = nameStyle.Foreground(lipgloss.Color(theme.Subtle)).Strikethrough(true)
	}

	name := props.Row.Name
	if props.Width > rowIndent+10 {
		name = wordwrap.String(name, props.Width-rowIndent-2)
	}
	lines := strings.Split(name, "\n")
	for i, line := range lines {
		lines[i] = nameStyle.Render(line)
	}

	row := cursor + box + " " + strings.Join(lines, "\n"+strings.Repeat(" ", rowIndent))
	if props.Row.IsDeleteVisible {
		row += " " + lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).Render("✕")
	}
	return row
}
