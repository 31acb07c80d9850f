package tui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/chmielowski/baggage/internal/tui/components"
	"github.com/chmielowski/baggage/internal/tui/notifications"
	"github.com/chmielowski/baggage/internal/tui/theme"
)

const progressBarWidth = 30

// View renders the list screen, with the help overlay on top when open.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.Width == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.renderList()
	if !m.ShowHelp {
		view.Content = base
		return view
	}

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(base),
		m.helpLayer(),
	}
	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

func (m Model) renderList() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true).
		Render("Baggage")
	b.WriteString(title + "\n\n")

	if m.List.IsProgressVisible {
		b.WriteString(components.RenderProgress(components.ProgressProps{
			Percent: m.List.Progress,
			Width:   min(progressBarWidth, m.contentWidth()-5),
		}))
		b.WriteString("\n\n")
	}

	if len(m.List.Items) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("Nothing to pack yet"))
		b.WriteString("\n")
	}
	if len(m.List.Items) > 0 {
		b.WriteString(m.renderRows())
		b.WriteString("\n")
	}

	if m.List.IsInputVisible {
		b.WriteString("\n" + m.Input.View() + "\n")
	}

	b.WriteString("\n" + m.renderFooter())

	for _, n := range m.Notifications.All() {
		b.WriteString("\n" + notifications.RenderInlineFromState(n))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1).
		Width(m.Width - 2).
		Render(b.String())
}

// renderRows renders the item rows, scrolled so the cursor stays visible
// when they do not fit the terminal.
func (m Model) renderRows() string {
	width := m.contentWidth()
	rows := make([]string, len(m.List.Items))
	lines, cursorBottom := 0, 0
	for i, row := range m.List.Items {
		rows[i] = components.RenderRow(components.RowProps{
			Row:      row,
			Selected: i == m.Cursor,
			Width:    width,
		})
		lines += lipgloss.Height(rows[i])
		if i == m.Cursor {
			cursorBottom = lines - 1
		}
	}
	content := strings.Join(rows, "\n")

	height := m.listHeight()
	if lines <= height {
		return content
	}

	vp := viewport.New()
	vp.SetWidth(width)
	vp.SetHeight(height)
	vp.SetContent(content)
	vp.SetYOffset(max(cursorBottom-height+1, 0))
	return vp.View()
}

// contentWidth is the usable width inside the border and padding
func (m Model) contentWidth() int {
	return max(m.Width-6, 10)
}

// listHeight is the number of lines left for rows once the title, progress
// bar, input, footer, notifications and border are drawn.
func (m Model) listHeight() int {
	chrome := 8 + len(m.Notifications.All())
	if m.List.IsProgressVisible {
		chrome += 2
	}
	if m.List.IsInputVisible {
		chrome += 2
	}
	return max(m.Height-chrome, 3)
}

// renderFooter lists the actions currently on offer.
func (m Model) renderFooter() string {
	var hints []string
	switch {
	case m.List.IsInputVisible:
		hints = append(hints, "enter: save", "esc: cancel")
	case m.List.IsCancelDeletingVisible:
		hints = append(hints,
			m.Keys.DeleteItem.Help().Key+": delete",
			m.Keys.DeleteMode.Help().Key+"/esc: done deleting")
	default:
		if m.List.IsAddNewVisible {
			hints = append(hints, m.Keys.AddItem.Help().Key+": add")
		}
		hints = append(hints, m.Keys.TogglePacked.Help().Key+": pack")
		if m.List.IsDeleteButtonVisible {
			hints = append(hints, m.Keys.DeleteMode.Help().Key+": delete mode")
		}
	}
	hints = append(hints, m.Keys.ShowHelp.Help().Key+": help")

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(strings.Join(hints, " • "))
}
