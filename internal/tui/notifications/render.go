package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/chmielowski/baggage/internal/tui/state"
)

// RenderInline renders a compact single line notification (snackbar)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	content := style.icon + " " + message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInlineFromState renders a compact notification from state.
// The action hint, when present, is appended after the message.
func RenderInlineFromState(n state.Notification) string {
	message := n.Message
	if n.Action != "" {
		message += "  " + n.Action
	}
	switch n.Level {
	case state.LevelError:
		return RenderInline(Error, message)
	default:
		return RenderInline(Info, message)
	}
}
