package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/chmielowski/baggage/internal/config"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	ValueStyle    lipgloss.Style

	// Status styles
	PackedStyle  lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	PackedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Packed))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Packed))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)
}

// SuccessText renders a confirmation line
func SuccessText(text string) string {
	return SuccessStyle.Render(text)
}

// RenderCheckbox renders "[x]" for packed items and "[ ]" otherwise
func RenderCheckbox(packed bool) string {
	if packed {
		return PackedStyle.Render("[x]")
	}
	return SubtitleStyle.Render("[ ]")
}
