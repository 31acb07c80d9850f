package theme

import "github.com/chmielowski/baggage/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	Packed        string
	Delete        string
	Border        string
	ProgressEmpty string
	Title         string
	Subtle        string
	Normal        string
	InfoFg        string
	InfoBg        string
	ErrorFg       string
	ErrorBg       string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Packed = colors.Packed
	Delete = colors.Delete
	Border = colors.Border
	ProgressEmpty = colors.ProgressEmpty
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
