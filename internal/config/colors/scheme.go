package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the cursor, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Packed string `yaml:"packed"` // Checked rows and the filled progress bar
	Delete string `yaml:"delete"` // Delete markers

	// UI element colors
	Border        string `yaml:"border"`
	ProgressEmpty string `yaml:"progress_empty"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fillFrom(*preset, true)
}

// MergeFrom overrides colors with every non-empty value from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	c.fillFrom(other, false)
}

// fillFrom copies src values. With onlyEmpty set, existing values win.
func (c *ColorScheme) fillFrom(src ColorScheme, onlyEmpty bool) {
	set := func(dst *string, v string) {
		if v == "" {
			return
		}
		if onlyEmpty && *dst != "" {
			return
		}
		*dst = v
	}
	set(&c.Accent, src.Accent)
	set(&c.Packed, src.Packed)
	set(&c.Delete, src.Delete)
	set(&c.Border, src.Border)
	set(&c.ProgressEmpty, src.ProgressEmpty)
	set(&c.Title, src.Title)
	set(&c.Subtle, src.Subtle)
	set(&c.Normal, src.Normal)
	set(&c.InfoFg, src.InfoFg)
	set(&c.InfoBg, src.InfoBg)
	set(&c.ErrorFg, src.ErrorFg)
	set(&c.ErrorBg, src.ErrorBg)
}
