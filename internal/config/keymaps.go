package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Items
	AddItem      string `yaml:"add_item"`
	TogglePacked string `yaml:"toggle_packed"`
	DeleteItem   string `yaml:"delete_item"`
	Undo         string `yaml:"undo"`

	// Modes
	DeleteMode string `yaml:"delete_mode"`

	// Navigation
	PrevItem string `yaml:"prev_item"`
	NextItem string `yaml:"next_item"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Items
		AddItem:      "a",
		TogglePacked: " ",
		DeleteItem:   "x",
		Undo:         "u",

		// Modes
		DeleteMode: "d",

		// Navigation
		PrevItem: "k",
		NextItem: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddItem == "" {
		k.AddItem = defaults.AddItem
	}
	if k.TogglePacked == "" {
		k.TogglePacked = defaults.TogglePacked
	}
	if k.DeleteItem == "" {
		k.DeleteItem = defaults.DeleteItem
	}
	if k.Undo == "" {
		k.Undo = defaults.Undo
	}
	if k.DeleteMode == "" {
		k.DeleteMode = defaults.DeleteMode
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
