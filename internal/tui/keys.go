package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/chmielowski/baggage/internal/config"
)

// KeyMap holds the bindings built from the user's key mappings.
type KeyMap struct {
	AddItem      key.Binding
	TogglePacked key.Binding
	DeleteItem   key.Binding
	Undo         key.Binding
	DeleteMode   key.Binding
	PrevItem     key.Binding
	NextItem     key.Binding
	ShowHelp     key.Binding
	Quit         key.Binding

	Confirm   key.Binding
	Cancel    key.Binding
	ForceQuit key.Binding
}

// NewKeyMap builds bindings from config. Arrow keys always move the cursor.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		AddItem:      binding(km.AddItem, "add item"),
		TogglePacked: binding(km.TogglePacked, "pack / unpack"),
		DeleteItem:   binding(km.DeleteItem, "delete item (delete mode)"),
		Undo:         binding(km.Undo, "undo last delete"),
		DeleteMode:   binding(km.DeleteMode, "toggle delete mode"),
		PrevItem:     binding(km.PrevItem, "previous item", "up"),
		NextItem:     binding(km.NextItem, "next item", "down"),
		ShowHelp:     binding(km.ShowHelp, "toggle help"),
		Quit:         binding(km.Quit, "quit"),

		Confirm:   binding("enter", "save new item"),
		Cancel:    binding("esc", "cancel / leave mode"),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// binding creates a key.Binding. A literal space is also matched by its
// key name since key presses report it as "space".
func binding(k, desc string, extra ...string) key.Binding {
	keys := append([]string{k}, extra...)
	helpKey := k
	if k == " " {
		keys = append(keys, "space")
		helpKey = "space"
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, desc),
	)
}

// HelpBindings returns the bindings listed in the help overlay, in display order.
func (k KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		k.AddItem, k.Confirm, k.Cancel, k.TogglePacked,
		k.DeleteMode, k.DeleteItem, k.Undo,
		k.NextItem, k.PrevItem, k.ShowHelp, k.Quit,
	}
}
