package packlist

import (
	"github.com/chmielowski/baggage/internal/models"
	"github.com/chmielowski/baggage/internal/types"
)

// InputState is the new-item text field: hidden, or visible with its text.
type InputState struct {
	Visible bool
	Text    string
}

// State is the single source of truth for the screen. Only the store loop
// reads or writes it.
type State struct {
	Items         []*models.Item
	Input         InputState
	DeleteMode    bool
	LastDeletedID types.ItemID // zero when there is nothing to undo
	// TrashedID is the last delete that completed and is still restorable.
	// A failed delete falls back to it.
	TrashedID types.ItemID
}

// find returns the snapshot item with id, or nil
func (s State) find(id types.ItemID) *models.Item {
	for _, it := range s.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}
