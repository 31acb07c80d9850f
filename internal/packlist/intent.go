package packlist

import (
	"fmt"

	"github.com/chmielowski/baggage/internal/types"
)

// Intent is a request to change the list state. The set is closed: only
// the types in this file implement it.
type Intent interface {
	isIntent()
	fmt.Stringer
}

// EnterEditMode reveals an empty new-item input.
type EnterEditMode struct{}

// SetNewItemName replaces the pending new-item text.
type SetNewItemName struct {
	Text string
}

// ConfirmAddingItem inserts the pending text as a new item.
type ConfirmAddingItem struct{}

// CancelAddingItem hides the input and discards the pending text.
type CancelAddingItem struct{}

// ExitEditMode is an alias of CancelAddingItem for the "done" control.
type ExitEditMode struct{}

// MarkPacked sets the packed flag of an item.
type MarkPacked struct {
	ID       types.ItemID
	IsPacked bool
}

// EnterDeleteMode shows the per-row delete controls.
type EnterDeleteMode struct{}

// ExitDeleteMode hides the per-row delete controls.
type ExitDeleteMode struct{}

// Delete moves an item to the trash and offers an undo.
type Delete struct {
	ID types.ItemID
}

// UndoDelete restores the most recently deleted item.
type UndoDelete struct{}

func (EnterEditMode) isIntent() {}
func (SetNewItemName) isIntent() {}
func (ConfirmAddingItem) isIntent() {}
func (CancelAddingItem) isIntent() {}
func (ExitEditMode) isIntent() {}
func (MarkPacked) isIntent() {}
func (EnterDeleteMode) isIntent() {}
func (ExitDeleteMode) isIntent() {}
func (Delete) isIntent() {}
func (UndoDelete) isIntent() {}

func (EnterEditMode) String() string { return "EnterEditMode" }
func (i SetNewItemName) String() string { return fmt.Sprintf("SetNewItemName(%q)", i.Text) }
func (ConfirmAddingItem) String() string { return "ConfirmAddingItem" }
func (CancelAddingItem) String() string { return "CancelAddingItem" }
func (ExitEditMode) String() string { return "ExitEditMode" }
func (i MarkPacked) String() string { return fmt.Sprintf("MarkPacked(%d, %t)", i.ID, i.IsPacked) }
func (EnterDeleteMode) String() string { return "EnterDeleteMode" }
func (ExitDeleteMode) String() string { return "ExitDeleteMode" }
func (i Delete) String() string { return fmt.Sprintf("Delete(%d)", i.ID) }
func (UndoDelete) String() string { return "UndoDelete" }
