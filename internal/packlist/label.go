package packlist

import "fmt"

// Label is a one-shot notification for the presentation layer.
type Label interface {
	isLabel()
	fmt.Stringer
}

// ShowUndoSnackbar offers to restore the item that was just deleted.
type ShowUndoSnackbar struct {
	ItemName string
}

// ShowError reports a storage operation that did not go through.
type ShowError struct {
	Op      string
	Message string
}

func (ShowUndoSnackbar) isLabel() {}
func (ShowError) isLabel() {}

func (l ShowUndoSnackbar) String() string { return fmt.Sprintf("Deleted %q", l.ItemName) }
func (l ShowError) String() string { return fmt.Sprintf("Could not %s: %s", l.Op, l.Message) }
