package models

import "errors"

// Domain-specific errors shared by the repository and service layers
var (
	// ErrItemNotFound indicates that no live (non-deleted) item has the given ID
	ErrItemNotFound = errors.New("item not found")

	// ErrNothingToUndo indicates that there is no deleted item waiting in the trash
	ErrNothingToUndo = errors.New("no deleted item to restore")
)
