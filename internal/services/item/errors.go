package item

import "errors"

// MaxNameLength is the longest item name accepted, in characters
const MaxNameLength = 100

// Item-related errors
var (
	// Validation errors
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNameTooLong   = errors.New("name cannot exceed 100 characters")
	ErrInvalidItemID = errors.New("invalid item ID")
)
