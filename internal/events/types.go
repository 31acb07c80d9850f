package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventItemsChanged means the persisted item list may differ from the last read
	EventItemsChanged EventType = "items_changed"
)

// Source tells where a change was detected
type Source string

const (
	SourceLocal    Source = "local"    // a write made by this process
	SourceExternal Source = "external" // a write seen on the database files
)

// Event represents a database change notification
type Event struct {
	Type       EventType
	Source     Source
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
