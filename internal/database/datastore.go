package database

// DataStore defines the unified interface for all data operations.
// It is composed of the smaller item interfaces so consumers can depend on
// just the part they use (e.g. ItemReader for read-only commands).
type DataStore interface {
	ItemRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
