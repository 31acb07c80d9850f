package types

// ID types give integer identifiers semantic meaning and keep them from
// being mixed up with counts or positions.

// ItemID identifies a unique packing list item.
// Values are assigned by the database and stay stable across edits,
// deletes and undos.
type ItemID int

// ToInt converts the id back to int for SQL parameters and output.
func (id ItemID) ToInt() int {
	return int(id)
}

// Valid reports whether the id could have been assigned by the database.
func (id ItemID) Valid() bool {
	return id > 0
}

// ItemIDFromInt creates an ItemID from an int value.
func ItemIDFromInt(i int) ItemID {
	return ItemID(i)
}
