package models

import (
	"math"
	"time"

	"github.com/chmielowski/baggage/internal/types"
)

// Item represents one packable thing on the list
type Item struct {
	ID        types.ItemID `json:"id"`
	Name      string       `json:"name"`
	IsPacked  bool         `json:"is_packed"`
	CreatedAt time.Time    `json:"created_at"`
}

// GetID returns the item ID as int (used by the CLI quiet output mode)
func (i *Item) GetID() int {
	return i.ID.ToInt()
}

// PackingStats summarises how far along the packing is
type PackingStats struct {
	Total    int `json:"total"`
	Packed   int `json:"packed"`
	Progress int `json:"progress"` // percentage, 0-100
}

// Progress returns round(100 * packed / total), or 0 for an empty list
func Progress(packed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(100*packed) / float64(total)))
}

// StatsFor counts packed items in a snapshot
func StatsFor(items []*Item) PackingStats {
	packed := 0
	for _, it := range items {
		if it.IsPacked {
			packed++
		}
	}
	return PackingStats{
		Total:    len(items),
		Packed:   packed,
		Progress: Progress(packed, len(items)),
	}
}
