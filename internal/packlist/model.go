package packlist

import (
	"slices"

	"github.com/chmielowski/baggage/internal/models"
	"github.com/chmielowski/baggage/internal/types"
)

// ItemRow is one rendered list row
type ItemRow struct {
	ID              types.ItemID
	Name            string
	IsChecked       bool
	IsDeleteVisible bool
}

// Model is the read-only view of State handed to the presentation layer
type Model struct {
	Progress                int
	IsProgressVisible       bool
	IsInputVisible          bool
	IsAddNewVisible         bool
	IsDeleteButtonVisible   bool
	IsCancelDeletingVisible bool
	NewItemName             string
	Items                   []ItemRow
}

// Equal reports whether two models render identically
func (m Model) Equal(other Model) bool {
	return m.Progress == other.Progress &&
		m.IsProgressVisible == other.IsProgressVisible &&
		m.IsInputVisible == other.IsInputVisible &&
		m.IsAddNewVisible == other.IsAddNewVisible &&
		m.IsDeleteButtonVisible == other.IsDeleteButtonVisible &&
		m.IsCancelDeletingVisible == other.IsCancelDeletingVisible &&
		m.NewItemName == other.NewItemName &&
		slices.Equal(m.Items, other.Items)
}

// Project derives the Model from a State. It is pure.
func Project(s State) Model {
	rows := make([]ItemRow, 0, len(s.Items))
	for _, it := range s.Items {
		rows = append(rows, ItemRow{
			ID:              it.ID,
			Name:            it.Name,
			IsChecked:       it.IsPacked,
			IsDeleteVisible: s.DeleteMode,
		})
	}

	return Model{
		Progress:                models.StatsFor(s.Items).Progress,
		IsProgressVisible:       !s.Input.Visible && !s.DeleteMode,
		IsInputVisible:          s.Input.Visible,
		IsAddNewVisible:         !s.Input.Visible,
		IsDeleteButtonVisible:   !s.DeleteMode,
		IsCancelDeletingVisible: s.DeleteMode,
		NewItemName:             s.Input.Text,
		Items:                   rows,
	}
}
