package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/chmielowski/baggage/internal/packlist"
)

// ModelMsg carries a new rendered list model from the store.
type ModelMsg struct {
	Model packlist.Model
}

// LabelMsg carries a one-shot notification from the store.
type LabelMsg struct {
	Label packlist.Label
}

// waitForModel returns a command that blocks until the store publishes the
// next model. Returns nil once the channel closes or ctx ends.
func waitForModel(ctx context.Context, ch <-chan packlist.Model) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case model, ok := <-ch:
			if !ok {
				return nil
			}
			return ModelMsg{Model: model}
		case <-ctx.Done():
			return nil
		}
	}
}

// waitForLabel is waitForModel for the label stream.
func waitForLabel(ctx context.Context, ch <-chan packlist.Label) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case label, ok := <-ch:
			if !ok {
				return nil
			}
			return LabelMsg{Label: label}
		case <-ctx.Done():
			return nil
		}
	}
}
