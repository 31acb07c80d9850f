package notifications

import (
	"testing"

	"github.com/chmielowski/baggage/internal/tui/state"
	"github.com/stretchr/testify/assert"
)

func TestRenderInlineFromState(t *testing.T) {
	out := RenderInlineFromState(state.Notification{
		Level:   state.LevelInfo,
		Message: `Deleted "Socks"`,
		Action:  "u: undo",
	})
	assert.Contains(t, out, `Deleted "Socks"`)
	assert.Contains(t, out, "u: undo")

	out = RenderInlineFromState(state.Notification{Level: state.LevelError, Message: "Could not add item"})
	assert.Contains(t, out, "✕")
	assert.Contains(t, out, "Could not add item")
}
