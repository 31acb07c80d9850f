package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationState_AddReplacesSameLevel(t *testing.T) {
	s := NewNotificationState()
	assert.False(t, s.HasAny())

	s.Add(Notification{Level: LevelInfo, Message: "first"})
	s.Add(Notification{Level: LevelError, Message: "boom"})
	s.Add(Notification{Level: LevelInfo, Message: "second"})

	all := s.All()
	assert.Len(t, all, 2)
	assert.Equal(t, "boom", all[0].Message)
	assert.Equal(t, "second", all[1].Message)
}

func TestNotificationState_Clear(t *testing.T) {
	s := NewNotificationState()
	s.Add(Notification{Level: LevelInfo, Message: "a"})
	s.Add(Notification{Level: LevelError, Message: "b"})

	s.ClearLevel(LevelError)
	assert.Len(t, s.All(), 1)

	s.Clear()
	assert.False(t, s.HasAny())
}
