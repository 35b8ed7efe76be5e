package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextFieldFollowsFixedOrder(t *testing.T) {
	s := &BookingSession{}

	f, ok := s.NextField()
	assert.True(t, ok)
	assert.Equal(t, FieldName, f)

	// Idempotent without mutation.
	f2, ok2 := s.NextField()
	assert.True(t, ok2)
	assert.Equal(t, f, f2)

	s.UpdateSlot(FieldName, "John Smith")
	f, _ = s.NextField()
	assert.Equal(t, FieldEmail, f)

	s.UpdateSlot(FieldEmail, "john@x.com")
	f, _ = s.NextField()
	assert.Equal(t, FieldPhone, f)

	s.UpdateSlot(FieldPhone, "555-123-4567")
	f, _ = s.NextField()
	assert.Equal(t, FieldDate, f)

	s.UpdateSlot(FieldDate, "2026-09-04")
	_, ok = s.NextField()
	assert.False(t, ok)
	assert.True(t, s.IsComplete())
}

func TestIsCompleteRequiresAllFour(t *testing.T) {
	s := &BookingSession{}
	assert.False(t, s.IsComplete())

	s.UpdateSlot(FieldName, "John Smith")
	s.UpdateSlot(FieldEmail, "john@x.com")
	s.UpdateSlot(FieldPhone, "555-123-4567")
	assert.False(t, s.IsComplete())

	s.UpdateSlot(FieldDate, "2026-09-04")
	assert.True(t, s.IsComplete())
}

func TestUpdateSlotOverwrites(t *testing.T) {
	s := &BookingSession{}
	s.UpdateSlot(FieldName, "John")
	s.UpdateSlot(FieldName, "Jane")
	assert.Equal(t, "Jane", s.Slots.Name)
}

func TestAppendTurn(t *testing.T) {
	s := &BookingSession{}
	s.AppendTurn("user", "hello")
	s.AppendTurn("assistant", "hi there")

	assert.Len(t, s.History, 2)
	assert.Equal(t, ConversationTurn{Role: "user", Text: "hello"}, s.History[0])
	assert.Equal(t, ConversationTurn{Role: "assistant", Text: "hi there"}, s.History[1])
}
