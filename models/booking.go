package models

import "time"

// BookingField identifies one slot in the booking record.
type BookingField string

const (
	FieldName  BookingField = "name"
	FieldEmail BookingField = "email"
	FieldPhone BookingField = "phone"
	FieldDate  BookingField = "date"
)

// BookingFieldOrder is the fixed acquisition sequence. Slots are always
// collected in this order; it is not configurable.
var BookingFieldOrder = []BookingField{FieldName, FieldEmail, FieldPhone, FieldDate}

// BookingSlots holds the four collected values. An empty string means the
// slot has not been filled yet.
type BookingSlots struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Date  string `json:"date"`
}

// Value returns the stored value for the given field.
func (b *BookingSlots) Value(field BookingField) string {
	switch field {
	case FieldName:
		return b.Name
	case FieldEmail:
		return b.Email
	case FieldPhone:
		return b.Phone
	case FieldDate:
		return b.Date
	}
	return ""
}

// SetValue overwrites the value for the given field. No validation is
// performed here; callers must validate first.
func (b *BookingSlots) SetValue(field BookingField, value string) {
	switch field {
	case FieldName:
		b.Name = value
	case FieldEmail:
		b.Email = value
	case FieldPhone:
		b.Phone = value
	case FieldDate:
		b.Date = value
	}
}

// ConversationTurn is one entry in a session's history log.
type ConversationTurn struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// BookingSession is the per-conversation mutable state: the in-progress
// slots, whether a booking flow is active, and the turn history.
type BookingSession struct {
	Slots   BookingSlots       `json:"slots"`
	Active  bool               `json:"active"`
	History []ConversationTurn `json:"history"`
}

// UpdateSlot unconditionally overwrites the given field.
func (s *BookingSession) UpdateSlot(field BookingField, value string) {
	s.Slots.SetValue(field, value)
}

// IsComplete reports whether all four slots are filled. This is the sole
// termination condition for the booking flow.
func (s *BookingSession) IsComplete() bool {
	for _, f := range BookingFieldOrder {
		if s.Slots.Value(f) == "" {
			return false
		}
	}
	return true
}

// NextField returns the first empty field in acquisition order, or false
// when every slot is filled.
func (s *BookingSession) NextField() (BookingField, bool) {
	for _, f := range BookingFieldOrder {
		if s.Slots.Value(f) == "" {
			return f, true
		}
	}
	return "", false
}

// AppendTurn adds one turn to the history log.
func (s *BookingSession) AppendTurn(role, text string) {
	s.History = append(s.History, ConversationTurn{Role: role, Text: text})
}

// BookingRecord is a confirmed booking persisted after the flow completes.
type BookingRecord struct {
	ID        string    `bson:"_id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Date      string    `bson:"date" json:"date"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
