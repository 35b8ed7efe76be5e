package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		active  bool
		want    Intent
	}{
		{"booking keyword", "book me a slot", false, IntentBooking},
		{"appointment keyword", "I need an appointment", false, IntentBooking},
		{"schedule keyword mid-sentence", "can you schedule something", false, IntentBooking},
		{"document question", "what is the refund policy", false, IntentDocuments},
		{"information keyword", "I need information on pricing", false, IntentDocuments},
		{"greeting", "hello", false, IntentGeneral},
		{"uppercase booking keyword", "BOOK an appointment", false, IntentBooking},

		// An active session captures everything, regardless of content.
		{"active: plain text", "John Smith", true, IntentBooking},
		{"active: document-looking question", "what about the documents", true, IntentBooking},
		{"active: greeting", "hello", true, IntentBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.message, tt.active))
		})
	}
}
