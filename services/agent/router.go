// File: services/agent/router.go
package agent

import "strings"

// Intent is the routing classification of an incoming message.
type Intent string

const (
	IntentBooking   Intent = "booking"
	IntentDocuments Intent = "documents"
	IntentGeneral   Intent = "general"
)

var (
	bookingKeywords  = []string{"book", "appointment", "schedule"}
	documentKeywords = []string{"document", "information", "about", "what", "how"}
)

// DetectIntent classifies a message. An active booking session captures
// every message as a booking turn regardless of content: the user is
// mid-flow and free text is interpreted as slot-filling input. There is
// no cancellation path out of an active flow.
func DetectIntent(message string, bookingActive bool) Intent {
	lower := strings.ToLower(message)

	if bookingActive || containsAny(lower, bookingKeywords) {
		return IntentBooking
	}
	if containsAny(lower, documentKeywords) {
		return IntentDocuments
	}
	return IntentGeneral
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
