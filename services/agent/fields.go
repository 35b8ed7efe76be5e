// File: services/agent/fields.go
package agent

import (
	"fmt"
	"regexp"
	"strings"

	"concierge/models"
)

// fieldSpec gathers everything the booking flow needs to know about one
// slot: how to ask the LLM to extract it, how to validate a candidate, and
// what to say when asking for it or re-asking after a miss.
type fieldSpec struct {
	extractPrompt string // format with the raw user message
	askPrompt     string // emitted when the flow advances to this field
	missPrompt    string // emitted when extraction finds nothing
	validate      func(string) bool
}

var (
	emailShape      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	emailStrict     = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phoneShape      = regexp.MustCompile(`[\+\d\-\(\)\s]{10,20}`)
	nameShape       = regexp.MustCompile(`^[A-Za-z\s'-]{2,}$`)
	nonDigit        = regexp.MustCompile(`\D`)
	openingPrompt   = "I'll help you book an appointment. Let's start with your full name."
	completePrompt  = "Your booking information is already complete!"
	degradedMessage = "Sorry, I couldn't process that right now. Please try again."
)

var fieldSpecs = map[models.BookingField]fieldSpec{
	models.FieldName: {
		extractPrompt: "Extract the person's full name from this message: %q\nReturn ONLY the extracted name or \"NOT_FOUND\".",
		askPrompt:     "Let's start with your full name.",
		missPrompt:    "I need your full name to proceed.",
		validate:      validName,
	},
	models.FieldEmail: {
		extractPrompt: "Extract the email address from this message: %q\nReturn ONLY the email or \"NOT_FOUND\".",
		askPrompt:     "Great! Now I need your email address.",
		missPrompt:    "Please provide your email address.",
		validate:      validEmail,
	},
	models.FieldPhone: {
		extractPrompt: "Extract the phone number from this message: %q\nReturn ONLY the phone number or \"NOT_FOUND\".",
		askPrompt:     "Perfect! What's your phone number?",
		missPrompt:    "Please provide your phone number.",
		validate:      validPhone,
	},
	models.FieldDate: {
		// Dates never go through the LLM extractor; the normalizer parses
		// the raw message directly.
		askPrompt:  "Excellent! When would you like your appointment? (e.g., 'tomorrow', 'next Monday')",
		missPrompt: "When would you like your appointment?",
		validate:   func(v string) bool { return v != "" },
	},
}

func validPhone(v string) bool {
	digits := nonDigit.ReplaceAllString(v, "")
	return len(digits) >= 10 && len(digits) <= 15
}

func validEmail(v string) bool {
	return emailStrict.MatchString(v)
}

func validName(v string) bool {
	return nameShape.MatchString(v)
}

// ValidateField applies the per-kind syntactic rule. Empty values are
// always invalid; unknown field kinds are treated as valid.
func ValidateField(field models.BookingField, value string) bool {
	if value == "" {
		return false
	}
	spec, ok := fieldSpecs[field]
	if !ok {
		return true
	}
	return spec.validate(value)
}

func askPromptFor(field models.BookingField) string {
	if spec, ok := fieldSpecs[field]; ok {
		return spec.askPrompt
	}
	return fmt.Sprintf("Now I need your %s.", field)
}

func missPromptFor(field models.BookingField) string {
	if spec, ok := fieldSpecs[field]; ok {
		return spec.missPrompt
	}
	return fmt.Sprintf("Please provide your %s.", field)
}

func invalidPromptFor(field models.BookingField) string {
	return fmt.Sprintf("Invalid %s format. Please provide a valid %s.", field, field)
}

func summaryFor(slots models.BookingSlots) string {
	var sb strings.Builder
	sb.WriteString("Booking Complete!\n")
	sb.WriteString("Name: " + slots.Name + "\n")
	sb.WriteString("Email: " + slots.Email + "\n")
	sb.WriteString("Phone: " + slots.Phone + "\n")
	sb.WriteString("Date: " + slots.Date + "\n")
	sb.WriteString("Your appointment is confirmed!")
	return sb.String()
}
