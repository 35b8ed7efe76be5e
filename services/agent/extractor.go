// File: services/agent/extractor.go
package agent

import (
	"context"
	"fmt"
	"strings"

	"concierge/models"
)

const notFoundSentinel = "NOT_FOUND"

// Completer is the language-completion collaborator. A failed call is a
// service error, not an extraction miss; the two recover differently.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Extractor pulls a single field value out of free text using the
// completion service plus deterministic pattern cleanup.
type Extractor struct {
	llm Completer
}

func NewExtractor(llm Completer) *Extractor {
	return &Extractor{llm: llm}
}

// Extract returns the candidate value for the given field, or "" when the
// message does not contain one. A non-nil error means the completion
// service itself failed and the caller should degrade, not re-prompt.
// Date slots are not handled here; the date normalizer parses the raw
// message directly.
func (e *Extractor) Extract(ctx context.Context, message string, field models.BookingField) (string, error) {
	spec, ok := fieldSpecs[field]
	if !ok || spec.extractPrompt == "" {
		return "", fmt.Errorf("no extraction prompt for field %q", field)
	}

	out, err := e.llm.Complete(ctx, fmt.Sprintf(spec.extractPrompt, message))
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", field, err)
	}
	out = strings.TrimSpace(out)

	// Models get verbose; post-filter email and phone output down to the
	// expected shape before it reaches validation.
	switch field {
	case models.FieldEmail:
		out = emailShape.FindString(out)
	case models.FieldPhone:
		out = phoneShape.FindString(out)
	default:
		if out == notFoundSentinel {
			out = ""
		}
	}

	return strings.TrimSpace(out), nil
}
