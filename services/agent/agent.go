// File: services/agent/agent.go
package agent

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"concierge/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	roleUser      = "user"
	roleAssistant = "assistant"

	lockStripes = 64
)

// SearchService is the similarity-search collaborator used by the
// document handler.
type SearchService interface {
	Search(ctx context.Context, query string, k int) ([]models.SearchResult, error)
}

// BookingRecorder persists confirmed bookings. Persistence is best-effort:
// failures are logged, never surfaced to the user.
type BookingRecorder interface {
	Save(ctx context.Context, record models.BookingRecord) error
}

// Agent routes each incoming message to the booking flow, the document
// handler, or the general handler, and owns all session mutation.
type Agent struct {
	llm       Completer
	search    SearchService
	sessions  SessionStore
	extractor *Extractor
	dates     *DateNormalizer
	records   BookingRecorder // optional
	logger    *zap.Logger

	// Turns within one conversation are strictly sequential. Locks are
	// striped by session key so the set stays fixed no matter how many
	// sessions come and go.
	locks [lockStripes]sync.Mutex
}

func New(llm Completer, search SearchService, sessions SessionStore, records BookingRecorder, logger *zap.Logger) *Agent {
	return &Agent{
		llm:       llm,
		search:    search,
		sessions:  sessions,
		extractor: NewExtractor(llm),
		dates:     NewDateNormalizer(),
		records:   records,
		logger:    logger,
	}
}

func (a *Agent) sessionLock(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &a.locks[h.Sum32()%lockStripes]
}

// Chat processes one conversation turn and returns the assistant reply.
// Exactly one assistant turn is appended per call; session state mutates
// at most once.
func (a *Agent) Chat(ctx context.Context, sessionID, message string) (string, error) {
	lock := a.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("load session %s: %w", sessionID, err)
	}
	sess.AppendTurn(roleUser, message)

	var reply string
	switch DetectIntent(message, sess.Active) {
	case IntentBooking:
		reply = a.handleBooking(ctx, sessionID, sess, message)
	case IntentDocuments:
		reply = a.handleDocuments(ctx, message)
	default:
		reply = a.handleGeneral(ctx, message)
	}

	sess.AppendTurn(roleAssistant, reply)
	if err := a.sessions.Save(ctx, sessionID, sess); err != nil {
		return "", fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return reply, nil
}

// handleBooking drives one turn of the slot-filling state machine.
func (a *Agent) handleBooking(ctx context.Context, sessionID string, sess *models.BookingSession, message string) string {
	if !sess.Active {
		// The triggering message only starts the flow; its content is not
		// consumed as slot data.
		sess.Slots = models.BookingSlots{}
		sess.Active = true
		return openingPrompt
	}

	field, ok := sess.NextField()
	if !ok {
		// Unreachable while active given the completion invariant; answer
		// safely rather than crash.
		a.logger.Warn("booking session active with no missing field", zap.String("session", sessionID))
		return completePrompt
	}

	var candidate string
	if field == models.FieldDate {
		candidate = a.dates.Normalize(message)
	} else {
		var err error
		candidate, err = a.extractor.Extract(ctx, message, field)
		if err != nil {
			// Service failure, not a miss: degrade and leave the slot
			// untouched so the same field is re-asked next turn.
			a.logger.Error("field extraction failed", zap.String("field", string(field)), zap.Error(err))
			return degradedMessage
		}
	}

	if candidate == "" {
		return missPromptFor(field)
	}
	if !ValidateField(field, candidate) {
		return invalidPromptFor(field)
	}

	sess.UpdateSlot(field, candidate)
	a.logger.Debug("slot saved", zap.String("field", string(field)), zap.String("value", candidate))

	if sess.IsComplete() {
		a.recordBooking(ctx, sessionID, sess.Slots)
		sess.Active = false
		return summaryFor(sess.Slots)
	}

	next, _ := sess.NextField()
	return askPromptFor(next)
}

func (a *Agent) recordBooking(ctx context.Context, sessionID string, slots models.BookingSlots) {
	if a.records == nil {
		return
	}
	rec := models.BookingRecord{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Name:      slots.Name,
		Email:     slots.Email,
		Phone:     slots.Phone,
		Date:      slots.Date,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.records.Save(ctx, rec); err != nil {
		a.logger.Error("failed to persist booking record", zap.String("session", sessionID), zap.Error(err))
	}
}

// handleDocuments answers a question from the uploaded documents.
func (a *Agent) handleDocuments(ctx context.Context, query string) string {
	results, err := a.search.Search(ctx, query, 3)
	if err != nil {
		a.logger.Error("document search failed", zap.Error(err))
		return "Sorry, I couldn't access the documents right now."
	}
	if len(results) == 0 {
		return "No relevant information found."
	}

	var contextText string
	for i, r := range results {
		if i > 0 {
			contextText += "\n\n"
		}
		contextText += r.Text
	}

	answer, err := a.llm.Complete(ctx, fmt.Sprintf("Based on this information: %s\nAnswer: %s", contextText, query))
	if err != nil {
		a.logger.Error("document answer generation failed", zap.Error(err))
		return degradedMessage
	}
	return answer
}

func (a *Agent) handleGeneral(ctx context.Context, message string) string {
	prompt := fmt.Sprintf(`You are a helpful assistant. You can help with:
1. Answering questions about documents
2. Booking appointments

User message: %s

Respond helpfully and guide them to available services if appropriate.`, message)

	answer, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		a.logger.Error("general reply generation failed", zap.Error(err))
		return degradedMessage
	}
	return answer
}
