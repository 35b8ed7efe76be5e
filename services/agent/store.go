// File: services/agent/store.go
package agent

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"concierge/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "agent:session:"

// SessionStore scopes one BookingSession per conversation identity.
// Sessions are created lazily on first access and expire after the
// configured TTL so abandoned bookings do not accumulate.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Save(ctx context.Context, sessionID string, session *models.BookingSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON values with a TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return &models.BookingSession{}, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.BookingSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, session *models.BookingSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore is an in-process store for tests and deployments
// without Redis. Expired entries are evicted lazily on access.
type MemorySessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	session   *models.BookingSession
	expiresAt time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok || s.now().After(e.expiresAt) {
		delete(s.entries, sessionID)
		return &models.BookingSession{}, nil
	}
	return cloneSession(e.session), nil
}

func (s *MemorySessionStore) Save(ctx context.Context, sessionID string, session *models.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		session:   cloneSession(session),
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

func cloneSession(in *models.BookingSession) *models.BookingSession {
	out := *in
	out.History = append([]models.ConversationTurn(nil), in.History...)
	return &out
}
