package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"newsletter/internal/subscription/models"
	"newsletter/pkg/platform/sentinel"
)

// MemoryStore is an in-memory Store for tests and local development. It
// mirrors the postgres semantics: unique email and token, staged writes
// invisible until Commit.
type MemoryStore struct {
	mu          sync.Mutex
	subscribers map[uuid.UUID]*models.Subscriber
	byEmail     map[string]uuid.UUID
	tokens      map[string]uuid.UUID
}

// NewMemory constructs an empty in-memory subscription store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		subscribers: make(map[uuid.UUID]*models.Subscriber),
		byEmail:     make(map[string]uuid.UUID),
		tokens:      make(map[string]uuid.UUID),
	}
}

func (s *MemoryStore) Begin(ctx context.Context) (Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memoryTx{store: s}, nil
}

func (s *MemoryStore) ConfirmByToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscriberID, ok := s.tokens[token]
	if !ok {
		return sentinel.ErrNotFound
	}
	// Idempotent: re-confirming is not an error.
	s.subscribers[subscriberID].Status = models.StatusConfirmed
	return nil
}

func (s *MemoryStore) ListConfirmedEmails(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	confirmed := make([]*models.Subscriber, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		if sub.Status == models.StatusConfirmed {
			confirmed = append(confirmed, sub)
		}
	}
	// Match the postgres ordering.
	for i := 1; i < len(confirmed); i++ {
		for j := i; j > 0 && confirmed[j].SubscribedAt.Before(confirmed[j-1].SubscribedAt); j-- {
			confirmed[j], confirmed[j-1] = confirmed[j-1], confirmed[j]
		}
	}
	emails := make([]string, 0, len(confirmed))
	for _, sub := range confirmed {
		emails = append(emails, sub.Email)
	}
	return emails, nil
}

// Subscriber returns a copy of the stored row, for test assertions.
func (s *MemoryStore) Subscriber(id uuid.UUID) (models.Subscriber, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subscribers[id]
	if !ok {
		return models.Subscriber{}, false
	}
	return *sub, true
}

// SubscriberByEmail returns a copy of the stored row, for test assertions.
func (s *MemoryStore) SubscriberByEmail(email string) (models.Subscriber, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[email]
	if !ok {
		return models.Subscriber{}, false
	}
	return *s.subscribers[id], true
}

// TokenFor returns the token issued to a subscriber, for test assertions.
func (s *MemoryStore) TokenFor(subscriberID uuid.UUID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, id := range s.tokens {
		if id == subscriberID {
			return token, true
		}
	}
	return "", false
}

// Count reports the number of persisted subscriber rows.
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

// memoryTx stages writes and applies them atomically on Commit.
type memoryTx struct {
	store      *MemoryStore
	staged     []*models.Subscriber
	stagedToks map[string]uuid.UUID
	done       bool
}

func (t *memoryTx) InsertSubscriber(ctx context.Context, email, name string, subscribedAt time.Time) (uuid.UUID, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if _, exists := t.store.byEmail[email]; exists {
		return uuid.Nil, sentinel.ErrConflict
	}
	for _, staged := range t.staged {
		if staged.Email == email {
			return uuid.Nil, sentinel.ErrConflict
		}
	}

	sub := &models.Subscriber{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		SubscribedAt: subscribedAt,
		Status:       models.StatusPendingConfirmation,
	}
	t.staged = append(t.staged, sub)
	return sub.ID, nil
}

func (t *memoryTx) StoreToken(ctx context.Context, subscriberID uuid.UUID, token string) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if _, exists := t.store.tokens[token]; exists {
		return sentinel.ErrConflict
	}
	if t.stagedToks == nil {
		t.stagedToks = make(map[string]uuid.UUID)
	}
	t.stagedToks[token] = subscriberID
	return nil
}

func (t *memoryTx) Commit() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if t.done {
		return nil
	}
	t.done = true
	for _, sub := range t.staged {
		t.store.subscribers[sub.ID] = sub
		t.store.byEmail[sub.Email] = sub.ID
	}
	for token, id := range t.stagedToks {
		t.store.tokens[token] = id
	}
	return nil
}

func (t *memoryTx) Rollback() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	t.done = true
	t.staged = nil
	t.stagedToks = nil
	return nil
}
