package session

import (
	"context"
	"sync"
	"time"

	"newsletter/internal/auth/models"
	"newsletter/pkg/platform/sentinel"
)

// InMemoryStore keeps sessions in a map. Expired sessions are dropped
// lazily on lookup.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	clock    func() time.Time
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]models.Session),
		clock:    time.Now,
	}
}

func (s *InMemoryStore) Create(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = *session
	return nil
}

func (s *InMemoryStore) Find(_ context.Context, token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if session.Expired(s.clock()) {
		delete(s.sessions, token)
		return nil, sentinel.ErrNotFound
	}
	return &session, nil
}

func (s *InMemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
