package user

import (
	"context"
	"sync"

	"newsletter/internal/auth/models"
	"newsletter/pkg/platform/sentinel"
)

// InMemoryStore keeps editor accounts in a map. Used by tests and
// single-node setups without a users table.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{users: make(map[string]models.User)}
}

// Add registers an account, replacing any prior account with the same
// username.
func (s *InMemoryStore) Add(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Username] = u
}

func (s *InMemoryStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &u, nil
}
