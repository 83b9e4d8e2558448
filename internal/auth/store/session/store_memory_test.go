package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"newsletter/internal/auth/models"
	"newsletter/pkg/platform/sentinel"
)

type SessionStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func (s *SessionStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreSuite))
}

func (s *SessionStoreSuite) newSession(ttl time.Duration) *models.Session {
	now := time.Now()
	return &models.Session{
		Token:     uuid.NewString(),
		UserID:    uuid.New(),
		Username:  "editor",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s *SessionStoreSuite) TestSessionLookup() {
	s.Run("returns stored session when found", func() {
		session := s.newSession(time.Hour)
		s.Require().NoError(s.store.Create(context.Background(), session))

		found, err := s.store.Find(context.Background(), session.Token)
		s.Require().NoError(err)
		s.Equal(session, found)
	})

	s.Run("returns ErrNotFound for unknown token", func() {
		_, err := s.store.Find(context.Background(), "unknown")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *SessionStoreSuite) TestExpiredSessionIsAbsent() {
	session := s.newSession(time.Minute)
	s.Require().NoError(s.store.Create(context.Background(), session))

	s.store.clock = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err := s.store.Find(context.Background(), session.Token)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *SessionStoreSuite) TestDelete() {
	session := s.newSession(time.Hour)
	s.Require().NoError(s.store.Create(context.Background(), session))
	s.Require().NoError(s.store.Delete(context.Background(), session.Token))

	_, err := s.store.Find(context.Background(), session.Token)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	s.NoError(s.store.Delete(context.Background(), session.Token))
}
