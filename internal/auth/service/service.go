// Package service validates editor credentials and manages login sessions.
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"newsletter/internal/audit"
	"newsletter/internal/auth/models"
	"newsletter/internal/auth/store/session"
	"newsletter/internal/auth/store/user"
	dErrors "newsletter/pkg/domain-errors"
	"newsletter/pkg/platform/sentinel"
	"newsletter/pkg/requestcontext"
)

// maxConcurrentVerifications bounds how many bcrypt comparisons run at
// once; each one pins a core for tens of milliseconds.
const maxConcurrentVerifications = 4

// dummyHash is compared when the username is unknown so lookups and
// mismatches take the same time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service authenticates editors and issues sessions.
type Service struct {
	users       user.Store
	sessions    session.Store
	auditor     *audit.Publisher
	logger      *slog.Logger
	sessionTTL  time.Duration
	verifySlots *semaphore.Weighted
}

func NewService(
	users user.Store,
	sessions session.Store,
	auditor *audit.Publisher,
	logger *slog.Logger,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		users:       users,
		sessions:    sessions,
		auditor:     auditor,
		logger:      logger,
		sessionTTL:  sessionTTL,
		verifySlots: semaphore.NewWeighted(maxConcurrentVerifications),
	}
}

// ValidateCredentials checks the pair against the user store. Unknown
// usernames and wrong passwords both come back as CodeUnauthorized; the
// dummy comparison keeps the two paths indistinguishable by timing.
func (s *Service) ValidateCredentials(ctx context.Context, creds models.Credentials) (uuid.UUID, error) {
	account, err := s.users.FindByUsername(ctx, creds.Username)
	hash := dummyHash
	if err == nil {
		hash = account.PasswordHash
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	if err := s.verifySlots.Acquire(ctx, 1); err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "verification pool saturated")
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password))
	s.verifySlots.Release(1)

	if account == nil || compareErr != nil {
		s.auditor.Record(ctx, audit.Event{
			Action: audit.ActionLoginFailed,
			Detail: creds.Username,
		})
		return uuid.Nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}
	return account.ID, nil
}

// Login validates the credentials and opens a session.
func (s *Service) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	userID, err := s.ValidateCredentials(ctx, creds)
	if err != nil {
		return nil, err
	}

	token, err := generateSessionToken()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate session token")
	}

	now := requestcontext.Now(ctx)
	sess := &models.Session{
		Token:     token,
		UserID:    userID,
		Username:  creds.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store session")
	}

	s.auditor.Record(ctx, audit.Event{
		Action: audit.ActionLoginSucceeded,
		UserID: userID.String(),
	})
	s.logger.InfoContext(ctx, "editor logged in", "user_id", userID.String())
	return sess, nil
}

// SessionFor resolves a cookie token to a live session. Unknown or expired
// tokens map to CodeUnauthorized.
func (s *Service) SessionFor(ctx context.Context, token string) (*models.Session, error) {
	sess, err := s.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "no active session")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	return sess, nil
}

// Logout drops the session. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete session")
	}
	return nil
}

func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
