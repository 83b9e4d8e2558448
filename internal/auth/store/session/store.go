// Package session persists login sessions keyed by opaque tokens.
package session

import (
	"context"

	"newsletter/internal/auth/models"
)

// Store persists sessions. Implementations: Redis for deployments sharing
// session state, memory for tests and single-node setups.
type Store interface {
	// Create stores the session until its ExpiresAt.
	Create(ctx context.Context, session *models.Session) error

	// Find returns the live session for token or sentinel.ErrNotFound.
	// Expired sessions are treated as absent.
	Find(ctx context.Context, token string) (*models.Session, error)

	// Delete removes the session. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}
