// Package store persists subscribers and their confirmation tokens.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence boundary of the registration pipeline.
//
// Implementations return pkg/platform/sentinel errors for infrastructure
// facts (not found, conflict, unavailable); the service layer translates
// them into domain errors.
type Store interface {
	// Begin acquires a transactional handle. The caller owns it and must
	// release it with Commit or Rollback on every exit path.
	Begin(ctx context.Context) (Tx, error)

	// ConfirmByToken flips the owning subscriber to confirmed. Confirming an
	// already-confirmed subscriber is a no-op; an unknown token returns
	// sentinel.ErrNotFound.
	ConfirmByToken(ctx context.Context, token string) error

	// ListConfirmedEmails returns the addresses of confirmed subscribers in
	// subscription order.
	ListConfirmedEmails(ctx context.Context) ([]string, error)
}

// Tx scopes subscriber writes to one transaction. Writes are invisible to
// other transactions until Commit.
type Tx interface {
	// InsertSubscriber adds a pending_confirmation row and returns its
	// freshly generated identifier. Duplicate emails surface as
	// sentinel.ErrConflict.
	InsertSubscriber(ctx context.Context, email, name string, subscribedAt time.Time) (uuid.UUID, error)

	// StoreToken links token to the subscriber. A colliding token surfaces
	// as sentinel.ErrConflict.
	StoreToken(ctx context.Context, subscriberID uuid.UUID, token string) error

	Commit() error
	Rollback() error
}
