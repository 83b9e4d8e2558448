// Package user persists editor accounts.
package user

import (
	"context"

	"newsletter/internal/auth/models"
)

// Store looks up editor accounts for credential validation.
type Store interface {
	// FindByUsername returns the account for username or
	// sentinel.ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
