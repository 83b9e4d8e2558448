// Package models holds the editor-facing authentication types.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an editor account allowed to publish issues and reach the admin
// area. Subscribers never have accounts.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
}

// Credentials is an inbound username/password pair.
type Credentials struct {
	Username string
	Password string
}

// Session is a server-side login session referenced by an opaque token
// stored in a cookie.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has outlived its TTL at now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
