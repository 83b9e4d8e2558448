package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus tracks the subscriber lifecycle.
//
// Invariant: a row starts at pending_confirmation and transitions exactly
// once, to confirmed, never back. Nothing in this subsystem deletes rows.
type SubscriptionStatus string

const (
	StatusPendingConfirmation SubscriptionStatus = "pending_confirmation"
	StatusConfirmed           SubscriptionStatus = "confirmed"
)

// Subscriber is one mailing-list signup as persisted.
type Subscriber struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	Name         string             `json:"name"`
	SubscribedAt time.Time          `json:"subscribed_at"`
	Status       SubscriptionStatus `json:"status"`
}

// NewSubscription is the raw POST /subscription body before validation.
type NewSubscription struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
