package audit

import "time"

// Action names the audited operation.
type Action string

const (
	ActionSubscriptionCreated   Action = "subscription_created"
	ActionSubscriptionConfirmed Action = "subscription_confirmed"
	ActionNewsletterPublished   Action = "newsletter_published"
	ActionLoginSucceeded        Action = "login_succeeded"
	ActionLoginFailed           Action = "login_failed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp    time.Time `json:"timestamp"`
	Action       Action    `json:"action"`
	SubscriberID string    `json:"subscriber_id,omitempty"`
	UserID       string    `json:"user_id,omitempty"`
	Email        string    `json:"email,omitempty"`
	RequestID    string    `json:"request_id,omitempty"`
	Detail       string    `json:"detail,omitempty"`
}
