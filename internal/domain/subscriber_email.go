package domain

import (
	"github.com/asaskevich/govalidator"

	dErrors "newsletter/pkg/domain-errors"
)

// SubscriberEmail is an email address that passed syntactic validation.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail constructs a SubscriberEmail from external input.
//
// Errors: CodeInvalidInput when the string is not a syntactically valid
// address. Deliverability is proven later by the confirmation click, not
// here.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	if raw == "" || !govalidator.IsEmail(raw) {
		return SubscriberEmail{}, dErrors.New(dErrors.CodeInvalidInput, "invalid subscriber email")
	}
	return SubscriberEmail{value: raw}, nil
}

// String exposes the underlying address for queries and dispatch.
func (e SubscriberEmail) String() string {
	return e.value
}
