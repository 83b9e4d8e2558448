// Package domain holds the validated value objects of the subscription
// pipeline. Construct them at trust boundaries; once built they are valid by
// construction and downstream code never re-checks.
package domain

import (
	"strings"

	"github.com/rivo/uniseg"

	dErrors "newsletter/pkg/domain-errors"
)

// maxNameGraphemes bounds the display name in user-perceived characters, not
// bytes, so multi-byte scripts get the full budget.
const maxNameGraphemes = 256

// forbiddenNameRunes would let a subscriber name break out of HTML or SQL
// tooling downstream; they are rejected outright rather than escaped.
const forbiddenNameRunes = `/()"<>\{}`

// SubscriberName is a display name that passed validation.
//
// Invariant: non-empty after trimming, at most 256 grapheme clusters, and
// free of the forbidden characters.
type SubscriberName struct {
	value string
}

// ParseSubscriberName constructs a SubscriberName from external input.
//
// Errors: CodeInvalidInput when the raw string is empty or whitespace-only,
// exceeds the grapheme budget, or contains a forbidden character.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	if strings.TrimSpace(raw) == "" {
		return SubscriberName{}, dErrors.New(dErrors.CodeInvalidInput, "subscriber name cannot be empty")
	}
	if uniseg.GraphemeClusterCount(raw) > maxNameGraphemes {
		return SubscriberName{}, dErrors.New(dErrors.CodeInvalidInput, "subscriber name exceeds 256 characters")
	}
	if strings.ContainsAny(raw, forbiddenNameRunes) {
		return SubscriberName{}, dErrors.New(dErrors.CodeInvalidInput, "subscriber name contains forbidden characters")
	}
	return SubscriberName{value: raw}, nil
}

// String exposes the underlying name for queries and email rendering.
func (n SubscriberName) String() string {
	return n.value
}
