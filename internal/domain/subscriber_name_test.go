package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "newsletter/pkg/domain-errors"
)

func TestParseSubscriberNameValid(t *testing.T) {
	for _, raw := range []string{
		"Jake Snow",
		"Ursula K. Le Guin",
		"李小龙",
		strings.Repeat("ė", 256), // exactly at the grapheme budget
	} {
		name, err := ParseSubscriberName(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, name.String())
	}
}

func TestParseSubscriberNameRejectsEmptyAndWhitespace(t *testing.T) {
	for _, raw := range []string{"", " ", "\t\n  "} {
		_, err := ParseSubscriberName(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, dErrors.Is(err, dErrors.CodeInvalidInput))
	}
}

func TestParseSubscriberNameGraphemeBudget(t *testing.T) {
	// 257 grapheme clusters but 514 bytes: the limit must count clusters.
	_, err := ParseSubscriberName(strings.Repeat("ė", 257))
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeInvalidInput))
}

func TestParseSubscriberNameForbiddenCharacters(t *testing.T) {
	for _, c := range []string{"/", "(", ")", `"`, "<", ">", `\`, "{", "}"} {
		_, err := ParseSubscriberName("name" + c)
		require.Error(t, err, "character %q", c)
		assert.True(t, dErrors.Is(err, dErrors.CodeInvalidInput))
	}
}
