package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		tok := Generate()
		require.Len(t, tok, Length)
		for _, c := range tok {
			isDigit := c >= '0' && c <= '9'
			isUpper := c >= 'A' && c <= 'Z'
			isLower := c >= 'a' && c <= 'z'
			assert.True(t, isDigit || isUpper || isLower, "unexpected character %q in %s", c, tok)
		}
	}
}

func TestGenerateDoesNotRepeat(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		tok := Generate()
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %s", tok)
		seen[tok] = struct{}{}
	}
}
