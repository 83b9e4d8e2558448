package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternal, "should vanish"))
}

func TestIsMatchesOutermostCode(t *testing.T) {
	inner := New(CodeNotFound, "token not found")
	outer := Wrap(inner, CodeInternal, "confirm subscription")

	assert.True(t, Is(outer, CodeInternal))
	assert.False(t, Is(outer, CodeNotFound))
	assert.True(t, Is(inner, CodeNotFound))
	assert.False(t, Is(errors.New("plain"), CodeInternal))
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("driver: bad connection")))
	assert.Equal(t, CodeValidation, CodeOf(New(CodeValidation, "bad name")))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeInvalidInput: http.StatusBadRequest,
		CodeValidation:   http.StatusBadRequest,
		CodeNotFound:     http.StatusNotFound,
		CodeConflict:     http.StatusConflict,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeForbidden:    http.StatusForbidden,
		CodeUnavailable:  http.StatusServiceUnavailable,
		CodeInternal:     http.StatusInternalServerError,
		Code("mystery"):  http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), string(code))
	}
}

func TestChainWalksCauses(t *testing.T) {
	leaf := errors.New("pq: connection refused")
	mid := fmt.Errorf("insert subscriber: %w", leaf)
	top := Wrap(mid, CodeInternal, "failed to register subscriber")

	got := Chain(top)
	assert.Equal(t, "[internal] failed to register subscriber -> insert subscriber: pq: connection refused", got)
	assert.Empty(t, Chain(nil))
}
