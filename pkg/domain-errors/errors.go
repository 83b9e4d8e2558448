// Package domainerrors defines the code-tagged error vocabulary shared by
// services and transports. Services wrap low-level failures with a code and
// operation context; transports map codes to HTTP statuses without ever
// exposing the underlying cause to clients.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code classifies an error for transport mapping and logging.
type Code string

const (
	CodeInvalidInput Code = "invalid_input"
	CodeValidation   Code = "validation"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeUnavailable  Code = "unavailable"
	CodeInternal     Code = "internal"
)

// Error is a code-tagged error that optionally wraps an underlying cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New constructs a domain error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and operation context to an underlying error.
// A nil err yields nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// Is reports whether err carries the given code. The outermost domain error
// in the chain wins, matching how services re-tag store failures.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// HasCode is an alias of Is kept for readability at call sites that check
// several codes in sequence.
func HasCode(err error, code Code) bool {
	return Is(err, code)
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that never passed through a service boundary.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to the status served to clients. Unknown codes
// map to 500 so forgetting a case fails closed.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Chain renders the full cause chain for server-side logs, outermost first:
//
//	failed to store token: insert token: pq: connection refused
//
// Clients only ever see the status code; this string stays in logs.
func Chain(err error) string {
	if err == nil {
		return ""
	}
	var parts []string
	for err != nil {
		if de, ok := err.(*Error); ok {
			parts = append(parts, fmt.Sprintf("[%s] %s", de.Code, de.Message))
		} else {
			// Plain errors already render their own suffix chain.
			parts = append(parts, err.Error())
			break
		}
		err = errors.Unwrap(err)
	}
	return strings.Join(parts, " -> ")
}
