// Package pagetoken provides opaque pagination cursors.
package pagetoken

import (
	"errors"
	"fmt"
)

// Error is a page-token failure with a stable error code.
//
// Errors compare equal under errors.Is when their codes match, so callers can
// test against the sentinel values below regardless of details or cause.
type Error struct {
	Code    string // Error code (e.g., "PT-TOKN-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(format string, args ...any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: fmt.Sprintf(format, args...),
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsError checks if an error is an *Error with the given code.
// If code is empty, it only checks if the error is an *Error.
func IsError(err error, code string) bool {
	var pe *Error
	if errors.As(err, &pe) {
		if code == "" {
			return true
		}
		return pe.Code == code
	}
	return false
}

// ErrorCode extracts the error code from an error if it's an *Error.
func ErrorCode(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// ============================================================================
// Token Errors (TOKN)
// ============================================================================

var (
	// ErrMalformedToken indicates the token bytes are not a valid payload.
	ErrMalformedToken = NewError("PT-TOKN-4000", "malformed page token")

	// ErrUnsupportedValue indicates an entry value outside the supported types.
	ErrUnsupportedValue = NewError("PT-TOKN-4001", "unsupported value type")

	// ErrInvalidEntry indicates an entry that cannot be encoded (empty key, invalid UTF-8).
	ErrInvalidEntry = NewError("PT-TOKN-4002", "invalid page token entry")
)

// ============================================================================
// Cipher Errors (CRYP)
// ============================================================================

var (
	// ErrCipherFailure indicates the envelope could not be sealed or opened.
	ErrCipherFailure = NewError("PT-CRYP-4000", "page token cipher failure")
)

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrInvalidConfig indicates the manager configuration is unusable.
	ErrInvalidConfig = NewError("PT-CONF-4000", "invalid page token configuration")
)
