// Package domainerrors defines the error taxonomy shared by handlers and
// services. Services return these; the HTTP layer translates them into
// response envelopes without leaking internal detail.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code identifies the kind of failure.
type Code string

const (
	// CodeValidation marks client-caused input failures. The error carries
	// per-field violations for the response body.
	CodeValidation Code = "validation"
	// CodeOriginForbidden marks a CORS rejection before any handler runs.
	CodeOriginForbidden Code = "origin_forbidden"
	// CodeGeneration marks a badge rendering failure.
	CodeGeneration Code = "generation"
	// CodeDispatch marks an email delivery failure.
	CodeDispatch Code = "dispatch"
	// CodeSink marks a contact submission sink failure.
	CodeSink Code = "sink"
	// CodeInternal is the catch-all for everything else.
	CodeInternal Code = "internal"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a tagged domain error. Violations is non-nil only for
// CodeValidation.
type Error struct {
	Code       Code
	Message    string
	Violations []Violation
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a domain error with a caller-facing message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds a domain error around an underlying cause. The cause is kept
// for server-side logging; callers only ever see Message.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// NewValidation builds a CodeValidation error from field violations.
func NewValidation(violations []Violation) *Error {
	return &Error{
		Code:       CodeValidation,
		Message:    "validation failed",
		Violations: violations,
	}
}

// Is reports whether err is a domain error with the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// From extracts the domain error from err, or nil when err is not one.
func From(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return nil
}

// ToHTTPStatus maps an error code to its response status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeOriginForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
