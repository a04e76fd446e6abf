package domainerrors

import (
	"errors"
	"fmt"
)

// Code is a stable, transport-agnostic classification for domain errors.
// Handlers map codes to HTTP statuses; services and tests branch on them.
type Code string

const (
	CodeBadRequest         Code = "bad_request"
	CodeValidation         Code = "validation"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeInvariantViolation Code = "invariant_violation"
	CodeUnavailable        Code = "unavailable"
	CodeInternal           Code = "internal"
)

// Error is the classified error surfaced by services and stores. Reason is a
// machine-readable rejection code distinct from the human Message; Component
// names the originating package for infrastructure faults.
type Error struct {
	Code      Code
	Reason    string
	Component string
	Message   string
	cause     error
}

func (e *Error) Error() string {
	switch {
	case e.Component != "" && e.cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Component, e.Message, e.cause)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	case e.Component != "":
		return fmt.Sprintf("%s: %s", e.Component, e.Message)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches another classified error by code and message, so call sites can
// compare against freshly built values with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New builds a classified error with no cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds a classified error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a classification to an underlying error, preserving it as the
// cause for errors.Is/As chains.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// WithReason sets the machine-readable rejection reason.
func (e *Error) WithReason(reason string) *Error {
	e.Reason = reason
	return e
}

// WithComponent records the qualified name of the originating component.
func (e *Error) WithComponent(component string) *Error {
	e.Component = component
	return e
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is an alias for HasCode kept for call-site readability in tests.
func Is(err error, code Code) bool { return HasCode(err, code) }

// ReasonOf extracts the machine-readable reason from a classified error, or
// "" when err carries none.
func ReasonOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Reason
	}
	return ""
}
