// internal/app/system/apperror/apperror.go
//
// Package apperror defines the error taxonomy shared by the lifecycle
// service and the HTTP layer. Stores return their own sentinel errors;
// services translate those into one of these kinds, and httpjson maps
// the kinds onto status codes. Handlers never inspect store errors
// directly.
package apperror

import (
	"errors"
	"fmt"
)

// Error kinds. Exactly one of these is reachable via errors.Is from any
// error a service returns.
var (
	// ErrValidation marks malformed or rule-breaking input.
	ErrValidation = errors.New("validation error")

	// ErrConflict marks state conflicts: duplicate memberships, a mentor
	// already assigned, a request already decided.
	ErrConflict = errors.New("conflict")

	// ErrForbidden marks callers acting outside their role or ownership.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks missing records, including records hidden from
	// the caller by visibility rules.
	ErrNotFound = errors.New("not found")

	// ErrCollaborator marks failures in downstream systems (file
	// storage, mail) that the caller cannot correct.
	ErrCollaborator = errors.New("collaborator failure")
)

// Error couples a kind with a caller-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// New builds an *Error of the given kind.
func New(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation builds a validation-kind error.
func Validation(format string, args ...any) error {
	return New(ErrValidation, format, args...)
}

// Conflict builds a conflict-kind error.
func Conflict(format string, args ...any) error {
	return New(ErrConflict, format, args...)
}

// Forbidden builds a forbidden-kind error.
func Forbidden(format string, args ...any) error {
	return New(ErrForbidden, format, args...)
}

// NotFound builds a not-found-kind error.
func NotFound(format string, args ...any) error {
	return New(ErrNotFound, format, args...)
}

// Collaborator wraps a downstream failure. The underlying error is kept
// for logs; Message is what callers see.
func Collaborator(err error, message string) error {
	return &Error{Kind: fmt.Errorf("%w: %w", ErrCollaborator, err), Message: message}
}

// MessageFor returns the caller-facing message for err, or a generic
// fallback when err is not an *Error.
func MessageFor(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}
