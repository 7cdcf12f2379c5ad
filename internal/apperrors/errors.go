// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Domain error kinds for the moderation workflows. Handlers map these onto
// HTTP statuses; services never return bare strings for caller-visible
// failures.

// ValidationError reports the first unmet precondition by field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed on %s", e.Field)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidTransitionError reports a status change that is not legal from the
// entity's current status.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition from %s to %s", e.Entity, e.From, e.To)
}

func NewInvalidTransition(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

// NotFoundError reports a missing entity.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ConflictError reports that a concurrent writer changed the row first. The
// caller refetches and retries at the UI layer; the server never retries.
type ConflictError struct {
	Resource string
}

func (e *ConflictError) Error() string {
	return "concurrent update on " + e.Resource + ", refetch and retry"
}

func NewConflict(resource string) *ConflictError {
	return &ConflictError{Resource: resource}
}

var (
	// ErrUnauthorized is returned for bad credentials or an invalid token.
	ErrUnauthorized = errors.New("invalid credentials")
	// ErrForbidden is returned when the principal is authenticated but may not
	// act on the entity, or the account is not active.
	ErrForbidden = errors.New("access denied")
)

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
