/*
errors.go - Centralized error taxonomy for the HR records service

PURPOSE:
  All error categories in one place for consistency and discoverability.
  Every failure the domain can produce wraps one of the sentinels below,
  so callers classify with errors.Is and never inspect driver errors.

TAXONOMY:
  ErrInvalidFormat  Malformed input (bad date string, bad phone shape)
  ErrInvalidValue   Well-formed but outside the allowed domain
  ErrNotFound       Referenced entity absent
  ErrConflict       Uniqueness violation
  ErrUnavailable    Storage not configured or unreachable
  ErrInternal       Unexpected store failure

USAGE:
  Store implementations translate their native duplicate-key signal into
  ErrConflict. The application-level existence checks are advisory only;
  the store constraint is the authoritative defense, and it must surface
  through the same sentinel.

SEE ALSO:
  - validate.go: Produces InvalidFormat/InvalidValue failures
  - store/mongo: Duplicate-key translation
  - api/handlers.go: Taxonomy to HTTP status mapping
*/
package hrms

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidFormat is returned for malformed input.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidValue is returned for well-formed input outside the
	// allowed domain (unknown department, future date).
	ErrInvalidValue = errors.New("invalid value")

	// ErrNotFound is returned when a referenced entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on a uniqueness violation. Store
	// implementations map their duplicate-key signal to this.
	ErrConflict = errors.New("conflict")

	// ErrUnavailable is returned when no storage handle is configured or
	// the store is unreachable.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrInternal wraps unexpected store failures, e.g. during
	// aggregation.
	ErrInternal = errors.New("internal error")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports a field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	kind    error // ErrInvalidFormat or ErrInvalidValue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.kind }

func invalidFormat(field, message string) error {
	return &ValidationError{Field: field, Message: message, kind: ErrInvalidFormat}
}

func invalidValue(field, message string) error {
	return &ValidationError{Field: field, Message: message, kind: ErrInvalidValue}
}

// ConflictError reports which field collided with an existing record.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
func (e *ConflictError) Unwrap() error { return ErrConflict }

// NotFoundError reports which entity was missing.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsInvalid returns true for either validation category.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidFormat) || errors.Is(err, ErrInvalidValue)
}

func IsNotFound(err error) bool    { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool    { return errors.Is(err, ErrConflict) }
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }

// internalf wraps a store failure as ErrInternal with a descriptive
// message, so raw driver errors never reach callers.
func internalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
