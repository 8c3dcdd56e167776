package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the listing search system.
var (
	// ErrInvalidInput indicates structurally malformed input: a record missing a
	// required field, a field of the wrong shape, or an unparseable request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrListingNotFound indicates that no listing has the requested id.
	ErrListingNotFound = errors.New("listing not found")

	// ErrSourceUnavailable indicates that the listing source could not supply records.
	ErrSourceUnavailable = errors.New("listing source unavailable")
)

// SourceError wraps a failure of a ListingSource with the source's name.
type SourceError struct {
	Source string
	Err    error
}

// NewSourceError creates a SourceError.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is makes every SourceError match ErrSourceUnavailable.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// ValidationError reports a single invalid field. It matches ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is(err, ErrInvalidInput) succeed.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
