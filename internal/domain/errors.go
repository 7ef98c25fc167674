package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the service. Callers match them with errors.Is.
var (
	// ErrEmptyText rejects submissions that are empty after trimming.
	ErrEmptyText = errors.New("entry text must not be empty")

	// ErrNotFound reports a lookup or delete on an unknown entry id.
	ErrNotFound = errors.New("journal entry not found")

	// ErrInvalidDate reports a malformed calendar date parameter.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrUnknownLabel reports a label outside its closed vocabulary.
	// Stored entries always carry valid labels, so hitting this means
	// corrupt data or a misbehaving classifier adapter.
	ErrUnknownLabel = errors.New("label not in vocabulary")
)

// ClassificationError wraps a failure of the underlying classification
// model. Submissions that hit it are never persisted.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// NewClassificationError wraps err as a classification failure.
func NewClassificationError(err error) *ClassificationError {
	return &ClassificationError{Err: err}
}
