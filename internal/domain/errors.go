package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by services and transports.
var (
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("word already exists")
	ErrNotFound        = errors.New("word not found")
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
	ErrNoMatch         = errors.New("no words in category")
	ErrMissingIndex    = errors.New("correct index is missing")
	ErrInvalidAnswer   = errors.New("invalid answer")
	ErrEmptyAnswer     = errors.New("answer is empty")

	// ErrPersistence means the in-memory change was applied but
	// writing it to disk failed.
	ErrPersistence = errors.New("failed to persist vocabulary")
)

// FieldError describes a validation problem with one input field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists field-level validation problems
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}
