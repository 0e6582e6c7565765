package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures reported by the GitHub API boundary
type ErrorKind string

const (
	KindNotFound ErrorKind = "not_found"
	KindConflict ErrorKind = "conflict"
	KindOther    ErrorKind = "other"
)

// ErrRepositoryMissing is returned when the destination repository does not
// exist and creating it was not requested
var ErrRepositoryMissing = errors.New("repository does not exist")

// APIError wraps a GitHub API failure with its classified kind
type APIError struct {
	Op         string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

// Error describes the failed operation
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s failed (%s, HTTP %d): %v", e.Op, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s failed (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause
func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf returns the classified kind of err, or KindOther
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindOther
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// InvalidInputError describes configuration or argument validation failures
type InvalidInputError struct {
	Field   string
	Message string
}

// Error describes the invalid input
func (e InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
