// Package apperr defines the error kinds shared by every layer. Kinds are
// attached with cockroachdb/errors marks so wrapping with context never hides
// them from errors.Is.
package apperr

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("resource not found")
	ErrConflict    = errors.New("conflict")
	ErrConsistency = errors.New("consistency violation")
	ErrStorage     = errors.New("storage failure")
)

// Kind names the category of err, or "" when it carries none.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrConsistency):
		return "consistency"
	case errors.Is(err, ErrStorage):
		return "storage"
	default:
		return ""
	}
}

func Validation(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrValidation)
}

func NotFound(resource string, id any) error {
	return errors.Mark(errors.Newf("%s %v not found", resource, id), ErrNotFound)
}

func Conflict(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConflict)
}

// Consistency marks err as a failed multi-record write that was rolled back.
func Consistency(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, msg), ErrConsistency)
}

// Storage wraps an infrastructure failure. Errors that already carry a kind
// keep it.
func Storage(err error, msg string) error {
	if err == nil {
		return nil
	}
	if Kind(err) != "" {
		return errors.Wrap(err, msg)
	}
	return errors.Mark(errors.Wrap(err, msg), ErrStorage)
}
