// Package errors defines the error classes shared across the service.
// Components signal intent by wrapping one of the class sentinels, and the
// HTTP layer maps each class to a status code without inspecting messages.
package errors

import (
	"errors"
	"fmt"
)

// Error classes. Every error crossing a layer boundary wraps exactly one of
// these.
var (
	// ErrNotFound marks lookups for records that do not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks writes that collide with existing data.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput marks requests the caller can fix.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration marks process misconfiguration, such as a missing or
	// malformed secret. Surfaced as a server-side fault, never as a client
	// input error.
	ErrConfiguration = errors.New("configuration error")

	// ErrInternal marks unexpected failures with no more specific class.
	ErrInternal = errors.New("internal error")
)

// New returns an error with the given message. Kept here so callers import
// a single errors package.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message, preserving the chain for Is and As.
// A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether err's chain contains target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As assigns the first error in err's chain matching target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
