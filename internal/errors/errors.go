// Package errors provides the domain error taxonomy shared by every module.
// Use cases return these sentinels (usually wrapped with context) and the HTTP
// layer maps them to status codes in one place.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data detected by the store (e.g., unique index).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the request is missing required fields or carries invalid values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates missing, invalid or expired credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller is authenticated but the role/ownership policy denies access.
	ErrForbidden = errors.New("forbidden")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Message returns the outermost context of a wrapped domain error, that is the
// text before the first ": ". It is what the HTTP layer shows to clients.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[:i]
	}
	return msg
}
