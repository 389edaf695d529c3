// Package error defines domain-specific errors for the Trackify ledger.
package error

import "errors"

// Outcome kinds shared by every area. Area errors wrap one of these so that
// callers can test the kind with errors.Is.
var (
	// ErrNotFoundOrNotOwned is returned when a record is absent or outside the caller's scope.
	ErrNotFoundOrNotOwned = errors.New("not found or not owned")

	// ErrInvalidReference is returned when a referenced record is malformed, missing or not owned.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrConflict is returned when a write collides with a unique key.
	ErrConflict = errors.New("conflict")

	// ErrValidationFailure is returned when an input is missing or out of range.
	ErrValidationFailure = errors.New("validation failure")

	// ErrUnauthorized is returned when the caller has no valid identity.
	ErrUnauthorized = errors.New("unauthorized")
)
