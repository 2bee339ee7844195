package model

import "errors"

// Domain error kinds. Store operations wrap these with context so
// callers can match with errors.Is and map them to transport errors.
var (
	// ErrValidation marks malformed or missing required input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced entity that is absent or in the
	// wrong state for the requested transition.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a transition that violates a state invariant.
	ErrConflict = errors.New("conflict")
)
