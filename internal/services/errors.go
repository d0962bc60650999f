package services

import "errors"

var (
	// ErrNotFound marks a missing or not-owned record. Handlers translate it
	// to a 404, after which the client falls back to a list view.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation, in practice a generated
	// process_key colliding with an existing row.
	ErrConflict = errors.New("conflict")

	// ErrPartialFailure marks a two-step external write whose first step
	// completed and whose second step failed with no possible compensation,
	// leaving storage and metadata inconsistent.
	ErrPartialFailure = errors.New("partial failure")

	// ErrValidation marks rejected input.
	ErrValidation = errors.New("validation failed")
)
