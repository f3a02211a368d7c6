package repositories

import "errors"

// Sentinel errors surfaced by every repository implementation. Callers
// test them with errors.Is; anything else is a storage failure.
var (
	// ErrNotFound covers both a missing row and an ownership mismatch.
	// The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("repositories: not found")

	// ErrConflict reports a storage-layer uniqueness violation.
	ErrConflict = errors.New("repositories: conflict")
)
