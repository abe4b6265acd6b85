package entity

import "errors"

// Sentinel errors shared across usecases and handlers. Handlers map these
// to HTTP status codes with errors.Is; repositories and usecases wrap them
// with context using fmt.Errorf("...: %w", err).
var (
	// ErrUnauthenticated covers a missing credential, a bad or expired
	// token, and a token whose subject no longer exists. Callers see one
	// uniform class; the wrapped cause stays available for diagnostics.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when an authenticated caller fails a role
	// or ownership check.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when a referenced blog, comment or user
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for malformed or out-of-bounds input.
	ErrValidation = errors.New("validation error")

	// ErrDuplicate is returned when a unique constraint (username, email)
	// would be violated.
	ErrDuplicate = errors.New("already exists")
)
