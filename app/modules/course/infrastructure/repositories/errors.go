package coursedb

import "errors"

// Sentinel errors for the repository layer. These indicate database
// state; the service layer decides whether they are domain failures.
var (
	// ErrNotFound indicates the requested course does not exist.
	ErrNotFound = errors.New("course not found")
)
