package repositories

import "errors"

// Sentinel errors returned by every repository implementation so callers can
// branch with errors.Is instead of matching message strings.
var (
	// ErrNotFound means no record matched the given identifier or filter.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a write violated a unique constraint (username or
	// product name). The store enforces these constraints itself, so
	// read-then-write races still resolve to exactly one winner.
	ErrConflict = errors.New("record already exists")
)
