// internal/repository/errors.go
package repository

import "errors"

// Error taxonomy shared by both drivers. Drivers map their native errors to
// these sentinels at the boundary; callers match with errors.Is.
var (
	// ErrNotFound: the identifier has no matching record.
	ErrNotFound = errors.New("record not found")

	// ErrValidation: malformed filter, pagination, or payload. Raised
	// before any driver I/O.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable: the active driver could not complete an I/O
	// operation. Never retried against the other driver mid-call.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrDuplicateEmail: a unique-email violation raced past the
	// read-then-write path in SubscribeNewsletter. The newsletter service
	// resolves it by re-reading the row, honoring the natural-key
	// contract of subscribe-as-no-op for an existing email.
	ErrDuplicateEmail = errors.New("email already subscribed")
)
