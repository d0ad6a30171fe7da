package repository

import "errors"

// Store error taxonomy. Implementations translate engine-level errors
// into these sentinels so callers can branch with errors.Is without
// knowing which storage driver is underneath.
var (
	// ErrNotFound is returned when a merge-update targets an id with no
	// existing record. Plain lookups do not use it; absence is a valid
	// result there and is represented by a nil record.
	ErrNotFound = errors.New("store: record not found")

	// ErrDuplicateKey is returned when an insert violates the primary
	// key or a unique index (the users email index).
	ErrDuplicateKey = errors.New("store: duplicate key")

	// ErrStoreUnavailable is returned when the backing store cannot be
	// opened at all.
	ErrStoreUnavailable = errors.New("store: unavailable")

	// ErrTransactionFailed wraps any other engine-level failure. It is
	// terminal for the call; retry policy belongs to the caller.
	ErrTransactionFailed = errors.New("store: transaction failed")
)

func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsDuplicateKey(err error) bool { return errors.Is(err, ErrDuplicateKey) }
