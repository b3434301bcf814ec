package contract

import "errors"

var (
	// ErrStaleVersion is returned when a versioned write finds a newer version in storage.
	ErrStaleVersion = errors.New("stale aggregate version")

	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("duplicate record")
)
