package outputcache

import "errors"

var (
	// ErrNotFound is returned when a key is missing or expired.
	ErrNotFound = errors.New("outputcache: entry not found")

	// ErrClosed is returned when a closed store is used.
	ErrClosed = errors.New("outputcache: store closed")
)
