package content

import "errors"

var (
	// ErrEntryNotFound indicates no entry matches the requested category/id.
	ErrEntryNotFound = errors.New("content entry not found")
	// ErrNoContent indicates the content directory is missing or holds no
	// loadable entries. The service must not start serving in that state.
	ErrNoContent = errors.New("content collection is missing or empty")
)
