package catalog

import "errors"

var (
	// ErrNotFound marks lookups for entry or category ids the document does
	// not contain.
	ErrNotFound = errors.New("not found")

	// ErrLocked is returned when another launchpad process holds the catalog
	// write lock. Exactly one writer is permitted system-wide.
	ErrLocked = errors.New("catalog is locked by another launchpad process")
)
