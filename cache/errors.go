package cache

import "errors"

var (
	// ErrInvalidConfiguration is returned by New when Options cannot produce a cache
	// (for example a non-positive Capacity).
	ErrInvalidConfiguration = errors.New("cache: invalid configuration")

	// ErrKeyNotFound is returned by Get when the key is not resident.
	ErrKeyNotFound = errors.New("cache: key not found")
)
