package cache

// Cache is the method set of the LRU engine.
//
// *LRU implements it without any locking; the syncache package provides
// implementations safe for concurrent use.
type Cache[K comparable, V any] interface {
	// Put inserts or replaces k→v at MRU. An overflowing Put evicts exactly
	// one entry (the LRU one) and notifies the Observer.
	Put(k K, v V)

	// Get returns the value for k and promotes it to MRU.
	// A missing key yields an error matching ErrKeyNotFound.
	Get(k K) (V, error)

	// Exists reports whether k is resident, without touching recency.
	Exists(k K) bool

	// Peek returns the value for k without promoting it.
	Peek(k K) (V, bool)

	// Remove deletes k. Removal is not an eviction: the Observer is not called.
	Remove(k K) bool

	// Keys returns resident keys ordered from MRU to LRU.
	Keys() []K

	// Size returns the number of resident entries.
	Size() int

	// Capacity returns the entry limit fixed at construction.
	Capacity() int
}
