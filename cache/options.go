package cache

import "github.com/IvanBrykalov/lru/policy"

// EvictReason explains why an entry was evicted.
type EvictReason int

const (
	// EvictCapacity: the entry was the LRU tail when a Put overflowed Capacity.
	EvictCapacity EvictReason = iota
	// EvictPolicy: the placement policy proposed the entry as a candidate on admission.
	EvictPolicy
)

// String returns a stable lowercase name, suitable as a metric label.
func (r EvictReason) String() string {
	switch r {
	case EvictPolicy:
		return "policy"
	default:
		return "capacity"
	}
}

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int)
}

// Options configures an LRU. Zero values of the optional fields are safe;
// defaults are applied in New():
//   - nil Policy   => LRU
//   - nil Metrics  => NoopMetrics
//   - nil OnEvict  => evictions are silent
type Options[K comparable, V any] struct {
	// Capacity is the maximum number of resident entries. Must be > 0.
	Capacity int

	// OnEvict is notified of every eviction. Replacements and Remove are not evictions.
	OnEvict Observer[K, V]

	// Policy decides list placement; nil => LRU by default.
	Policy policy.Policy[K, V]

	Metrics Metrics
}
