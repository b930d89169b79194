package cache

import (
	"fmt"

	"github.com/IvanBrykalov/lru/policy"
	"github.com/IvanBrykalov/lru/policy/lru"
)

// LRU is a fixed-capacity least-recently-used cache.
//
// An LRU is not safe for concurrent use; callers serialize access themselves
// or use the syncache package.
type LRU[K comparable, V any] struct {
	m    map[K]*node[K, V]
	list recencyList[K, V]
	cap  int

	pol policy.ListPolicy[K, V]
	opt Options[K, V]
}

// New constructs an LRU with the provided Options.
// It returns ErrInvalidConfiguration if opt.Capacity is not positive.
func New[K comparable, V any](opt Options[K, V]) (*LRU[K, V], error) {
	if opt.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be > 0, got %d", ErrInvalidConfiguration, opt.Capacity)
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Policy == nil {
		opt.Policy = lru.New[K, V]()
	}

	c := &LRU[K, V]{
		m:   make(map[K]*node[K, V], opt.Capacity),
		cap: opt.Capacity,
		opt: opt,
	}
	c.pol = opt.Policy.New(listHooks[K, V]{l: &c.list})
	return c, nil
}

// Put inserts or replaces k→v as the most recently used entry.
// If the cache overflows, the least recently used entry is evicted.
func (c *LRU[K, V]) Put(k K, v V) {
	// A replaced entry is dropped outright; it is not an eviction.
	if old, ok := c.m[k]; ok {
		c.unlink(old)
	}

	n := &node[K, V]{key: k, val: v}
	c.m[k] = n
	if ev := c.pol.OnAdd(n); ev != nil {
		c.evict(ev.(*node[K, V]), EvictPolicy)
	}

	// Each Put adds at most one key, so this runs at most once for LRU.
	for c.list.len > c.cap {
		tail := c.list.back()
		if tail == nil {
			break
		}
		c.evict(tail, EvictCapacity)
	}
	c.opt.Metrics.Size(c.list.len)
}

// Get returns the value for k and promotes it to MRU.
// A missing key returns the zero value and an error wrapping ErrKeyNotFound.
func (c *LRU[K, V]) Get(k K) (V, error) {
	n, ok := c.m[k]
	if !ok {
		c.opt.Metrics.Miss()
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	c.pol.OnGet(n)
	c.opt.Metrics.Hit()
	return n.val, nil
}

// Exists reports whether k is resident. It does not change recency.
func (c *LRU[K, V]) Exists(k K) bool {
	_, ok := c.m[k]
	return ok
}

// Peek returns the value for k without promoting it.
func (c *LRU[K, V]) Peek(k K) (V, bool) {
	if n, ok := c.m[k]; ok {
		return n.val, true
	}
	var zero V
	return zero, false
}

// Remove deletes k if present and reports whether it was resident.
// The Observer is not notified.
func (c *LRU[K, V]) Remove(k K) bool {
	n, ok := c.m[k]
	if !ok {
		return false
	}
	c.unlink(n)
	c.opt.Metrics.Size(c.list.len)
	return true
}

// Keys returns the resident keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, c.list.len)
	for n := c.list.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Size returns the number of resident entries.
func (c *LRU[K, V]) Size() int { return c.list.len }

// Capacity returns the entry limit.
func (c *LRU[K, V]) Capacity() int { return c.cap }

// unlink drops n from both the list and the index.
func (c *LRU[K, V]) unlink(n *node[K, V]) {
	c.pol.OnRemove(n)
	c.list.remove(n)
	delete(c.m, n.key)
}

// evict notifies the Observer while n is still resident, then unlinks it.
func (c *LRU[K, V]) evict(n *node[K, V], reason EvictReason) {
	if ob := c.opt.OnEvict; ob != nil {
		ob.OnEvict(n.key, n.val)
	}
	c.unlink(n)
	c.opt.Metrics.Evict(reason)
}

var _ Cache[string, any] = (*LRU[string, any])(nil)
