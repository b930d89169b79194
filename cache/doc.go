// Package cache provides a generic, fixed-capacity least-recently-used cache
// with O(1) Put/Get/Exists and a synchronous eviction observer.
//
// Design
//
//   - Storage: a map[K]*node index plus an intrusive MRU↔LRU doubly linked
//     list. Both are updated together on every operation, so a key is indexed
//     iff its node is linked. All point operations are O(1) expected.
//
//   - Recency: Put and Get place the entry at MRU. Exists, Peek and Keys never
//     change order. The tail of the list is the unique eviction candidate.
//
//   - Eviction: when a Put takes the cache above Capacity, the LRU entry is
//     evicted. Options.OnEvict is called with its key and value first, then
//     the entry is dropped. Replacing an existing key and Remove are not
//     evictions and are never reported to the Observer.
//
//   - Policies: list placement is delegated to the policy package. LRU is
//     the default.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     By default NoopMetrics is used; see metrics/prom for a Prometheus adapter.
//
//   - Errors: New fails with ErrInvalidConfiguration when Capacity <= 0. Get
//     fails with ErrKeyNotFound for a missing key and leaves the cache untouched.
//
// Basic usage
//
//	c, err := cache.New(cache.Options[string, []byte]{Capacity: 1024})
//	if err != nil {
//	    return err
//	}
//	c.Put("a", []byte("1"))
//	v, err := c.Get("a")
//	if errors.Is(err, cache.ErrKeyNotFound) {
//	    // miss
//	}
//
// Releasing resources on eviction
//
//	c, _ := cache.New(cache.Options[string, *os.File]{
//	    Capacity: 64,
//	    OnEvict: cache.ObserverFunc[string, *os.File](func(_ string, f *os.File) {
//	        _ = f.Close()
//	    }),
//	})
//
// Thread-safety
//
// An LRU is not safe for concurrent use, and Get mutates recency order, so
// even readers must be serialized. Wrap it with syncache.NewLocked or
// syncache.NewSharded when several goroutines share a cache. The Observer
// runs on the caller's goroutine and must not re-enter the cache.
package cache
