package cache

// Observer is notified when an entry leaves the cache because of eviction.
//
// OnEvict runs synchronously on the goroutine that called Put, exactly once per
// evicted entry, while the entry is still resident. It must not call back into
// the same cache; doing so is a precondition violation with undefined results.
type Observer[K comparable, V any] interface {
	OnEvict(key K, value V)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc[K comparable, V any] func(key K, value V)

// OnEvict calls f(key, value).
func (f ObserverFunc[K, V]) OnEvict(key K, value V) { f(key, value) }
