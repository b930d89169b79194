package syncache

import (
	"sync"

	"github.com/IvanBrykalov/lru/cache"
)

// Locked is a cache.LRU guarded by a single mutex. Every method takes the
// exclusive lock, Get included, because a hit reorders the list.
type Locked[K comparable, V any] struct {
	mu  sync.Mutex
	lru *cache.LRU[K, V]
}

// NewLocked builds an engine from opt and wraps it.
func NewLocked[K comparable, V any](opt cache.Options[K, V]) (*Locked[K, V], error) {
	c, err := cache.New(opt)
	if err != nil {
		return nil, err
	}
	return &Locked[K, V]{lru: c}, nil
}

// Put inserts or replaces k, evicting the LRU entry on overflow.
func (l *Locked[K, V]) Put(k K, v V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lru.Put(k, v)
}

// Get returns the value for k and marks it most recently used.
func (l *Locked[K, V]) Get(k K) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Get(k)
}

// Exists reports whether k is resident, without touching recency.
func (l *Locked[K, V]) Exists(k K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Exists(k)
}

// Peek returns the value for k without touching recency.
func (l *Locked[K, V]) Peek(k K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Peek(k)
}

// Remove deletes k without notifying the Observer.
func (l *Locked[K, V]) Remove(k K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Remove(k)
}

// Keys returns a snapshot of the keys from MRU to LRU.
func (l *Locked[K, V]) Keys() []K {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Keys()
}

// Size returns the number of resident entries.
func (l *Locked[K, V]) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Size()
}

// Capacity is immutable and needs no lock.
func (l *Locked[K, V]) Capacity() int { return l.lru.Capacity() }

var _ cache.Cache[string, any] = (*Locked[string, any])(nil)
