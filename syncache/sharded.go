package syncache

import (
	"fmt"
	"sync"

	"github.com/IvanBrykalov/lru/cache"
	"github.com/IvanBrykalov/lru/internal/util"
)

// Sharded partitions keys across independently locked engines.
//
// Capacity is split evenly (rounded up) so the total capacity may exceed
// the requested one by less than the shard count. Recency is tracked per shard:
// the entry evicted on overflow is the LRU entry of the key's shard, not of
// the whole cache.
type Sharded[K comparable, V any] struct {
	shards []*Locked[K, V]
	hash   func(K) uint64

	// sizes mirrors each shard's entry count for aggregated Size metrics.
	sizes []util.PaddedAtomicInt64
	// pubMu orders summing sizes with publishing the total, so the last
	// published value reflects every store before it.
	pubMu   sync.Mutex
	metrics cache.Metrics
}

// NewSharded builds a sharded cache routed by 64-bit FNV-1a of the key.
// shards <= 0 picks a count from GOMAXPROCS; any count is rounded up to a
// power of two. Shard count is lowered when it would leave a shard with no
// capacity. Key types FNV-1a cannot hash (structs without a String method,
// floats, interfaces) fail with cache.ErrInvalidConfiguration; use
// NewShardedFunc for those.
func NewSharded[K comparable, V any](opt cache.Options[K, V], shards int) (*Sharded[K, V], error) {
	if !util.Hashable[K]() {
		var k K
		return nil, fmt.Errorf("%w: no default hash for key type %T", cache.ErrInvalidConfiguration, k)
	}
	return NewShardedFunc(opt, shards, util.Fnv64a[K])
}

// NewShardedFunc is NewSharded with a caller-supplied key hash.
func NewShardedFunc[K comparable, V any](opt cache.Options[K, V], shards int, hash func(K) uint64) (*Sharded[K, V], error) {
	if hash == nil {
		return nil, fmt.Errorf("%w: nil hash func", cache.ErrInvalidConfiguration)
	}
	if opt.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be > 0, got %d", cache.ErrInvalidConfiguration, opt.Capacity)
	}
	n := util.ShardCount(shards)
	for n > 1 && n > opt.Capacity {
		n >>= 1
	}

	s := &Sharded[K, V]{
		shards:  make([]*Locked[K, V], n),
		hash:    hash,
		sizes:   make([]util.PaddedAtomicInt64, n),
		metrics: opt.Metrics,
	}
	if s.metrics == nil {
		s.metrics = cache.NoopMetrics{}
	}

	per := util.PerShard(opt.Capacity, n)
	for i := range s.shards {
		shardOpt := opt
		shardOpt.Capacity = per
		shardOpt.Metrics = shardMetrics[K, V]{Metrics: s.metrics, parent: s, idx: i}
		l, err := NewLocked(shardOpt)
		if err != nil {
			return nil, err
		}
		s.shards[i] = l
	}
	return s, nil
}

func (s *Sharded[K, V]) shard(k K) *Locked[K, V] {
	return s.shards[util.ShardIndex(s.hash(k), len(s.shards))]
}

// Put inserts or replaces k in its shard, evicting that shard's LRU entry on overflow.
func (s *Sharded[K, V]) Put(k K, v V) { s.shard(k).Put(k, v) }

// Get returns the value for k and promotes it within its shard.
func (s *Sharded[K, V]) Get(k K) (V, error) { return s.shard(k).Get(k) }

// Exists reports whether k is resident, without touching recency.
func (s *Sharded[K, V]) Exists(k K) bool { return s.shard(k).Exists(k) }

// Peek returns the value for k without touching recency.
func (s *Sharded[K, V]) Peek(k K) (V, bool) { return s.shard(k).Peek(k) }

// Remove deletes k without notifying the Observer.
func (s *Sharded[K, V]) Remove(k K) bool { return s.shard(k).Remove(k) }

// Shards returns the number of shards in use.
func (s *Sharded[K, V]) Shards() int { return len(s.shards) }

// Keys concatenates per-shard snapshots; order is MRU to LRU within each
// shard only.
func (s *Sharded[K, V]) Keys() []K {
	var keys []K
	for _, sh := range s.shards {
		keys = append(keys, sh.Keys()...)
	}
	return keys
}

// Size returns the total number of resident entries across all shards.
func (s *Sharded[K, V]) Size() int {
	total := 0
	for _, sh := range s.shards {
		total += sh.Size()
	}
	return total
}

// Capacity returns the sum of shard capacities.
func (s *Sharded[K, V]) Capacity() int {
	total := 0
	for _, sh := range s.shards {
		total += sh.Capacity()
	}
	return total
}

func (s *Sharded[K, V]) totalSize() int {
	var total int64
	for i := range s.sizes {
		total += s.sizes[i].Load()
	}
	return int(total)
}

// shardMetrics forwards a shard's signals to the shared Metrics, turning the
// per-shard Size into a cache-wide one.
type shardMetrics[K comparable, V any] struct {
	cache.Metrics
	parent *Sharded[K, V]
	idx    int
}

func (m shardMetrics[K, V]) Size(entries int) {
	m.parent.sizes[m.idx].Store(int64(entries))

	m.parent.pubMu.Lock()
	defer m.parent.pubMu.Unlock()
	m.Metrics.Size(m.parent.totalSize())
}

var _ cache.Cache[string, any] = (*Sharded[string, any])(nil)
