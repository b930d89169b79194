// Package syncache serializes access to cache.LRU engines for hosts that
// share a cache between goroutines.
//
// Locked guards one engine with one mutex and keeps strict global LRU order.
// Sharded routes keys to a power-of-two number of independently locked
// engines; it scales with cores but keeps LRU order only within a shard.
//
// In both, the Observer runs while the owning lock is held, so it must be
// quick and must not call back into the same cache. Sharded shares one
// Observer between shards, so it may be called from several goroutines at once.
package syncache
