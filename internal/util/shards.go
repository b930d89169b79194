package util

import "runtime"

// MaxShards bounds automatic and explicit shard counts.
const MaxShards = 256

// ReasonableShardCount picks a default shard count from CPU parallelism:
// nextPow2(2*GOMAXPROCS), clamped to [1..MaxShards].
func ReasonableShardCount() int {
	return ShardCount(2 * runtime.GOMAXPROCS(0))
}

// ShardCount normalizes a requested shard count: non-positive values become
// ReasonableShardCount(), others are rounded up to a power of two and
// clamped to MaxShards.
func ShardCount(requested int) int {
	if requested <= 0 {
		return ReasonableShardCount()
	}
	n := int(NextPow2(uint64(requested)))
	if n > MaxShards {
		n = MaxShards
	}
	return n
}

// ShardIndex maps a 64-bit hash to a shard index.
// Uses a mask for power-of-two counts and modulo otherwise.
func ShardIndex(hash uint64, shards int) int {
	if shards <= 1 {
		return 0
	}
	if IsPowerOfTwo(uint64(shards)) {
		return int(hash & uint64(shards-1))
	}
	return int(hash % uint64(shards))
}

// PerShard splits total across shards, rounding up so the sum never falls
// short of total.
func PerShard(total, shards int) int {
	if shards <= 1 {
		return total
	}
	return (total + shards - 1) / shards
}
