// Package shard implements the hash-sharded wrapper (spec component C6):
// N independent, independently-locked inner caches of any single policy,
// routed by key hash, so that concurrent access to keys on different shards
// never contends on the same mutex.
package shard

import (
	"golang.org/x/sync/errgroup"

	"github.com/go-polycache/polycache/cache"
	"github.com/go-polycache/polycache/internal/util"
)

// Options configures a Sharded cache.
type Options struct {
	// Shards is the number of inner caches to create. A value <= 0
	// substitutes util.ReasonableShardCount(), a CPU-parallelism-based
	// default.
	Shards int
}

// Sharded fans a key/value cache out across N independently-locked inner
// caches of a single policy, chosen by the caller's constructor. It
// implements cache.Cache[K,V] itself, so callers can swap a sharded cache
// in for any single policy without touching call sites.
type Sharded[K comparable, V any] struct {
	shards   []cache.Cache[K, V]
	counters []shardCounters
	hasher   util.Hasher[K]
}

// shardCounters holds one shard's hit/miss counters. Each is padded to its
// own cache line: concurrent Get calls on different shards increment
// different counters, and without padding those increments would still
// bounce the same cache line between cores (false sharing).
type shardCounters struct {
	hits   util.PaddedAtomicUint64
	misses util.PaddedAtomicUint64
}

// New builds a Sharded cache of the given total capacity, split as evenly
// as possible (ceil(capacity/shards) per shard) across opt.Shards inner
// caches, each built by calling newInner with that shard's capacity.
//
// newInner lets the caller choose which policy every shard runs — e.g.
// func(c int) cache.Cache[string, int] { return lru.New[string, int](c,
// lru.Options[string, int]{}) } — so Sharded stays generic over any of the
// module's five policies.
func New[K comparable, V any](capacity int, opt Options, newInner func(shardCapacity int) cache.Cache[K, V]) *Sharded[K, V] {
	n := opt.Shards
	if n <= 0 {
		n = util.ReasonableShardCount()
	}
	perShard := util.CeilDiv(capacity, n)
	shards := make([]cache.Cache[K, V], n)
	for i := range shards {
		shards[i] = newInner(perShard)
	}
	return &Sharded[K, V]{
		shards:   shards,
		counters: make([]shardCounters, n),
		hasher:   util.NewHasher[K](),
	}
}

// Put routes key to its shard and inserts or overwrites it there.
func (s *Sharded[K, V]) Put(key K, value V) {
	s.shardFor(key).Put(key, value)
}

// Get routes key to its shard and looks it up there.
func (s *Sharded[K, V]) Get(key K) (V, bool) {
	idx := s.indexFor(key)
	v, ok := s.shards[idx].Get(key)
	if ok {
		s.counters[idx].hits.Add(1)
	} else {
		s.counters[idx].misses.Add(1)
	}
	return v, ok
}

// GetOrZero returns key's value, or V's zero value on miss.
func (s *Sharded[K, V]) GetOrZero(key K) V {
	v, _ := s.Get(key)
	return v
}

// Stats sums the hit/miss counters across every shard. These are tracked
// independently of any per-policy Metrics hook, so they're available even
// when the inner caches were built with Options.Metrics left nil.
func (s *Sharded[K, V]) Stats() (hits, misses uint64) {
	for i := range s.counters {
		hits += s.counters[i].hits.Load()
		misses += s.counters[i].misses.Load()
	}
	return hits, misses
}

// Len returns the sum of every shard's resident entry count. Shards are
// read sequentially under their own independent locks, so the total is
// only a snapshot — a concurrent writer can make it stale the instant
// after it's computed.
func (s *Sharded[K, V]) Len() int {
	total := 0
	for _, sh := range s.shards {
		if counter, ok := sh.(interface{ Len() int }); ok {
			total += counter.Len()
		}
	}
	return total
}

// Purge discards every resident entry in every shard. Shards that
// implement cache.Resettable are purged concurrently (one goroutine per
// shard) since each shard's lock is independent and purging is typically
// the slow path worth parallelizing across many shards.
func (s *Sharded[K, V]) Purge() {
	var g errgroup.Group
	for _, sh := range s.shards {
		sh := sh
		if resettable, ok := sh.(cache.Resettable); ok {
			g.Go(func() error {
				resettable.Purge()
				return nil
			})
		}
	}
	_ = g.Wait()
}

// ShardCount returns the number of inner caches.
func (s *Sharded[K, V]) ShardCount() int { return len(s.shards) }

func (s *Sharded[K, V]) shardFor(key K) cache.Cache[K, V] {
	return s.shards[s.indexFor(key)]
}

func (s *Sharded[K, V]) indexFor(key K) int {
	return util.ShardIndex(s.hasher.Hash(key), len(s.shards))
}

var _ cache.Cache[int, int] = (*Sharded[int, int])(nil)
var _ cache.Resettable = (*Sharded[int, int])(nil)
