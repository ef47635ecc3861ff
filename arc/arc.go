// Package arc implements the Adaptive Replacement Cache (spec component
// C5): a cache that balances capacity between a recency-ordered half and a
// frequency-ordered half, shifting capacity from one to the other in
// response to ghost-list hits so that it adapts to the workload's actual
// recency/frequency mix without any tuning parameter.
//
// Structure, grounded on original_source/src/ARC/{CacheARC,
// CacheARCLRUPart,CacheARCLFUPart}.h: lruHalf and lfuHalf are each a
// resident set sized at the current per-half capacity plus a same-sized
// ghost list of evicted keys. Cache orchestrates both halves under one
// sync.Mutex; per the module's no-nested-locking rule, each half is an
// unlocked struct rather than its own lock-bearing Cache, so Cache is the
// only lock in play at any point.
package arc

import (
	"sync"

	"github.com/go-polycache/polycache/cache"
)

// Options configures a Cache. The zero value is valid: nil Metrics
// defaults to cache.NoopMetrics, and a non-positive TransformThreshold
// defaults to 2.
type Options[K comparable, V any] struct {
	Metrics cache.Metrics

	// TransformThreshold is the number of Get hits a key needs while
	// resident in the recency half before it is copied into the
	// frequency half (Put does not count). Defaults to 2.
	TransformThreshold int
}

// Cache is a thread-safe ARC cache of the given total capacity, split
// adaptively between its recency half and frequency half.
type Cache[K comparable, V any] struct {
	mu  sync.Mutex
	lru *lruHalf[K, V]
	lfu *lfuHalf[K, V]
	opt Options[K, V]
}

// New constructs an ARC cache. Both halves start at full capacity (each
// can grow to claim all of it as ghost hits favor one over the other).
func New[K comparable, V any](capacity int, opt Options[K, V]) *Cache[K, V] {
	if opt.Metrics == nil {
		opt.Metrics = cache.NoopMetrics{}
	}
	if opt.TransformThreshold <= 0 {
		opt.TransformThreshold = 2
	}
	return &Cache[K, V]{
		lru: newLRUHalf[K, V](capacity, opt.TransformThreshold),
		lfu: newLFUHalf[K, V](capacity),
		opt: opt,
	}
}

// Get looks up key. The recency half is tried first; a hit there that has
// crossed the transform threshold is also copied into the frequency half.
// On a recency miss the frequency half is tried. Either half is checked
// against the other half's ghost list first, and a ghost hit shifts one
// unit of capacity from the half that missed (ghost-lessened) to the half
// that is thriving — ARC's core adaptation rule.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.checkGhost(key)

	if v, shouldTransform, ok := c.lru.get(key); ok {
		if shouldTransform {
			if c.lfu.put(key, v) {
				c.opt.Metrics.Evict()
			}
		}
		c.opt.Metrics.Hit()
		return v, true
	}
	if v, ok := c.lfu.get(key); ok {
		c.opt.Metrics.Hit()
		return v, true
	}
	c.opt.Metrics.Miss()
	var zero V
	return zero, false
}

// GetOrZero returns key's value, or V's zero value on miss.
func (c *Cache[K, V]) GetOrZero(key K) V {
	v, _ := c.Get(key)
	return v
}

// Put inserts or overwrites key. It always lands in the recency half; if
// key is already resident in the frequency half, the write is mirrored
// there too so a promoted key's value never goes stale.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.checkGhost(key)

	inLFU := c.lfu.contains(key)
	if c.lru.put(key, value) {
		c.opt.Metrics.Evict()
	}
	if inLFU {
		if c.lfu.put(key, value) {
			c.opt.Metrics.Evict()
		}
	}
}

// Len returns the total number of resident entries across both halves.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.len() + c.lfu.len()
}

// Purge discards every resident and ghost entry in both halves.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.reset()
	c.lfu.reset()
}

// checkGhost consumes a ghost hit in either half's ghost list, if present,
// and shifts one unit of capacity from the other half to the half that
// produced the hit.
func (c *Cache[K, V]) checkGhost(key K) {
	if c.lru.checkGhost(key) {
		if c.lfu.decreaseCapacity() {
			c.lru.increaseCapacity()
		}
		return
	}
	if c.lfu.checkGhost(key) {
		if c.lru.decreaseCapacity() {
			c.lfu.increaseCapacity()
		}
	}
}

var _ cache.Cache[int, int] = (*Cache[int, int])(nil)
var _ cache.Resettable = (*Cache[int, int])(nil)
