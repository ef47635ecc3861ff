// Package lruk implements the LRU-K admission filter (spec component C3):
// a key is admitted into the main LRU cache only once it has been accessed
// K times, so that a burst of one-off keys cannot flush genuinely hot
// entries out of the main cache.
//
// Concurrency. LRU-K is composed of two recency lists — main (capacity N)
// and hist (capacity M, storing pending access counts) — plus a pending-
// value map. Per the module's locking discipline (spec §5, §9), the outer
// Cache must not hold its own lock while calling into another lock-bearing
// Cache; so instead of embedding two lru.Cache instances, it embeds two
// unlocked internal/corelru.List cores directly under one sync.Mutex.
package lruk

import (
	"sync"

	"github.com/go-polycache/polycache/cache"
	"github.com/go-polycache/polycache/internal/corelru"
)

// Options configures a Cache. The zero value is valid: nil Metrics
// defaults to cache.NoopMetrics.
type Options[K comparable, V any] struct {
	Metrics cache.Metrics
}

// Cache is a thread-safe LRU-K cache.
type Cache[K comparable, V any] struct {
	mu   sync.Mutex
	main *corelru.List[K, V]
	hist *corelru.List[K, int] // key -> pending access count
	pend map[K]V               // key -> pending value, valid while in hist
	k    int
	opt  Options[K, V]
}

// New constructs an LRU-K cache: mainCapacity entries may be resident at
// once; historyCapacity pending keys may be tracked before admission; k is
// the number of accesses required for admission (k=1 collapses to plain
// LRU — every first access promotes).
func New[K comparable, V any](mainCapacity, historyCapacity, k int, opt Options[K, V]) *Cache[K, V] {
	if opt.Metrics == nil {
		opt.Metrics = cache.NoopMetrics{}
	}
	if k < 1 {
		k = 1
	}
	return &Cache[K, V]{
		main: corelru.NewList[K, V](mainCapacity),
		hist: corelru.NewList[K, int](historyCapacity),
		pend: make(map[K]V),
		k:    k,
		opt:  opt,
	}
}

// Put inserts or overwrites key. If key is already resident in main it is
// overwritten and promoted directly. Otherwise its history access count is
// bumped, and once that count reaches K the pending value is admitted into
// main and the history entry is dropped.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.main.Contains(key) {
		c.main.Put(key, value)
		return
	}

	count := c.bumpHist(key)
	c.pend[key] = value

	if count >= c.k {
		c.promote(key, value)
	}
}

// Get looks up key. main is tried first; regardless of the outcome, key's
// history access count is bumped (spec §4.3: "always increment hist[k]").
// On a main hit the value is returned directly. On a main miss, if the
// bumped count has now reached K and a pending value exists, key is
// promoted to main immediately and that pending value is returned.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, _, ok := c.main.Get(key); ok {
		c.bumpHist(key)
		c.opt.Metrics.Hit()
		return v, true
	}

	count := c.bumpHist(key)
	if count >= c.k {
		if v, ok := c.pend[key]; ok {
			c.promote(key, v)
			c.opt.Metrics.Hit()
			return v, true
		}
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

// Purge discards every resident and pending entry.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.main.Reset()
	c.hist.Reset()
	c.pend = make(map[K]V)
}

// Len returns the number of entries resident in main.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.main.Len()
}

// bumpHist increments key's pending access count (creating it at 1 if
// absent) and returns the new count. hist evicts its own counters
// independently under its own capacity, so a long-absent key is naturally
// forgotten (spec §4.3).
func (c *Cache[K, V]) bumpHist(key K) int {
	cur, _, _ := c.hist.Get(key)
	next := cur + 1
	if evictedKey, _, evicted := c.hist.Put(key, next); evicted {
		// The evicted history counter's pending value, if any, is no
		// longer reachable; drop it so c.pend cannot grow unbounded.
		delete(c.pend, evictedKey)
	}
	return next
}

// promote admits key/value into main and clears its history bookkeeping.
// If a key is later evicted from main, its history counter is not
// reconstructed automatically — re-promotion requires fresh accesses
// (spec §4.3 edge case).
func (c *Cache[K, V]) promote(key K, value V) {
	c.hist.Remove(key)
	delete(c.pend, key)
	if _, _, evicted := c.main.Put(key, value); evicted {
		c.opt.Metrics.Evict()
	}
}

var _ cache.Cache[int, int] = (*Cache[int, int])(nil)
var _ cache.Resettable = (*Cache[int, int])(nil)
