// Package lfu implements the Least-Frequently-Used eviction policy (spec
// component C4) and its aging variant, LFU-Avg (C4.5).
//
// Structure: a map from frequency to a bucket of equal-frequency nodes,
// unlocked and provided by internal/coreflist.Engine, wrapped here with a
// single sync.Mutex. Ties within the minimum-frequency bucket break in
// favor of the oldest entry at that frequency.
package lfu

import (
	"sync"

	"github.com/go-polycache/polycache/cache"
	"github.com/go-polycache/polycache/internal/coreflist"
)

// Options configures a Cache. The zero value is valid: nil Metrics
// defaults to cache.NoopMetrics.
type Options[K comparable, V any] struct {
	Metrics cache.Metrics
}

// Cache is a thread-safe LFU cache, optionally aging its frequency counts
// (LFU-Avg) once their running average crosses maxAvg.
type Cache[K comparable, V any] struct {
	mu     sync.Mutex
	engine *coreflist.Engine[K, V]
	opt    Options[K, V]

	// maxAvg <= 0 disables aging: this is plain LFU (C4). maxAvg > 0
	// enables LFU-Avg (C4.5): whenever the running average frequency
	// exceeds maxAvg, every resident node's frequency is halved-down by
	// maxAvg/2 (floored at 1), preventing long-lived hot keys from
	// permanently entrenching themselves.
	maxAvg int
}

// New constructs a plain LFU cache (no aging) with room for capacity
// entries.
func New[K comparable, V any](capacity int, opt Options[K, V]) *Cache[K, V] {
	return newCache[K, V](capacity, 0, opt)
}

// NewAvg constructs an LFU-Avg cache: once the running average frequency
// across resident entries exceeds maxAvg, every resident frequency is aged
// down. maxAvg <= 0 disables aging and behaves exactly like New.
func NewAvg[K comparable, V any](capacity, maxAvg int, opt Options[K, V]) *Cache[K, V] {
	return newCache[K, V](capacity, maxAvg, opt)
}

func newCache[K comparable, V any](capacity, maxAvg int, opt Options[K, V]) *Cache[K, V] {
	if opt.Metrics == nil {
		opt.Metrics = cache.NoopMetrics{}
	}
	return &Cache[K, V]{
		engine: coreflist.NewEngine[K, V](capacity),
		opt:    opt,
		maxAvg: maxAvg,
	}
}

// Put inserts or overwrites key. A new key starts at frequency 1; an
// existing key has its frequency bumped as an access would. If insertion
// pushes the cache past capacity, the oldest entry at the minimum
// frequency is evicted.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, _, evicted := c.engine.Put(key, value); evicted {
		c.opt.Metrics.Evict()
	}
	c.maybeAge()
}

// Get looks up key, bumping its frequency on hit.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, _, ok := c.engine.Get(key)
	if ok {
		c.opt.Metrics.Hit()
		c.maybeAge()
	} else {
		c.opt.Metrics.Miss()
	}
	return v, ok
}

// GetOrZero returns key's value, or V's zero value on miss.
func (c *Cache[K, V]) GetOrZero(key K) V {
	v, _ := c.Get(key)
	return v
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Len()
}

// Purge discards every resident entry.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.Reset()
}

// maybeAge triggers an aging pass when LFU-Avg is enabled and the running
// average frequency has crossed maxAvg. Integer division matches the
// reference aging threshold exactly: avg = totalFreq / residentCount.
func (c *Cache[K, V]) maybeAge() {
	if c.maxAvg <= 0 {
		return
	}
	n := c.engine.Len()
	if n == 0 {
		return
	}
	avg := c.engine.TotalFreq() / n
	if avg > c.maxAvg {
		c.engine.AgeAll(c.maxAvg / 2)
	}
}

var _ cache.Cache[int, int] = (*Cache[int, int])(nil)
var _ cache.Resettable = (*Cache[int, int])(nil)
