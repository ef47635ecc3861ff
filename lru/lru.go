// Package lru implements the classic move-to-front Least-Recently-Used
// eviction policy (spec component C2).
//
// Structure: a sentinel-bounded doubly linked list plus a key→node map,
// both unlocked and provided by internal/corelru.List, wrapped here with a
// single sync.Mutex. Insertion is always at the tail (MRU); eviction
// always takes the head's successor (LRU). A capacity <= 0 makes Put a
// no-op and Get always miss.
package lru

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

// Cache is a thread-safe LRU cache of the given capacity.
type Cache[K comparable, V any] struct {
	mu   sync.Mutex
	list *corelru.List[K, V]
	opt  Options[K, V]
}

// New constructs an LRU cache with room for capacity entries.
func New[K comparable, V any](capacity int, opt Options[K, V]) *Cache[K, V] {
	if opt.Metrics == nil {
		opt.Metrics = cache.NoopMetrics{}
	}
	return &Cache[K, V]{list: corelru.NewList[K, V](capacity), opt: opt}
}

// Put inserts or overwrites key, promoting it to most-recently-used. If
// this insertion pushes the cache past capacity, the least-recently-used
// entry is evicted.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, _, evicted := c.list.Put(key, value); evicted {
		c.opt.Metrics.Evict()
	}
}

// Get looks up key, promoting it to most-recently-used on hit.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, _, ok := c.list.Get(key)
	if ok {
		c.opt.Metrics.Hit()
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

// Remove deletes key if present and reports whether it existed.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.list.Remove(key)
	return ok
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Len()
}

// Purge discards every resident entry.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list.Reset()
}

var _ cache.Cache[int, int] = (*Cache[int, int])(nil)
var _ cache.Resettable = (*Cache[int, int])(nil)
