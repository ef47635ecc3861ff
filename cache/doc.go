// Package cache is the entry point for polycache: a library of five
// interchangeable in-process, thread-safe, bounded key/value caches.
//
// Design
//
//   - Interchangeability: lru.Cache, lruk.Cache, lfu.Cache, and arc.Cache
//     all implement this package's Cache[K,V] interface, so callers can
//     swap one eviction policy for another without touching call sites.
//     shard.Sharded wraps any one of them to fan lookups out across N
//     independently-locked inner caches.
//
//   - Concurrency: every concrete cache guards its own state with exactly
//     one mutex, held for the duration of each call. Composite policies
//     (LRU-K over two recency lists, ARC over a recency half and a
//     frequency half) never acquire a second lock while holding their
//     own — they embed unlocked internal bookkeeping cores instead of
//     nesting locked caches.
//
//   - Metrics: every policy's Options carries an optional Metrics hook
//     (Hit/Miss/Evict), defaulting to NoopMetrics. Plug in
//     metrics/prom.Adapter to export Prometheus counters.
//
//   - Loading: GetOrLoad (coalesced upstream loads on miss) lives outside
//     this package, in loadcache.Loading, which decorates any Cache[K,V].
//     Cache itself stays a closed, synchronous, three-operation contract.
//
// Basic usage
//
//	c := lru.New[string, []byte](10_000, lru.Options[string, []byte]{})
//	c.Put("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//
// Choosing a policy
//
//	lru.New[K, V](capacity, opt)                  // classic LRU
//	lruk.New[K, V](mainCap, histCap, k, opt)       // admits after k accesses
//	lfu.New[K, V](capacity, opt)                   // plain LFU
//	lfu.NewAvg[K, V](capacity, maxAvg, opt)         // LFU with frequency aging
//	arc.New[K, V](capacity, opt)                    // adaptive LRU/LFU balance
//
// Sharding any policy
//
//	c := shard.New[string, int](100_000, shard.Options{Shards: 32},
//	    func(shardCapacity int) cache.Cache[string, int] {
//	        return lru.New[string, int](shardCapacity, lru.Options[string, int]{})
//	    })
//
// Exporting metrics (Prometheus adapter)
//
//	m := prom.New(nil, "polycache", "demo", nil)
//	c := lru.New[string, []byte](10_000, lru.Options[string, []byte]{Metrics: m})
//
// Thread-safety & complexity
//
// All methods on every concrete Cache are safe for concurrent use. Put and
// Get are O(1) expected time for lru, plain lfu, and lruk; arc's Get/Put are
// O(1) expected plus a constant amount of ghost-list bookkeeping. LFU-Avg
// (lfu.NewAvg) also sums frequencies over every frequency bucket on each
// Put and Get hit, and an aging pass, when triggered, is O(n).
package cache
