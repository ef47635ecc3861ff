package arc

import (
	"github.com/go-polycache/polycache/internal/coreflist"
	"github.com/go-polycache/polycache/internal/corelru"
)

// lfuHalf is ARC's frequency-ordered half: a bounded resident frequency
// engine plus a ghost list of recently evicted keys. Grounded on
// original_source/src/ARC/CacheARCLFUPart.h, translated onto
// internal/coreflist's Engine and internal/corelru's GhostList. Unlike the
// LRU half, entries here never transform further — ARC only promotes
// LRU->LFU, never the reverse.
type lfuHalf[K comparable, V any] struct {
	engine *coreflist.Engine[K, V]
	ghost  *corelru.GhostList[K]
}

func newLFUHalf[K comparable, V any](capacity int) *lfuHalf[K, V] {
	return &lfuHalf[K, V]{
		engine: coreflist.NewEngine[K, V](capacity),
		ghost:  corelru.NewGhostList[K](capacity),
	}
}

// get looks up key, bumping its frequency on hit.
func (h *lfuHalf[K, V]) get(key K) (V, bool) {
	v, _, ok := h.engine.Get(key)
	return v, ok
}

// put inserts or overwrites key. If this evicts the frequency engine's
// minimum-frequency entry, that key is recorded as a ghost and evicted is
// true.
func (h *lfuHalf[K, V]) put(key K, value V) (evicted bool) {
	if h.engine.Capacity() <= 0 {
		return false
	}
	evictedKey, _, wasEvicted := h.engine.Put(key, value)
	if wasEvicted {
		h.ghost.Add(evictedKey)
	}
	return wasEvicted
}

// contains reports whether key is currently resident, without registering
// an access — used by Cache.Put to decide whether a main-half write must
// also be mirrored into this half.
func (h *lfuHalf[K, V]) contains(key K) bool {
	return h.engine.Contains(key)
}

// checkGhost consumes a ghost hit for key, if present.
func (h *lfuHalf[K, V]) checkGhost(key K) bool {
	return h.ghost.Remove(key)
}

// increaseCapacity grows both the resident and ghost capacities by one.
func (h *lfuHalf[K, V]) increaseCapacity() {
	h.engine.SetCapacity(h.engine.Capacity() + 1)
	h.ghost.SetCapacity(h.ghost.Capacity() + 1)
}

// decreaseCapacity shrinks this half by one, evicting into its own ghost
// list first if the resident engine is already full, and trimming its own
// ghost list first if that is already full. Returns false if capacity was
// already zero.
func (h *lfuHalf[K, V]) decreaseCapacity() bool {
	capNow := h.engine.Capacity()
	if capNow <= 0 {
		return false
	}
	if h.engine.Len() == capNow {
		if k, _, _, ok := h.engine.EvictOldest(); ok {
			h.ghost.Add(k)
		}
	}
	if h.ghost.Len() == h.ghost.Capacity() {
		h.ghost.EvictOldest()
	}
	h.engine.SetCapacity(capNow - 1)
	h.ghost.SetCapacity(h.ghost.Capacity() - 1)
	return true
}

func (h *lfuHalf[K, V]) len() int { return h.engine.Len() }

func (h *lfuHalf[K, V]) reset() {
	h.engine.Reset()
	h.ghost.Reset()
}
