package arc

import "github.com/go-polycache/polycache/internal/corelru"

// lruHalf is ARC's recency-ordered half: a bounded resident list plus a
// ghost list of recently evicted keys. Grounded on
// original_source/src/ARC/CacheARCLRUPart.h, translated from its
// hand-rolled intrusive lists onto internal/corelru's List and GhostList.
type lruHalf[K comparable, V any] struct {
	main   *corelru.List[K, V]
	ghost  *corelru.GhostList[K]
	thresh int // access count at which a key transforms into the LFU half
}

func newLRUHalf[K comparable, V any](capacity, transformThreshold int) *lruHalf[K, V] {
	return &lruHalf[K, V]{
		main:   corelru.NewList[K, V](capacity),
		ghost:  corelru.NewGhostList[K](capacity),
		thresh: transformThreshold,
	}
}

// get looks up key in the resident list, promoting it and bumping its
// access count. shouldTransform reports whether that count has reached
// the transform threshold, signalling the caller to copy key into the LFU
// half.
func (h *lruHalf[K, V]) get(key K) (value V, shouldTransform bool, ok bool) {
	v, count, found := h.main.Get(key)
	if !found {
		return value, false, false
	}
	return v, count >= h.thresh, true
}

// put inserts or overwrites key. If this evicts the resident list's LRU
// entry, that key is recorded as a ghost and evicted is true.
func (h *lruHalf[K, V]) put(key K, value V) (evicted bool) {
	if h.main.Capacity() <= 0 {
		return false
	}
	evictedKey, _, wasEvicted := h.main.Put(key, value)
	if wasEvicted {
		h.ghost.Add(evictedKey)
	}
	return wasEvicted
}

// checkGhost consumes a ghost hit for key, if present.
func (h *lruHalf[K, V]) checkGhost(key K) bool {
	return h.ghost.Remove(key)
}

// increaseCapacity grows both the resident and ghost capacities by one,
// mirroring the sibling half's decreaseCapacity.
func (h *lruHalf[K, V]) increaseCapacity() {
	h.main.SetCapacity(h.main.Capacity() + 1)
	h.ghost.SetCapacity(h.ghost.Capacity() + 1)
}

// decreaseCapacity shrinks this half by one, evicting into its own ghost
// list first if the resident list is already full, and trimming its own
// ghost list first if that is already full. Returns false if capacity was
// already zero.
func (h *lruHalf[K, V]) decreaseCapacity() bool {
	capNow := h.main.Capacity()
	if capNow <= 0 {
		return false
	}
	if h.main.Len() == capNow {
		if k, _, ok := h.main.EvictOldest(); ok {
			h.ghost.Add(k)
		}
	}
	if h.ghost.Len() == h.ghost.Capacity() {
		h.ghost.EvictOldest()
	}
	h.main.SetCapacity(capNow - 1)
	h.ghost.SetCapacity(h.ghost.Capacity() - 1)
	return true
}

func (h *lruHalf[K, V]) len() int { return h.main.Len() }

func (h *lruHalf[K, V]) reset() {
	h.main.Reset()
	h.ghost.Reset()
}
