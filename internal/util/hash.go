// Package util contains internal helpers (hashing, sharding, padding).
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import "hash/maphash"

// Hasher hashes comparable keys of type K using the platform's generic
// hash facility (hash/maphash), seeded once per Hasher so that a Hasher's
// values are stable for its lifetime but not predictable across runs.
//
// hash/maphash only accepts types it can hash directly (maphash.Comparable
// covers any comparable type as of Go 1.24), so a single Hasher works for
// string, integer, struct, and pointer key types alike without a type
// switch — unlike a hand-rolled byte-hasher, it never needs a fallback
// "convert to string" escape hatch.
type Hasher[K comparable] struct {
	seed maphash.Seed
}

// NewHasher constructs a Hasher with a fresh random seed.
func NewHasher[K comparable]() Hasher[K] {
	return Hasher[K]{seed: maphash.MakeSeed()}
}

// Hash returns a 64-bit digest of k.
func (h Hasher[K]) Hash(k K) uint64 {
	return maphash.Comparable(h.seed, k)
}
