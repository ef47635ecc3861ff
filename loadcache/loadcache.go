// Package loadcache decorates any cache.Cache[K,V] with an optional
// loader function, adding a GetOrLoad operation that fills a miss from an
// upstream source. This sits outside the core cache.Cache contract
// deliberately: the module's base policies are a closed, synchronous,
// three-operation surface with no async interface, so loading belongs in
// a decorator rather than in Cache itself.
//
// Grounded on the shardcache project's cache.GetOrLoad, translated from
// its hand-rolled internal/singleflight.Group onto the ecosystem
// golang.org/x/sync/singleflight package.
package loadcache

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/go-polycache/polycache/cache"
)

// ErrNoLoader is returned by GetOrLoad when no Loader was configured.
var ErrNoLoader = errors.New("loadcache: no loader provided")

// Loader fetches a value for key on a cache miss.
type Loader[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Loading wraps an inner cache.Cache with a Loader, coalescing concurrent
// loads for the same key so the Loader runs at most once per miss no
// matter how many goroutines are waiting on it.
type Loading[K comparable, V any] struct {
	inner  cache.Cache[K, V]
	loader Loader[K, V]
	sf     singleflight.Group
}

// New wraps inner with loader. loader may be nil; GetOrLoad then always
// returns ErrNoLoader on a miss, while Get/Put/GetOrZero pass straight
// through to inner.
func New[K comparable, V any](inner cache.Cache[K, V], loader Loader[K, V]) *Loading[K, V] {
	return &Loading[K, V]{inner: inner, loader: loader}
}

// Put passes through to the inner cache.
func (l *Loading[K, V]) Put(key K, value V) { l.inner.Put(key, value) }

// Get passes through to the inner cache.
func (l *Loading[K, V]) Get(key K) (V, bool) { return l.inner.Get(key) }

// GetOrZero passes through to the inner cache.
func (l *Loading[K, V]) GetOrZero(key K) V { return l.inner.GetOrZero(key) }

// GetOrLoad returns the value for key from the inner cache, or — on a
// miss — invokes the Loader and stores its result before returning it.
// Concurrent GetOrLoad calls for the same key, from any number of
// goroutines, share a single in-flight Loader call via singleflight.Group;
// singleflight.Group keys on string, so key is rendered via fmt.Sprint
// before being handed to it.
func (l *Loading[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	if v, ok := l.inner.Get(key); ok {
		return v, nil
	}
	if l.loader == nil {
		var zero V
		return zero, ErrNoLoader
	}

	sfKey := singleflightKey(key)
	v, err, _ := l.sf.Do(sfKey, func() (any, error) {
		v, err := l.loader(ctx, key)
		if err != nil {
			return v, err
		}
		l.inner.Put(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// singleflightKey renders key as a string since singleflight.Group keys
// on string rather than on a generic comparable type.
func singleflightKey[K comparable](key K) string {
	return fmt.Sprint(key)
}

var _ cache.Cache[int, int] = (*Loading[int, int])(nil)
