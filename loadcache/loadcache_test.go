package loadcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-polycache/polycache/lru"
)

func TestLoading_GetOrLoad_FillsOnMiss(t *testing.T) {
	t.Parallel()
	inner := lru.New[string, string](16, lru.Options[string, string]{})
	l := New[string, string](inner, func(_ context.Context, k string) (string, error) {
		return "v:" + k, nil
	})

	v, err := l.GetOrLoad(context.Background(), "a")
	if err != nil || v != "v:a" {
		t.Fatalf("GetOrLoad(a) = %q, %v", v, err)
	}
	// Second call should be a pure cache hit, not a second load.
	if v, ok := l.Get("a"); !ok || v != "v:a" {
		t.Fatalf("Get(a) after load = %q, %v", v, ok)
	}
}

func TestLoading_NoLoaderReturnsErr(t *testing.T) {
	t.Parallel()
	inner := lru.New[string, string](16, lru.Options[string, string]{})
	l := New[string, string](inner, nil)

	if _, err := l.GetOrLoad(context.Background(), "a"); !errors.Is(err, ErrNoLoader) {
		t.Fatalf("GetOrLoad with no loader: err = %v, want ErrNoLoader", err)
	}
}

func TestLoading_LoaderErrorPropagates(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("boom")
	inner := lru.New[string, string](16, lru.Options[string, string]{})
	l := New[string, string](inner, func(_ context.Context, k string) (string, error) {
		return "", wantErr
	})

	if _, err := l.GetOrLoad(context.Background(), "a"); !errors.Is(err, wantErr) {
		t.Fatalf("GetOrLoad error = %v, want %v", err, wantErr)
	}
}

// One hundred goroutines call GetOrLoad on the same key concurrently. The
// loader should run at most once (singleflight coalescing).
func TestLoading_ConcurrentGetOrLoad_CoalescesLoads(t *testing.T) {
	var calls int64
	inner := lru.New[string, string](16, lru.Options[string, string]{})
	l := New[string, string](inner, func(_ context.Context, k string) (string, error) {
		atomic.AddInt64(&calls, 1)
		return "v:" + k, nil
	})

	const goroutines = 100
	key := "same-key"

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := l.GetOrLoad(context.Background(), key)
			if err != nil {
				t.Errorf("GetOrLoad error: %v", err)
				return
			}
			if v != "v:"+key {
				t.Errorf("unexpected value: %q", v)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := atomic.LoadInt64(&calls); got > 1 {
		t.Fatalf("loader should run at most once, got %d", got)
	}
}
