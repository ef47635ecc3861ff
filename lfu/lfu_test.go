package lfu

import (
	"sync"
	"testing"
)

func TestLFU_PutGet(t *testing.T) {
	t.Parallel()
	c := New[string, int](2, Options[string, int]{})
	c.Put("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v", v, ok)
	}
}

func TestLFU_EvictsLeastFrequent(t *testing.T) {
	t.Parallel()
	c := New[string, int](2, Options[string, int]{})
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // a: freq 2, b: freq 1
	c.Put("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("b (least frequent) should have been evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("a should still be resident, got %v, %v", v, ok)
	}
}

func TestLFU_TieBreaksOnOldest(t *testing.T) {
	t.Parallel()
	c := New[string, int](2, Options[string, int]{})
	c.Put("a", 1) // freq 1, older
	c.Put("b", 2) // freq 1, newer
	c.Put("c", 3) // evicts oldest at minFreq=1, which is a

	if _, ok := c.Get("a"); ok {
		t.Fatalf("a (oldest at min frequency) should have been evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatalf("b should still be resident")
	}
}

func TestLFUAvg_AgesDownFrequencies(t *testing.T) {
	t.Parallel()
	c := NewAvg[string, int](4, 3, Options[string, int]{})

	c.Put("a", 1)
	// Drive a's frequency up well past maxAvg to trigger aging.
	for i := 0; i < 10; i++ {
		c.Get("a")
	}
	// Each Get that lifts a's frequency to 4 (average 4 > maxAvg 3) ages it
	// down by maxAvg/2 = 1, so a ends at 3 rather than 11.
	if _, freq, _ := c.engine.Peek("a"); freq != 3 {
		t.Fatalf("a's frequency after aging = %d, want 3", freq)
	}
	c.Put("b", 2)

	// b, c and d fit in capacity 4 beside a, so nothing is evicted and
	// aging must not have dropped a or its value.
	c.Put("c", 3)
	c.Put("d", 4)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("a should still be resident after aging, got %v, %v", v, ok)
	}
}

func TestLFU_GetOrZero(t *testing.T) {
	t.Parallel()
	c := New[string, int](2, Options[string, int]{})
	if v := c.GetOrZero("missing"); v != 0 {
		t.Fatalf("GetOrZero(missing) = %d, want 0", v)
	}
}

func TestLFU_Purge(t *testing.T) {
	t.Parallel()
	c := New[string, int](4, Options[string, int]{})
	c.Put("a", 1)
	c.Purge()
	if n := c.Len(); n != 0 {
		t.Fatalf("Len() after Purge = %d, want 0", n)
	}
}

func TestLFU_ConcurrentAccess(t *testing.T) {
	c := NewAvg[int, int](64, 100, Options[int, int]{})

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				key := (id*1000 + i) % 128
				c.Put(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
}
