package corelru

import "testing"

func TestList_PutGetEvict(t *testing.T) {
	t.Parallel()
	l := NewList[string, int](2)

	l.Put("a", 1)
	l.Put("b", 2)
	if _, _, evicted := l.Put("c", 3); !evicted {
		t.Fatalf("third insert past capacity 2 should evict")
	}
	if l.Contains("a") {
		t.Fatalf("a (least recently used) should have been evicted")
	}
}

func TestList_GetPromotesAndCountsAccess(t *testing.T) {
	t.Parallel()
	l := NewList[string, int](2)
	l.Put("a", 1)
	l.Put("b", 2)

	_, count, ok := l.Get("a") // promotes a to MRU
	if !ok || count != 1 {
		t.Fatalf("Get(a) = count %d, ok %v, want 1, true", count, ok)
	}

	l.Put("c", 3) // should evict b, not a, since a was just promoted
	if l.Contains("b") {
		t.Fatalf("b should have been evicted")
	}
	if !l.Contains("a") {
		t.Fatalf("a should still be resident")
	}
}

func TestList_PutOverwriteDoesNotBumpCount(t *testing.T) {
	t.Parallel()
	l := NewList[string, int](2)
	l.Put("a", 1)
	l.Put("a", 11)
	_, count, _ := l.Get("a")
	if count != 1 {
		t.Fatalf("count after one Get = %d, want 1 (Put must not bump count)", count)
	}
}

func TestList_RemoveAndEvictOldest(t *testing.T) {
	t.Parallel()
	l := NewList[string, int](3)
	l.Put("a", 1)
	l.Put("b", 2)

	if v, ok := l.Remove("a"); !ok || v != 1 {
		t.Fatalf("Remove(a) = %v, %v", v, ok)
	}
	if _, ok := l.Remove("a"); ok {
		t.Fatalf("second Remove(a) should report false")
	}

	k, v, ok := l.EvictOldest()
	if !ok || k != "b" || v != 2 {
		t.Fatalf("EvictOldest() = %v, %v, %v, want b, 2, true", k, v, ok)
	}
	if _, _, ok := l.EvictOldest(); ok {
		t.Fatalf("EvictOldest() on empty list should report false")
	}
}

func TestList_ZeroCapacity(t *testing.T) {
	t.Parallel()
	l := NewList[string, int](0)
	l.Put("a", 1)
	if l.Contains("a") {
		t.Fatalf("zero-capacity list must never retain entries")
	}
}

func TestList_Reset(t *testing.T) {
	t.Parallel()
	l := NewList[string, int](4)
	l.Put("a", 1)
	l.Put("b", 2)
	l.Reset()
	if l.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", l.Len())
	}
	// Sentinel links must still be consistent after Reset.
	l.Put("c", 3)
	if v, ok := l.Peek("c"); !ok || v != 3 {
		t.Fatalf("Put after Reset failed: %v, %v", v, ok)
	}
}
