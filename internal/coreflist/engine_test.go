package coreflist

import "testing"

func TestEngine_NewKeyStartsAtFrequencyOne(t *testing.T) {
	t.Parallel()
	e := NewEngine[string, int](4)
	e.Put("a", 1)
	_, freq, ok := e.Peek("a")
	if !ok || freq != 1 {
		t.Fatalf("Peek(a) = freq %d, ok %v, want 1, true", freq, ok)
	}
}

func TestEngine_GetBumpsFrequency(t *testing.T) {
	t.Parallel()
	e := NewEngine[string, int](4)
	e.Put("a", 1)
	_, freq, _ := e.Get("a")
	if freq != 2 {
		t.Fatalf("freq after one Get = %d, want 2", freq)
	}
}

func TestEngine_EvictsLeastFrequentOldest(t *testing.T) {
	t.Parallel()
	e := NewEngine[string, int](2)
	e.Put("a", 1)
	e.Put("b", 2)
	e.Get("a") // a: freq 2, b: freq 1

	if _, _, evicted := e.Put("c", 3); !evicted {
		t.Fatalf("third insert past capacity 2 should evict")
	}
	if e.Contains("b") {
		t.Fatalf("b (least frequent) should have been evicted")
	}
	if !e.Contains("a") {
		t.Fatalf("a should still be resident")
	}
}

func TestEngine_MinFreqRecomputesWhenBucketEmpties(t *testing.T) {
	t.Parallel()
	e := NewEngine[string, int](3)
	e.Put("a", 1)
	e.Put("b", 2)
	e.Get("a")
	e.Get("b") // a and b both at freq 2; minFreq bucket (freq 1) is now empty
	if e.MinFreq() != 2 {
		t.Fatalf("MinFreq() = %d, want 2 once the freq-1 bucket empties", e.MinFreq())
	}
	e.Put("c", 3)

	if e.MinFreq() != 1 {
		t.Fatalf("MinFreq() = %d, want 1 (c is fresh at freq 1)", e.MinFreq())
	}
}

func TestEngine_AgeAllFloorsAtOne(t *testing.T) {
	t.Parallel()
	e := NewEngine[string, int](4)
	e.Put("a", 1)
	e.Get("a")
	e.Get("a") // freq 3
	e.AgeAll(10)

	_, freq, _ := e.Peek("a")
	if freq != 1 {
		t.Fatalf("freq after aging past zero = %d, want floored at 1", freq)
	}
}

func TestEngine_TotalFreq(t *testing.T) {
	t.Parallel()
	e := NewEngine[string, int](4)
	e.Put("a", 1) // freq 1
	e.Put("b", 2) // freq 1
	e.Get("a")    // freq 2

	if total := e.TotalFreq(); total != 3 {
		t.Fatalf("TotalFreq() = %d, want 3", total)
	}
}

func TestEngine_RemoveAndZeroCapacity(t *testing.T) {
	t.Parallel()
	e := NewEngine[string, int](4)
	e.Put("a", 1)
	if v, ok := e.Remove("a"); !ok || v != 1 {
		t.Fatalf("Remove(a) = %v, %v", v, ok)
	}
	if _, ok := e.Remove("a"); ok {
		t.Fatalf("second Remove(a) should report false")
	}

	zero := NewEngine[string, int](0)
	zero.Put("x", 1)
	if zero.Contains("x") {
		t.Fatalf("zero-capacity engine must never retain entries")
	}
}
