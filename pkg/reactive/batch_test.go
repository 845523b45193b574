package reactive

import "testing"

func TestBatchNotifiesOnce(t *testing.T) {
	s := NewSignal(0)

	calls := 0
	stop := Watch(s, func(int) { calls++ })
	defer stop()

	Batch(func() {
		s.Set(1)
		s.Set(2)
		s.Set(3)
	})

	if calls != 1 {
		t.Fatalf("watcher called %d times for batched updates, want 1", calls)
	}
	if got := s.Get(); got != 3 {
		t.Fatalf("Get() = %d after batch, want 3", got)
	}
}

func TestBatchObservesFinalValue(t *testing.T) {
	s := NewSignal("start")

	var seen string
	stop := Watch(s, func(v string) { seen = v })
	defer stop()

	Batch(func() {
		s.Set("middle")
		s.Set("end")
	})

	if seen != "end" {
		t.Fatalf("watcher saw %q, want %q", seen, "end")
	}
}

func TestNestedBatchNotifiesAtOutermost(t *testing.T) {
	a := NewSignal(0)
	b := NewSignal(0)

	calls := 0
	stopA := Watch(a, func(int) { calls++ })
	defer stopA()
	stopB := Watch(b, func(int) { calls++ })
	defer stopB()

	Batch(func() {
		a.Set(1)
		Batch(func() {
			b.Set(1)
		})
		// Inner batch completion must not flush notifications early.
		if calls != 0 {
			t.Fatalf("listeners notified inside outer batch, calls = %d", calls)
		}
	})

	if calls != 2 {
		t.Fatalf("calls = %d after outer batch, want 2", calls)
	}
}

func TestBatchDeduplicatesListeners(t *testing.T) {
	s := NewSignal(0)

	calls := 0
	stop := Watch(s, func(int) { calls++ })
	defer stop()

	Batch(func() {
		for i := 1; i <= 10; i++ {
			s.Set(i)
		}
	})

	if calls != 1 {
		t.Fatalf("watcher called %d times, want 1 (deduplicated)", calls)
	}
}

func TestBatchWithNoUpdates(t *testing.T) {
	ran := false
	Batch(func() { ran = true })
	if !ran {
		t.Fatal("batch body did not run")
	}
}
