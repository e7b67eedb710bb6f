package containers

import (
	"sync"
	"testing"
)

func TestFCStackLiteralScenario(t *testing.T) {
	s := NewFCStack()
	h := s.NewHandle()

	h.Push(1)
	h.Push(2)
	h.Push(3)

	for _, want := range []int64{3, 2, 1} {
		v, err := h.Pop()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != want {
			t.Fatalf("expected %d, got %d", want, v)
		}
	}

	if _, err := h.Pop(); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestFCStackEmptyOnStart(t *testing.T) {
	s := NewFCStack()
	h := s.NewHandle()
	if _, err := h.Pop(); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

// TestFCStackConcurrentMultiset spawns one handle per goroutine (handles
// must not be shared across goroutines) and checks the popped multiset
// equals the pushed one. The -1 versus empty case is covered by
// TestFCStackNegativeValueNotConfusedWithEmpty.
func TestFCStackConcurrentMultiset(t *testing.T) {
	const (
		workers   = 6
		perWorker = 2000
		total     = workers * perWorker
	)

	s := NewFCStack()

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		base := w * perWorker
		go func(base int) {
			defer wg.Done()
			h := s.NewHandle()
			for i := 0; i < perWorker; i++ {
				h.Push(int64(base + i))
			}
		}(base)
	}
	wg.Wait()

	seen := make(map[int64]int, total)
	var mu sync.Mutex
	var consumers sync.WaitGroup
	consumers.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer consumers.Done()
			h := s.NewHandle()
			for i := 0; i < perWorker; i++ {
				v, err := h.Pop()
				if err != nil {
					t.Errorf("unexpected error before draining all values: %v", err)
					return
				}
				mu.Lock()
				seen[v]++
				mu.Unlock()
			}
		}()
	}
	consumers.Wait()

	h := s.NewHandle()
	if _, err := h.Pop(); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty after draining, got %v", err)
	}
	if len(seen) != total {
		t.Fatalf("expected %d distinct values, got %d", total, len(seen))
	}
	for v, count := range seen {
		if count != 1 {
			t.Fatalf("value %d seen %d times, expected 1", v, count)
		}
	}
}

// TestFCStackNegativeValueNotConfusedWithEmpty pins down the fix for the
// sentinel bug: popping a genuinely stored -1 must not be mistaken for an
// empty stack report.
func TestFCStackNegativeValueNotConfusedWithEmpty(t *testing.T) {
	s := NewFCStack()
	h := s.NewHandle()

	h.Push(-1)
	v, err := h.Pop()
	if err != nil {
		t.Fatalf("unexpected error popping a real -1 value: %v", err)
	}
	if v != -1 {
		t.Fatalf("expected -1, got %d", v)
	}

	if _, err := h.Pop(); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}
