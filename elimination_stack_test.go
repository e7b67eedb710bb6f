package containers

import (
	"sync"
	"testing"
)

func TestElimStackLiteralScenario(t *testing.T) {
	s := NewElimStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	for _, want := range []int64{3, 2, 1} {
		v, err := s.Pop()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != want {
			t.Fatalf("expected %d, got %d", want, v)
		}
	}

	if _, err := s.Pop(); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestElimStackEmptyOnStart(t *testing.T) {
	s := NewElimStack()
	if _, err := s.Pop(); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

// TestElimStackConcurrentMultiset runs 4 goroutines each doing 5000 pushes
// followed by 4 goroutines each doing 5000 pops, and checks the popped
// multiset equals the pushed one. Elimination never actually publishes a
// waiting push/pop state in this implementation (preserved faithfully from
// the algorithm it is modeled on), so every operation always falls through
// to the underlying Treiber path — this test exercises exactly that path
// under concurrent elimination-slot polling.
func TestElimStackConcurrentMultiset(t *testing.T) {
	const (
		workers   = 4
		perWorker = 5000
		total     = workers * perWorker
	)

	s := NewElimStack()

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		base := w * perWorker
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Push(int64(base + i))
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
			for i := 0; i < perWorker; i++ {
				v, err := s.Pop()
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

	if _, err := s.Pop(); err != ErrEmpty {
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
