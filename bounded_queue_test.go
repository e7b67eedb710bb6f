package containers

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBoundedQueueFIFOSingleThreaded(t *testing.T) {
	q := NewBoundedQueue()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	for _, want := range []int64{1, 2, 3} {
		require.Equal(t, want, q.Dequeue())
	}
}

// TestBoundedQueueProducerConsumerSum pushes 0..999 from one producer and
// sums everything a consumer pulls, checking it matches the arithmetic
// series total.
func TestBoundedQueueProducerConsumerSum(t *testing.T) {
	const n = 1000
	q := NewBoundedQueue()

	go func() {
		for i := 0; i < n; i++ {
			q.Enqueue(int64(i))
		}
	}()

	var sum int64
	for i := 0; i < n; i++ {
		sum += q.Dequeue()
	}

	require.Equal(t, int64(n*(n-1))/2, sum)
}

// TestBoundedQueueEnqueueBlocksWhenFull fills the queue to capacity, then
// checks that one more enqueue blocks until a Dequeue makes room, rather
// than returning immediately.
func TestBoundedQueueEnqueueBlocksWhenFull(t *testing.T) {
	q := NewBoundedQueue()
	for i := 0; i < BoundedQueueSize; i++ {
		q.Enqueue(int64(i))
	}

	blocked := make(chan struct{})
	go func() {
		q.Enqueue(int64(BoundedQueueSize))
		close(blocked)
	}()

	select {
	case <-blocked:
		t.Fatal("Enqueue on a full queue returned before any Dequeue freed space")
	case <-time.After(50 * time.Millisecond):
	}

	require.Equal(t, int64(0), q.Dequeue())

	select {
	case <-blocked:
	case <-time.After(time.Second):
		t.Fatal("Enqueue did not unblock after Dequeue freed space")
	}
}

// TestBoundedQueueDequeueBlocksWhenEmpty checks the symmetric case: a
// Dequeue on an empty queue blocks until an Enqueue arrives.
func TestBoundedQueueDequeueBlocksWhenEmpty(t *testing.T) {
	q := NewBoundedQueue()

	result := make(chan int64)
	go func() {
		result <- q.Dequeue()
	}()

	select {
	case <-result:
		t.Fatal("Dequeue on an empty queue returned before any Enqueue")
	case <-time.After(50 * time.Millisecond):
	}

	q.Enqueue(7)

	select {
	case v := <-result:
		require.Equal(t, int64(7), v)
	case <-time.After(time.Second):
		t.Fatal("Dequeue did not unblock after Enqueue")
	}
}

// TestBoundedQueueManyProducersConsumers stresses the queue with several
// concurrent producers and consumers and checks every produced value is
// consumed exactly once.
func TestBoundedQueueManyProducersConsumers(t *testing.T) {
	const (
		producers = 4
		perProd   = 2000
		total     = producers * perProd
	)

	q := NewBoundedQueue()

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		base := p * perProd
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProd; i++ {
				q.Enqueue(int64(base + i))
			}
		}(base)
	}

	seen := make(map[int64]int, total)
	var mu sync.Mutex
	var consumers sync.WaitGroup
	consumers.Add(producers)
	for c := 0; c < producers; c++ {
		go func() {
			defer consumers.Done()
			for i := 0; i < perProd; i++ {
				v := q.Dequeue()
				mu.Lock()
				seen[v]++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	consumers.Wait()

	require.Len(t, seen, total)
	for v, count := range seen {
		require.Equalf(t, 1, count, "value %d seen %d times, expected 1", v, count)
	}
}
