package containers

import (
	"runtime"
	"sync"

	"github.com/eapache/queue"
)

// FCQueue is a flat-combining FIFO: the combiner drains posted slots
// against a plain, non-concurrent queue rather than a stack. The
// sequential backing container is github.com/eapache/queue's ring-buffer
// FIFO — it needs no synchronization of its own because only the
// combiner, holding mu, ever touches it.
type FCQueue struct {
	mu      sync.Mutex
	data    *queue.Queue
	slots   [MaxThreads]combinerSlot
	counter slotCounter
}

// NewFCQueue returns an empty flat-combining queue.
func NewFCQueue() *FCQueue {
	return &FCQueue{data: queue.New()}
}

// NewHandle hands out a stable slot for one goroutine's repeated use. A
// handle must not be shared between goroutines.
func (q *FCQueue) NewHandle() *FCQueueHandle {
	return &FCQueueHandle{q: q, slot: q.counter.acquire()}
}

func (q *FCQueue) combine() {
	for i := range q.slots {
		sl := &q.slots[i]
		if sl.done.Load() {
			continue
		}
		switch sl.op.Load() {
		case combinerPush:
			q.data.Add(sl.val.Load())
			sl.done.Store(true)
		case combinerPop:
			if q.data.Length() == 0 {
				sl.empty.Store(true)
			} else {
				sl.empty.Store(false)
				sl.result.Store(q.data.Remove().(int64))
			}
			sl.done.Store(true)
		}
	}
}

func (q *FCQueue) post(slot int, op int32) *combinerSlot {
	sl := &q.slots[slot]
	sl.done.Store(false)
	sl.op.Store(op)

	if q.mu.TryLock() {
		q.combine()
		q.mu.Unlock()
	} else {
		for !sl.done.Load() {
			runtime.Gosched()
		}
	}
	sl.op.Store(combinerIdle)
	return sl
}

// FCQueueHandle is the per-goroutine capability into an FCQueue.
type FCQueueHandle struct {
	q    *FCQueue
	slot int
}

// Enqueue posts an enqueue request and waits for it to be combined.
func (h *FCQueueHandle) Enqueue(v int64) {
	h.q.slots[h.slot].val.Store(v)
	h.q.post(h.slot, combinerPush)
}

// Dequeue posts a dequeue request and waits for it to be combined,
// returning ErrEmpty if the underlying queue was empty at combine time.
func (h *FCQueueHandle) Dequeue() (int64, error) {
	sl := h.q.post(h.slot, combinerPop)
	if sl.empty.Load() {
		return 0, ErrEmpty
	}
	return sl.result.Load(), nil
}
