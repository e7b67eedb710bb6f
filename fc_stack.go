package containers

import (
	"runtime"
	"sync"
)

// FCStack is a flat-combining stack: one thread at a time (the combiner,
// elected by a non-blocking try-lock) drains every posted slot against a
// plain, non-concurrent slice stack. Everyone else spins on their own
// slot's done flag. This amortizes the lock across however many
// operations happened to be posted during one combiner's scan, instead of
// paying a lock acquisition per operation.
type FCStack struct {
	mu      sync.Mutex
	data    []int64
	slots   [MaxThreads]combinerSlot
	counter slotCounter
}

// NewFCStack returns an empty flat-combining stack.
func NewFCStack() *FCStack {
	return &FCStack{}
}

// NewHandle hands out a stable slot for one goroutine's repeated use. A
// handle must not be shared between goroutines.
func (s *FCStack) NewHandle() *FCStackHandle {
	return &FCStackHandle{s: s, slot: s.counter.acquire()}
}

// combine scans every slot in index order and executes whatever request
// it finds posted there. At most one goroutine runs this at a time — the
// caller holds s.mu for the duration. A slot already marked done is
// skipped even if its owner has not yet reset op to idle.
func (s *FCStack) combine() {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.done.Load() {
			continue
		}
		switch sl.op.Load() {
		case combinerPush:
			s.data = append(s.data, sl.val.Load())
			sl.done.Store(true)
		case combinerPop:
			if n := len(s.data); n == 0 {
				sl.empty.Store(true)
			} else {
				sl.empty.Store(false)
				sl.result.Store(s.data[n-1])
				s.data = s.data[:n-1]
			}
			sl.done.Store(true)
		}
	}
}

// post publishes a request on slot, either combines it itself (having won
// the try-lock) or spins until some other combiner marks it done, then
// resets the slot to idle.
func (s *FCStack) post(slot int, op int32) *combinerSlot {
	sl := &s.slots[slot]
	sl.done.Store(false)
	sl.op.Store(op)

	if s.mu.TryLock() {
		s.combine()
		s.mu.Unlock()
	} else {
		for !sl.done.Load() {
			runtime.Gosched()
		}
	}
	sl.op.Store(combinerIdle)
	return sl
}

// FCStackHandle is the per-goroutine capability into an FCStack: it owns
// one stable slot index for its lifetime.
type FCStackHandle struct {
	s    *FCStack
	slot int
}

// Push posts a push request and waits for it to be combined.
func (h *FCStackHandle) Push(v int64) {
	h.s.slots[h.slot].val.Store(v)
	h.s.post(h.slot, combinerPush)
}

// Pop posts a pop request and waits for it to be combined, returning
// ErrEmpty if the underlying stack was empty at combine time.
func (h *FCStackHandle) Pop() (int64, error) {
	sl := h.s.post(h.slot, combinerPop)
	if sl.empty.Load() {
		return 0, ErrEmpty
	}
	return sl.result.Load(), nil
}
