package containers

import "sync/atomic"

// MaxThreads bounds the flat-combining slot array. Threads beyond this
// count wrap and share a slot — shared slots serialize behind whichever
// owner is combining, a known and accepted limitation.
const MaxThreads = 32

const (
	combinerIdle = 0
	combinerPush = 1 // push / enqueue
	combinerPop  = 2 // pop / dequeue
)

// combinerSlot is one thread's mailbox into a flat-combining container.
// A slot cycles idle -> posting -> pending -> done -> idle: the caller
// writes op/val and clears done, the combiner (whichever caller currently
// holds the try-lock) executes the request and writes result/empty/done,
// and the caller resets op back to idle once it observes done.
//
// empty is an explicit flag rather than relying on a sentinel result
// value — the original used -1 for "no result", which collides with -1
// as a legitimate pushed value. A dedicated flag has no such collision.
type combinerSlot struct {
	op     atomic.Int32
	val    atomic.Int64
	result atomic.Int64
	empty  atomic.Bool
	done   atomic.Bool
}

// slotCounter hands out stable slot indices to goroutines. Go has no
// portable goroutine-local storage, so — unlike a thread_local counter
// seeded once per OS thread — callers obtain a handle once (NewHandle)
// and reuse it for every subsequent call; that handle is the Go
// equivalent of the thread-local slot cache.
type slotCounter struct {
	next atomic.Uint32
}

func (c *slotCounter) acquire() int {
	return int(c.next.Add(1)-1) % MaxThreads
}
