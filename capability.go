package containers

// Stack is the push/pop capability shared by the single-global-lock,
// Treiber, elimination, and flat-combining stacks.
type Stack interface {
	Push(v int64)
	Pop() (int64, error)
}

// Queue is the enqueue/dequeue capability shared by the single-global-lock,
// Michael & Scott, and flat-combining queues.
type Queue interface {
	Enqueue(v int64)
	Dequeue() (int64, error)
}

// BlockingQueue is the capability the bounded queue (C8) exposes. It is
// kept distinct from Queue rather than folded into it: a BlockingQueue
// never returns ErrEmpty, it suspends the caller, and a benchmark harness
// written against Queue would busy-loop forever waiting for an error that
// never comes. internal/bench.RunBounded is parametrized over this
// interface the same way RunStack/RunQueue are over Stack/Queue.
type BlockingQueue interface {
	Enqueue(v int64)
	Dequeue() int64
}
