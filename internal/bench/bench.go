// Package bench holds the thread-count sweep and contention harness the
// containers package's own tests deliberately stay out of. Nothing here
// is part of the containers' correctness contract — it exists to give
// cmd/containers something to run in -bench and -contention mode.
package bench

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond"

	containers "github.com/prudhvibelide/concurrent-containers"
)

// OpsPerThread is the fixed per-thread operation count for every stack
// and queue benchmark.
const OpsPerThread = 100_000

// ThreadCounts is the fixed sweep every stack and queue benchmark runs
// across.
var ThreadCounts = []int{1, 2, 4, 8, 16}

// Result is one (container, thread count) benchmark observation.
type Result struct {
	Name    string
	Threads int
	Ops     int64
	Elapsed time.Duration
}

// Throughput returns completed operations per second.
func (r Result) Throughput() float64 {
	return float64(r.Ops) / r.Elapsed.Seconds()
}

// StackPool produces one Stack view per worker goroutine. For an
// already-thread-safe container (everything except FCStack) every worker
// shares the exact same view; FCStack needs one stable handle per
// goroutine, so its pool hands out a fresh one on each call.
type StackPool interface {
	Worker() containers.Stack
}

// QueuePool is StackPool's queue counterpart.
type QueuePool interface {
	Worker() containers.Queue
}

type sharedStack struct{ s containers.Stack }

func (p sharedStack) Worker() containers.Stack { return p.s }

// SharedStack wraps an already thread-safe Stack so every worker shares
// it directly.
func SharedStack(s containers.Stack) StackPool { return sharedStack{s} }

type sharedQueue struct{ q containers.Queue }

func (p sharedQueue) Worker() containers.Queue { return p.q }

// SharedQueue wraps an already thread-safe Queue so every worker shares
// it directly.
func SharedQueue(q containers.Queue) QueuePool { return sharedQueue{q} }

type fcStackPool struct{ fc *containers.FCStack }

func (p fcStackPool) Worker() containers.Stack { return p.fc.NewHandle() }

// FCStackPool hands each worker its own stable flat-combining slot into
// fc.
func FCStackPool(fc *containers.FCStack) StackPool { return fcStackPool{fc} }

type fcQueuePool struct{ fc *containers.FCQueue }

func (p fcQueuePool) Worker() containers.Queue { return p.fc.NewHandle() }

// FCQueuePool hands each worker its own stable flat-combining slot into
// fc.
func FCQueuePool(fc *containers.FCQueue) QueuePool { return fcQueuePool{fc} }

// BlockingQueuePool is StackPool's counterpart for C8, parametrized over
// containers.BlockingQueue rather than Queue — a BlockingQueue never
// returns ErrEmpty, so RunBounded's producers and consumers must be
// written against that capability instead.
type BlockingQueuePool interface {
	Worker() containers.BlockingQueue
}

type sharedBlockingQueue struct{ q containers.BlockingQueue }

func (p sharedBlockingQueue) Worker() containers.BlockingQueue { return p.q }

// SharedBlockingQueue wraps an already thread-safe BlockingQueue so every
// worker shares it directly.
func SharedBlockingQueue(q containers.BlockingQueue) BlockingQueuePool {
	return sharedBlockingQueue{q}
}

// RunStack pre-fills the stack with threads*opsPerThread values, then
// spawns threads workers that alternate push/pop, and reports throughput.
// Pre-filling guarantees every pop has something to find, matching the
// workload original_source/main.cpp's bench_stack ran.
func RunStack(name string, newPool func() StackPool, threads, opsPerThread int) Result {
	pool := newPool()

	prefill := pool.Worker()
	for i := 0; i < threads*opsPerThread; i++ {
		prefill.Push(int64(i))
	}

	gp := pond.New(threads, threads)
	start := time.Now()
	for t := 0; t < threads; t++ {
		id := t
		gp.Submit(func() {
			s := pool.Worker()
			for i := 0; i < opsPerThread; i++ {
				if i&1 == 0 {
					s.Push(int64(id*opsPerThread + i))
				} else {
					_, _ = s.Pop()
				}
			}
		})
	}
	gp.StopAndWait()

	return Result{
		Name:    name,
		Threads: threads,
		Ops:     int64(threads * opsPerThread),
		Elapsed: time.Since(start),
	}
}

// RunQueue splits threads into producer and consumer halves — any odd
// thread out joins the consumer half — and reports throughput across
// both. With threads == 1 it runs one producer and one consumer, and Ops
// counts both.
func RunQueue(name string, newPool func() QueuePool, threads, opsPerThread int) Result {
	pool := newPool()

	half := threads / 2
	if half == 0 {
		half = 1
	}
	producers := half
	consumers := threads - half
	if consumers == 0 {
		consumers = 1
	}

	gp := pond.New(producers+consumers, producers+consumers)
	start := time.Now()
	for t := 0; t < producers; t++ {
		id := t
		gp.Submit(func() {
			q := pool.Worker()
			for i := 0; i < opsPerThread; i++ {
				q.Enqueue(int64(id*opsPerThread + i))
			}
		})
	}
	for t := 0; t < consumers; t++ {
		gp.Submit(func() {
			q := pool.Worker()
			for i := 0; i < opsPerThread; i++ {
				_, _ = q.Dequeue()
			}
		})
	}
	gp.StopAndWait()

	return Result{
		Name:    name,
		Threads: threads,
		Ops:     int64(opsPerThread * (producers + consumers)),
		Elapsed: time.Since(start),
	}
}

// RunBounded splits threads into producer and consumer halves exactly as
// RunQueue does, but against a BlockingQueuePool: producers and
// consumers never check for ErrEmpty, since the bounded queue suspends
// instead of failing when full or empty.
func RunBounded(name string, newPool func() BlockingQueuePool, threads, opsPerThread int) Result {
	pool := newPool()

	half := threads / 2
	if half == 0 {
		half = 1
	}
	producers := half
	consumers := threads - half
	if consumers == 0 {
		consumers = 1
	}

	gp := pond.New(producers+consumers, producers+consumers)
	start := time.Now()
	for t := 0; t < producers; t++ {
		id := t
		gp.Submit(func() {
			q := pool.Worker()
			for i := 0; i < opsPerThread; i++ {
				q.Enqueue(int64(id*opsPerThread + i))
			}
		})
	}
	for t := 0; t < consumers; t++ {
		gp.Submit(func() {
			q := pool.Worker()
			for i := 0; i < opsPerThread; i++ {
				q.Dequeue()
			}
		})
	}
	gp.StopAndWait()

	return Result{
		Name:    name,
		Threads: threads,
		Ops:     int64(opsPerThread * (producers + consumers)),
		Elapsed: time.Since(start),
	}
}

// ContentionThreads and ContentionOpsPerThread fix the -contention mode's
// workload: 8 threads released simultaneously, each running 5000
// push+pop pairs against one shared Treiber stack.
const (
	ContentionThreads      = 8
	ContentionOpsPerThread = 5000
)

// RunContention holds every worker at a readiness barrier, releases them
// all at once, and reports how long the burst took.
func RunContention() time.Duration {
	s := containers.NewTreiberStack()

	var ready sync.WaitGroup
	ready.Add(ContentionThreads)
	var release atomic.Bool
	var workers sync.WaitGroup
	workers.Add(ContentionThreads)

	for t := 0; t < ContentionThreads; t++ {
		go func() {
			defer workers.Done()
			ready.Done()
			for !release.Load() {
				runtime.Gosched()
			}
			for i := 0; i < ContentionOpsPerThread; i++ {
				s.Push(int64(i))
				_, _ = s.Pop()
			}
		}()
	}

	ready.Wait()
	start := time.Now()
	release.Store(true)
	workers.Wait()
	return time.Since(start)
}
