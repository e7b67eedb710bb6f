package containers

import "sync/atomic"

// treiberNode is a singly linked stack node. Once linked under a
// successful CAS, its next pointer is never mutated again — only the
// stack's top pointer moves.
type treiberNode struct {
	value int64
	next  *treiberNode
}

// TreiberStack is a lock-free LIFO stack: the only mutable shared cell is
// the atomic top pointer, advanced by compare-and-swap.
//
// Retired nodes (those unlinked by a winning Pop) are never freed by hand.
// Go's garbage collector reclaims them once no goroutine holds a reference
// — including a goroutine mid-dereference of a node another thread has
// already unlinked, which is exactly the hazard manual allocators need
// hazard pointers to avoid. Nothing extra is required here; there is no
// reclamation step to implement.
type TreiberStack struct {
	top atomic.Pointer[treiberNode]
}

// NewTreiberStack returns an empty Treiber stack.
func NewTreiberStack() *TreiberStack {
	return &TreiberStack{}
}

// Push links a new node onto the stack. Retries under contention; never
// blocks.
func (s *TreiberStack) Push(v int64) {
	n := &treiberNode{value: v}
	for {
		old := s.top.Load()
		n.next = old
		if s.top.CompareAndSwap(old, n) {
			return
		}
	}
}

// Pop unlinks and returns the top node's value, or ErrEmpty if the stack
// was observed empty. Never blocks.
func (s *TreiberStack) Pop() (int64, error) {
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
