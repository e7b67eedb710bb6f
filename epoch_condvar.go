package containers

import "sync"

// EpochCond is a condition variable that filters spurious wakeups by
// tracking a generation counter instead of relying solely on the
// underlying sync.Cond. A waiter that captured epoch e only returns once
// the epoch has advanced past e, regardless of how many times the
// underlying primitive wakes it for an unrelated reason.
//
// Signal and Broadcast must be called with the associated lock held, and
// Wait must be called with it held too — the same contract sync.Cond
// itself imposes.
type EpochCond struct {
	cond  *sync.Cond
	epoch uint64
}

// NewEpochCond returns a condition variable associated with l.
func NewEpochCond(l sync.Locker) *EpochCond {
	return &EpochCond{cond: sync.NewCond(l)}
}

// Wait releases the lock, blocks until the epoch moves past the value
// captured on entry, then reacquires the lock. As with sync.Cond.Wait,
// the caller must re-check its own predicate after Wait returns — Wait
// only guarantees the epoch advanced, not that whatever condition
// motivated the signal still holds once the lock is reacquired.
func (c *EpochCond) Wait() {
	mine := c.epoch
	for c.epoch == mine {
		c.cond.Wait()
	}
}

// Signal increments the epoch and wakes at most one waiter.
func (c *EpochCond) Signal() {
	c.epoch++
	c.cond.Signal()
}

// Broadcast increments the epoch and wakes every current waiter.
func (c *EpochCond) Broadcast() {
	c.epoch++
	c.cond.Broadcast()
}
