// Package containers collects seven concurrent stack/queue implementations
// and one blocking bounded queue, each built on a different synchronization
// discipline: a single global mutex, lock-free CAS (Treiber, Michael &
// Scott), randomized elimination, flat combining, and epoch-counted
// condition signalling.
//
// Every container carries int64 values. None of them retain element type
// genericity — that tradeoff buys the lock-free variants a simpler node
// layout and keeps the flat-combining slot arrays fixed-size.
package containers
