package main

import (
	"fmt"

	"github.com/rs/zerolog"

	containers "github.com/prudhvibelide/concurrent-containers"
)

// runUnitChecks reproduces the -no-argument mode of the original
// container test suite: a basic single-threaded correctness pass over
// each of the seven stacks and queues plus a one-producer/one-consumer
// pass over the bounded queue, logged one line per container. It is not
// a substitute for `go test` — it's the CLI-visible smoke test spec.md's
// external interface section describes.
func runUnitChecks(log zerolog.Logger) error {
	checks := []struct {
		name string
		run  func() error
	}{
		{"sgl-stack", checkSGLStack},
		{"sgl-queue", checkSGLQueue},
		{"treiber", checkTreiber},
		{"msqueue", checkMSQueue},
		{"elimination", checkElimination},
		{"fc-stack", checkFCStack},
		{"fc-queue", checkFCQueue},
		{"bounded-queue", checkBoundedQueue},
	}

	for _, c := range checks {
		if err := c.run(); err != nil {
			log.Error().Str("container", c.name).Err(err).Msg("FAIL")
			return err
		}
		log.Info().Str("container", c.name).Msg("PASS")
	}
	return nil
}

func checkSGLStack() error {
	s := containers.NewSGLStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	return expectLIFO(s.Pop, s.Pop, s.Pop)
}

func checkSGLQueue() error {
	q := containers.NewSGLQueue()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	return expectFIFO(q.Dequeue, q.Dequeue, q.Dequeue)
}

func checkTreiber() error {
	s := containers.NewTreiberStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if err := expectLIFO(s.Pop, s.Pop, s.Pop); err != nil {
		return err
	}
	if _, err := s.Pop(); err != containers.ErrEmpty {
		return fmt.Errorf("expected empty error, got %v", err)
	}
	return nil
}

func checkMSQueue() error {
	q := containers.NewMSQueue()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	if err := expectFIFO(q.Dequeue, q.Dequeue, q.Dequeue); err != nil {
		return err
	}
	if _, err := q.Dequeue(); err != containers.ErrEmpty {
		return fmt.Errorf("expected empty error, got %v", err)
	}
	return nil
}

func checkElimination() error {
	s := containers.NewElimStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	return expectLIFO(s.Pop, s.Pop, s.Pop)
}

func checkFCStack() error {
	s := containers.NewFCStack()
	h := s.NewHandle()
	h.Push(1)
	h.Push(2)
	h.Push(3)
	return expectLIFO(h.Pop, h.Pop, h.Pop)
}

func checkFCQueue() error {
	q := containers.NewFCQueue()
	h := q.NewHandle()
	h.Enqueue(1)
	h.Enqueue(2)
	h.Enqueue(3)
	return expectFIFO(h.Dequeue, h.Dequeue, h.Dequeue)
}

// checkBoundedQueue runs the one-producer/one-consumer smoke spec.md's
// external interface section names: 50 items in, 50 items out.
func checkBoundedQueue() error {
	const n = 50
	q := containers.NewBoundedQueue()
	done := make(chan error, 1)

	go func() {
		for i := 0; i < n; i++ {
			q.Enqueue(int64(i))
		}
	}()
	go func() {
		for i := 0; i < n; i++ {
			if v := q.Dequeue(); v != int64(i) {
				done <- fmt.Errorf("expected %d, got %d", i, v)
				return
			}
		}
		done <- nil
	}()

	return <-done
}

func expectLIFO(pop1, pop2, pop3 func() (int64, error)) error {
	return expectSequence([]func() (int64, error){pop1, pop2, pop3}, []int64{3, 2, 1})
}

func expectFIFO(deq1, deq2, deq3 func() (int64, error)) error {
	return expectSequence([]func() (int64, error){deq1, deq2, deq3}, []int64{1, 2, 3})
}

func expectSequence(ops []func() (int64, error), want []int64) error {
	for i, op := range ops {
		v, err := op()
		if err != nil {
			return fmt.Errorf("op %d: unexpected error %w", i, err)
		}
		if v != want[i] {
			return fmt.Errorf("op %d: expected %d, got %d", i, want[i], v)
		}
	}
	return nil
}
