// Command containers drives the concurrent container library the way
// original_source/main.cpp's test binary did: no arguments runs the unit
// suite, -bench sweeps every stack and queue across thread counts
// {1,2,4,8,16}, -contention hammers a single Treiber stack from 8
// simultaneously released threads, and -bench-<name> benchmarks one
// container in isolation.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	containers "github.com/prudhvibelide/concurrent-containers"
	"github.com/prudhvibelide/concurrent-containers/internal/bench"
)

var namedBenchmarks = []struct {
	flag string
	name string
	run  func(threads int) bench.Result
}{
	{"bench-sgl-stack", "SGL Stack", func(t int) bench.Result {
		return bench.RunStack("SGL Stack", func() bench.StackPool { return bench.SharedStack(containers.NewSGLStack()) }, t, bench.OpsPerThread)
	}},
	{"bench-treiber", "Treiber Stack", func(t int) bench.Result {
		return bench.RunStack("Treiber Stack", func() bench.StackPool { return bench.SharedStack(containers.NewTreiberStack()) }, t, bench.OpsPerThread)
	}},
	{"bench-elimination", "Elimination Stack", func(t int) bench.Result {
		return bench.RunStack("Elimination Stack", func() bench.StackPool { return bench.SharedStack(containers.NewElimStack()) }, t, bench.OpsPerThread)
	}},
	{"bench-fc-stack", "FC Stack", func(t int) bench.Result {
		return bench.RunStack("FC Stack", func() bench.StackPool { return bench.FCStackPool(containers.NewFCStack()) }, t, bench.OpsPerThread)
	}},
	{"bench-sgl-queue", "SGL Queue", func(t int) bench.Result {
		return bench.RunQueue("SGL Queue", func() bench.QueuePool { return bench.SharedQueue(containers.NewSGLQueue()) }, t, bench.OpsPerThread)
	}},
	{"bench-msqueue", "M&S Queue", func(t int) bench.Result {
		return bench.RunQueue("M&S Queue", func() bench.QueuePool { return bench.SharedQueue(containers.NewMSQueue()) }, t, bench.OpsPerThread)
	}},
	{"bench-fc-queue", "FC Queue", func(t int) bench.Result {
		return bench.RunQueue("FC Queue", func() bench.QueuePool { return bench.FCQueuePool(containers.NewFCQueue()) }, t, bench.OpsPerThread)
	}},
	{"bench-bounded-queue", "Bounded Queue", func(t int) bench.Result {
		return bench.RunBounded("Bounded Queue", func() bench.BlockingQueuePool { return bench.SharedBlockingQueue(containers.NewBoundedQueue()) }, t, bench.OpsPerThread)
	}},
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	flags := []cli.Flag{
		&cli.BoolFlag{Name: "bench", Usage: "run all stack and queue benchmarks"},
		&cli.BoolFlag{Name: "contention", Usage: "run the 8-thread Treiber stack contention test"},
	}
	for _, nb := range namedBenchmarks {
		flags = append(flags, &cli.BoolFlag{Name: nb.flag, Usage: "benchmark " + nb.name + " only"})
	}

	app := &cli.App{
		Name:  "containers",
		Usage: "exercise the concurrent stack and queue library",
		Flags: flags,
		Action: func(c *cli.Context) error {
			for _, nb := range namedBenchmarks {
				if c.Bool(nb.flag) {
					return runNamedBenchmark(log, nb.name, nb.run)
				}
			}
			if c.Bool("bench") {
				return runAllBenchmarks(log)
			}
			if c.Bool("contention") {
				return runContentionMode(log)
			}
			return runUnitChecks(log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func runAllBenchmarks(log zerolog.Logger) error {
	log.Info().Msg("=== stack benchmarks ===")
	for _, threads := range bench.ThreadCounts {
		logResult(log, bench.RunStack("SGL Stack", func() bench.StackPool { return bench.SharedStack(containers.NewSGLStack()) }, threads, bench.OpsPerThread))
		logResult(log, bench.RunStack("Treiber Stack", func() bench.StackPool { return bench.SharedStack(containers.NewTreiberStack()) }, threads, bench.OpsPerThread))
		logResult(log, bench.RunStack("Elimination Stack", func() bench.StackPool { return bench.SharedStack(containers.NewElimStack()) }, threads, bench.OpsPerThread))
		logResult(log, bench.RunStack("FC Stack", func() bench.StackPool { return bench.FCStackPool(containers.NewFCStack()) }, threads, bench.OpsPerThread))
	}

	log.Info().Msg("=== queue benchmarks ===")
	for _, threads := range bench.ThreadCounts {
		logResult(log, bench.RunQueue("SGL Queue", func() bench.QueuePool { return bench.SharedQueue(containers.NewSGLQueue()) }, threads, bench.OpsPerThread))
		logResult(log, bench.RunQueue("M&S Queue", func() bench.QueuePool { return bench.SharedQueue(containers.NewMSQueue()) }, threads, bench.OpsPerThread))
		logResult(log, bench.RunQueue("FC Queue", func() bench.QueuePool { return bench.FCQueuePool(containers.NewFCQueue()) }, threads, bench.OpsPerThread))
		logResult(log, bench.RunBounded("Bounded Queue", func() bench.BlockingQueuePool { return bench.SharedBlockingQueue(containers.NewBoundedQueue()) }, threads, bench.OpsPerThread))
	}
	return nil
}

func runNamedBenchmark(log zerolog.Logger, name string, run func(int) bench.Result) error {
	log.Info().Str("container", name).Msg("=== benchmark ===")
	for _, threads := range bench.ThreadCounts {
		logResult(log, run(threads))
	}
	return nil
}

func runContentionMode(log zerolog.Logger) error {
	log.Info().
		Int("threads", bench.ContentionThreads).
		Int("ops_per_thread", bench.ContentionOpsPerThread).
		Msg("=== contention test ===")
	elapsed := bench.RunContention()
	log.Info().Dur("elapsed", elapsed).Msg("all threads competed simultaneously")
	return nil
}

func logResult(log zerolog.Logger, r bench.Result) {
	log.Info().
		Str("container", r.Name).
		Int("threads", r.Threads).
		Int64("ops", r.Ops).
		Dur("elapsed", r.Elapsed).
		Str("throughput", fmt.Sprintf("%.0f ops/s", r.Throughput())).
		Msg("result")
}
