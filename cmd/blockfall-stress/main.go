package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for piece spawns and generated input.")
	columns := flag.Int("columns", sim.DefaultColumns, "Playable board columns.")
	rows := flag.Int("rows", sim.DefaultRows, "Board rows.")
	tick := flag.Duration("tick", 0, "Time between engine ticks. Zero runs unpaced.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall stress test...")

	cfg := sim.DefaultConfig()
	cfg.Columns = *columns
	cfg.Rows = *rows
	if *tick > 0 {
		cfg.TickInterval = *tick
	}
	engine, err := sim.NewEngine(cfg, sim.NewRand(*seed))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Columns:        cfg.Columns,
		Rows:           cfg.Rows,
		Tick:           *tick,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	collector := newCollector(report)
	if *tick > 0 {
		pacer := sim.NewTickerPacer(cfg.TickInterval)
		defer pacer.Stop()
		collector.pacer = pacer
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	err = engine.Run(ctx, newRandomInput(*seed+1), sim.PacerFunc(collector.Wait), collector)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Fatalf("Simulation stopped: %v", err)
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.Stages = engine.Stats().Stages
	report.Occupied = engine.Board().Occupied()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// randomInput issues a random non-quit command on every poll.
type randomInput struct {
	rng sim.Rand
}

var inputCommands = []sim.Command{
	sim.CommandNone,
	sim.CommandMoveLeft,
	sim.CommandMoveRight,
	sim.CommandRotate,
}

func newRandomInput(seed uint64) *randomInput {
	return &randomInput{rng: sim.NewRand(seed)}
}

func (r *randomInput) Poll() sim.Command {
	return inputCommands[r.rng.IntN(len(inputCommands))]
}

// collector folds every snapshot into the report. Without a pacer it never sleeps.
type collector struct {
	report    *Report
	pacer     sim.Pacer
	tickStart time.Time
}

func newCollector(report *Report) *collector {
	return &collector{report: report, tickStart: time.Now()}
}

func (c *collector) Wait(ctx context.Context) error {
	if c.pacer != nil {
		if err := c.pacer.Wait(ctx); err != nil {
			return err
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	c.tickStart = time.Now()
	return nil
}

func (c *collector) Render(s sim.Snapshot) {
	if s.Tick == 0 {
		return
	}
	c.report.TickTime.Samples = append(c.report.TickTime.Samples, time.Since(c.tickStart))
	c.report.TotalTicks = s.Tick
	c.report.Committed += s.Report.Committed
	c.report.RowsCleared += s.Report.RowsCleared
	if s.Report.Spawned != nil {
		c.report.Spawned++
	}
}
