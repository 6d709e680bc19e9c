package sim

import (
	"context"
	"time"
)

// InputSource yields at most one pending command per call and never blocks.
// It returns CommandNone when nothing is pending.
type InputSource interface {
	Poll() Command
}

// Pacer waits for the next tick boundary.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Renderer receives a copy of the engine state after every tick.
type Renderer interface {
	Render(Snapshot)
}

// PacerFunc adapts a function to Pacer.
type PacerFunc func(ctx context.Context) error

func (f PacerFunc) Wait(ctx context.Context) error { return f(ctx) }

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

func (f RendererFunc) Render(s Snapshot) { f(s) }

// TickerPacer paces ticks with a time.Ticker. A pacer built with a non-positive
// interval never fires and only returns when ctx is done.
type TickerPacer struct {
	ticker *time.Ticker
}

func NewTickerPacer(interval time.Duration) *TickerPacer {
	if interval <= 0 {
		return &TickerPacer{}
	}
	return &TickerPacer{ticker: time.NewTicker(interval)}
}

func (p *TickerPacer) Wait(ctx context.Context) error {
	if p.ticker == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

func (p *TickerPacer) Stop() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

// CommandQueue buffers commands from an input goroutine for a tick loop to poll.
// Push never blocks; commands beyond the buffer size are dropped.
type CommandQueue struct {
	ch chan Command
}

func NewCommandQueue(size int) *CommandQueue {
	if size < 1 {
		size = 1
	}
	return &CommandQueue{ch: make(chan Command, size)}
}

// Push queues cmd and reports whether it was accepted.
func (q *CommandQueue) Push(cmd Command) bool {
	select {
	case q.ch <- cmd:
		return true
	default:
		return false
	}
}

// Poll returns the oldest queued command, or CommandNone.
func (q *CommandQueue) Poll() Command {
	select {
	case cmd := <-q.ch:
		return cmd
	default:
		return CommandNone
	}
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	return len(q.ch)
}

// Run drives the engine until input yields CommandQuit or pacer fails. Each tick
// polls one command, advances the engine, hands a snapshot to renderer and waits
// on pacer. Run returns nil on quit and the pacer's error otherwise.
func (e *Engine) Run(ctx context.Context, input InputSource, pacer Pacer, renderer Renderer) error {
	renderer.Render(e.Snapshot(TickReport{}))

	for {
		cmd := input.Poll()
		if cmd == CommandQuit {
			e.logger.Debug("quit requested", "tick", e.tick)
			return nil
		}

		report := e.Tick(cmd)
		renderer.Render(e.Snapshot(report))

		if err := pacer.Wait(ctx); err != nil {
			return err
		}
	}
}
