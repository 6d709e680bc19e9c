package sim

import "log/slog"

// Engine owns the board, the occupancy mask and the active pieces, and advances
// them one tick at a time. It is not safe for concurrent use.
type Engine struct {
	cfg       Config
	logger    *slog.Logger
	board     *Board
	mask      *Mask
	pieces    *PieceSet
	commands  *Commands
	spawner   *Spawner
	scheduler *Scheduler
	tick      uint64
}

// NewEngine validates cfg, builds an empty board and spawns the first piece.
func NewEngine(cfg Config, rng Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.logger()
	e := &Engine{
		cfg:      cfg,
		logger:   logger,
		board:    NewBoard(cfg.Columns, cfg.Rows, cfg.Glyph),
		mask:     NewMask(cfg.Columns, cfg.Rows),
		pieces:   newPieceSet(),
		commands: newCommands(),
		spawner:  NewSpawner(rng, cfg.Columns),
	}

	e.scheduler = NewScheduler()
	e.scheduler.Register(&commandStage{})
	e.scheduler.Register(&gravityStage{every: uint64(cfg.GravityEvery)})
	e.scheduler.Register(&lockStage{logger: logger})
	e.scheduler.Register(&commitStage{})
	e.scheduler.Register(&clearStage{logger: logger})
	e.scheduler.Register(&maskStage{})
	e.scheduler.Register(&spawnStage{spawner: e.spawner, logger: logger})

	e.mask.rebuild(e.board)
	first := e.spawner.Spawn()
	e.pieces.Add(first)
	logger.Debug("engine started",
		"columns", cfg.Columns,
		"rows", cfg.Rows,
		"gravity_every", cfg.GravityEvery,
		"first_kind", first.Kind(),
	)

	return e, nil
}

// Tick advances the simulation by one step using cmd. CommandQuit and unknown
// commands apply nothing; stopping is the caller's job.
func (e *Engine) Tick(cmd Command) TickReport {
	e.tick++
	frame := newTickFrame(e.tick, cmd, e)
	e.scheduler.Once(frame)
	return *frame.Report
}

func (e *Engine) Config() Config { return e.cfg }
func (e *Engine) Ticks() uint64 { return e.tick }
func (e *Engine) Stats() SchedulerStats { return e.scheduler.Stats() }

// Board returns a copy of the committed board. Changes to it do not reach the engine.
func (e *Engine) Board() *Board { return e.board.Clone() }

// Mask returns a copy of the occupancy mask.
func (e *Engine) Mask() *Mask { return e.mask.Clone() }

// Pieces returns views of the active pieces in spawn order.
func (e *Engine) Pieces() []PieceView {
	ordered := e.pieces.Ordered()
	views := make([]PieceView, len(ordered))
	for i, p := range ordered {
		views[i] = p.View()
	}
	return views
}

// Snapshot copies everything a renderer needs.
func (e *Engine) Snapshot(last TickReport) Snapshot {
	return Snapshot{
		Tick:   e.tick,
		Width:  e.board.Width(),
		Height: e.board.Height(),
		Cells:  e.board.Rows(),
		Pieces: e.Pieces(),
		Report: last,
	}
}

// Snapshot is a read-only copy of engine state for one tick.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int
	// Cells is indexed [y][x] and includes the border columns.
	Cells  [][]Cell
	Pieces []PieceView
	Report TickReport
}

// Active reports whether an uncommitted piece covers (x, y).
func (s Snapshot) Active(x, y int) bool {
	for _, p := range s.Pieces {
		for _, c := range p.Cells {
			if c.X == x && c.Y == y {
				return true
			}
		}
	}
	return false
}

// Border reports whether column x is a border column.
func (s Snapshot) Border(x int) bool {
	return x == 0 || x == s.Width-1
}
