package sim

import "log/slog"

// commandStage applies the tick's command to every active piece.
type commandStage struct{}

func (commandStage) Execute(frame *TickFrame) {
	for _, p := range frame.Pieces.Ordered() {
		switch frame.Command {
		case CommandMoveLeft:
			p.Move(-1, 0, frame.Mask)
		case CommandMoveRight:
			p.Move(1, 0, frame.Mask)
		case CommandRotate:
			p.Rotate(RotateStep, frame.Mask)
		}
	}
}

type gravityStage struct {
	every uint64
}

func (s gravityStage) Execute(frame *TickFrame) {
	if frame.Tick%s.every != 0 {
		return
	}
	frame.Report.Gravity = true
	for _, p := range frame.Pieces.Ordered() {
		p.Move(0, 1, frame.Mask)
	}
}

type lockStage struct {
	logger *slog.Logger
}

func (s lockStage) Execute(frame *TickFrame) {
	for _, p := range frame.Pieces.Ordered() {
		if !p.Locked() {
			continue
		}
		frame.Report.Locked = append(frame.Report.Locked, p.ID())
		s.logger.Debug("piece locked", "id", p.ID(), "kind", p.Kind(), "x", p.Anchor().X, "y", p.Anchor().Y)
	}
	frame.Report.AllLocked = frame.Pieces.AllLocked()
}

type commitStage struct{}

func (commitStage) Execute(frame *TickFrame) {
	for _, p := range frame.Pieces.Ordered() {
		if !p.Locked() {
			continue
		}
		frame.Board.Commit(p)
		frame.Commands.Remove(p.ID())
		frame.Report.Committed++
	}
}

type clearStage struct {
	logger *slog.Logger
}

func (s clearStage) Execute(frame *TickFrame) {
	n := frame.Board.ClearCompletedRows()
	if n > 0 {
		s.logger.Debug("rows cleared", "tick", frame.Tick, "count", n)
	}
	frame.Report.RowsCleared = n
}

type maskStage struct{}

func (maskStage) Execute(frame *TickFrame) {
	frame.Mask.rebuild(frame.Board)
}

type spawnStage struct {
	spawner *Spawner
	logger  *slog.Logger
}

func (s spawnStage) Execute(frame *TickFrame) {
	if frame.Pieces.Len() > 0 {
		return
	}
	p := s.spawner.Spawn()
	frame.Commands.Spawn(p)
	view := p.View()
	frame.Report.Spawned = &view
	frame.Commands.Defer(func() {
		s.logger.Debug("piece spawned", "id", p.ID(), "kind", p.Kind(), "x", p.Anchor().X, "active", frame.Pieces.Len())
	})
}
