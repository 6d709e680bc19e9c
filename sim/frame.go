package sim

// TickFrame carries one tick's state through the stages.
type TickFrame struct {
	Tick     uint64
	Command  Command
	Board    *Board
	Mask     *Mask
	Pieces   *PieceSet
	Commands *Commands
	Report   *TickReport
}

func newTickFrame(tick uint64, cmd Command, e *Engine) *TickFrame {
	return &TickFrame{
		Tick:     tick,
		Command:  cmd,
		Board:    e.board,
		Mask:     e.mask,
		Pieces:   e.pieces,
		Commands: e.commands,
		Report:   &TickReport{Tick: tick, Command: cmd},
	}
}

// TickReport summarizes what a tick did.
type TickReport struct {
	Tick        uint64
	Command     Command
	Gravity     bool
	Locked      []PieceID
	AllLocked   bool
	Committed   int
	RowsCleared int
	Spawned     *PieceView
}
