package sim_test

import (
	"errors"
	"testing"

	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Columns = testColumns
	cfg.Rows = testRows
	return cfg
}

func newTestEngine(t *testing.T, values ...int) *sim.Engine {
	t.Helper()
	engine, err := sim.NewEngine(testConfig(), &scriptedRand{values: values})
	require.NoError(t, err)
	return engine
}

func TestNewEngine(t *testing.T) {
	engine := newTestEngine(t, 0, 2)

	assert.Equal(t, uint64(0), engine.Ticks())
	assert.Equal(t, 12, engine.Board().Width())
	assert.Zero(t, engine.Board().Occupied())

	pieces := engine.Pieces()
	require.Len(t, pieces, 1)
	assert.Equal(t, sim.KindI, pieces[0].Kind)
	assert.Equal(t, sim.Point{X: 4, Y: 1}, pieces[0].Anchor)
	assertMaskMatches(t, engine.Board(), engine.Mask())
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	tests := map[string]func(*sim.Config){
		"too narrow":        func(c *sim.Config) { c.Columns = 4 },
		"too short":         func(c *sim.Config) { c.Rows = 3 },
		"no gravity":        func(c *sim.Config) { c.GravityEvery = 0 },
		"negative interval": func(c *sim.Config) { c.TickInterval = -1 },
		"zero interval":     func(c *sim.Config) { c.TickInterval = 0 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig()
			mutate(&cfg)
			_, err := sim.NewEngine(cfg, sim.NewRand(1))
			assert.True(t, errors.Is(err, sim.ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestEngineGravityCadence(t *testing.T) {
	engine := newTestEngine(t, 0, 2)

	report := engine.Tick(sim.CommandNone)
	assert.False(t, report.Gravity)
	assert.Equal(t, 1, engine.Pieces()[0].Anchor.Y)

	report = engine.Tick(sim.CommandNone)
	assert.True(t, report.Gravity)
	assert.Equal(t, 2, engine.Pieces()[0].Anchor.Y)

	engine.Tick(sim.CommandNone)
	assert.Equal(t, 2, engine.Pieces()[0].Anchor.Y)
}

func TestEngineCommands(t *testing.T) {
	engine := newTestEngine(t, 1, 2)

	report := engine.Tick(sim.CommandMoveLeft)
	assert.Equal(t, sim.CommandMoveLeft, report.Command)
	assert.Equal(t, 3, engine.Pieces()[0].Anchor.X)

	engine.Tick(sim.CommandMoveRight)
	engine.Tick(sim.CommandMoveRight)
	assert.Equal(t, 5, engine.Pieces()[0].Anchor.X)

	engine.Tick(sim.CommandRotate)
	assert.Equal(t, sim.Rotation(90), engine.Pieces()[0].Rotation)

	before := engine.Pieces()[0]
	engine.Tick(sim.Command(42))
	engine.Tick(sim.CommandQuit)
	after := engine.Pieces()[0]
	assert.Equal(t, before.Anchor.X, after.Anchor.X)
	assert.Equal(t, before.Rotation, after.Rotation)
}

func TestEngineCommitNothingLeavesBoardUnchanged(t *testing.T) {
	engine := newTestEngine(t, 0, 2)
	before := engine.Board().Rows()

	report := engine.Tick(sim.CommandNone)
	assert.Zero(t, report.Committed)
	assert.Empty(t, report.Locked)
	assert.False(t, report.AllLocked)
	assert.Nil(t, report.Spawned)
	assert.Equal(t, before, engine.Board().Rows())
}

// An I piece spawned at column 4 falls to the floor, locks on the last row and is
// committed in the same tick.
func TestEngineEndToEnd(t *testing.T) {
	engine := newTestEngine(t, 0, 2)
	first := engine.Pieces()[0]
	require.Equal(t, sim.KindI, first.Kind)
	require.Equal(t, sim.Point{X: 4, Y: 1}, first.Anchor)

	var report sim.TickReport
	for report.Committed == 0 {
		require.Less(t, engine.Ticks(), uint64(200), "piece never locked")

		pieces := engine.Pieces()
		require.Len(t, pieces, 1)
		require.Equal(t, first.ID, pieces[0].ID)
		lastY := pieces[0].Anchor.Y

		report = engine.Tick(sim.CommandNone)
		if report.Committed > 0 {
			assert.Equal(t, testRows-1, lastY, "locks on the last row")
		}
	}

	// 18 gravity steps from row 1 to row 19 on even ticks, then the locking step.
	assert.Equal(t, uint64(38), report.Tick)
	assert.Equal(t, []sim.PieceID{first.ID}, report.Locked)
	assert.True(t, report.AllLocked)
	assert.Equal(t, 1, report.Committed)
	assert.Zero(t, report.RowsCleared)

	board := engine.Board()
	for x := 0; x < board.Width(); x++ {
		assert.Equal(t, x >= 4 && x < 8, board.At(x, testRows-1).Occupied, "column %d", x)
	}
	assert.Equal(t, 4, board.Occupied())

	mask := engine.Mask()
	for x := 0; x < board.Width(); x++ {
		assert.Equal(t, board.At(x, testRows-1).Occupied, mask.At(x, testRows-1))
	}
	assertMaskMatches(t, board, mask)

	require.NotNil(t, report.Spawned)
	assert.Equal(t, sim.PieceID(2), report.Spawned.ID)
	pieces := engine.Pieces()
	require.Len(t, pieces, 1)
	assert.Equal(t, sim.PieceID(2), pieces[0].ID)
}

func TestEngineStateAccessorsReturnCopies(t *testing.T) {
	engine := newTestEngine(t, 0, 2)

	board := engine.Board()
	board.Commit(sim.NewPiece(sim.KindO, sim.Point{X: 5, Y: 10}))
	board.ClearCompletedRows()
	mask := engine.Mask()
	sim.RebuildMask(mask, board)

	assert.Zero(t, engine.Board().Occupied(), "board copy leaked into the engine")
	assert.False(t, engine.Mask().At(5, 10), "mask copy leaked into the engine")
	assert.True(t, mask.At(5, 10))

	pieces := engine.Pieces()
	pieces[0].Cells[0] = sim.Point{X: 9, Y: 9}
	assert.Equal(t, sim.Point{X: 4, Y: 1}, engine.Pieces()[0].Cells[0])

	for i := 0; i < 2; i++ {
		engine.Tick(sim.CommandNone)
	}
	assert.Equal(t, 2, engine.Pieces()[0].Anchor.Y, "the engine ignores the edited copies")
}

func TestEngineInvariantsUnderRandomPlay(t *testing.T) {
	cfg := testConfig()
	engine, err := sim.NewEngine(cfg, sim.NewRand(2024))
	require.NoError(t, err)

	input := sim.NewRand(7)
	commands := []sim.Command{sim.CommandNone, sim.CommandMoveLeft, sim.CommandMoveRight, sim.CommandRotate}

	committed, spawned := 0, 1
	for i := 0; i < 5000; i++ {
		report := engine.Tick(commands[input.IntN(len(commands))])
		committed += report.Committed
		if report.Spawned != nil {
			spawned++
		}

		pieces := engine.Pieces()
		require.Len(t, pieces, 1, "tick %d", report.Tick)
		mask := engine.Mask()
		for _, c := range pieces[0].Cells {
			require.True(t, mask.Contains([]sim.Point{c}), "tick %d: cell %v", report.Tick, c)
		}
		board := engine.Board()
		for y := 0; y < cfg.Rows; y++ {
			require.False(t, board.At(0, y).Occupied)
			require.False(t, board.At(cfg.Columns+1, y).Occupied)
		}
	}

	assertMaskMatches(t, engine.Board(), engine.Mask())
	assert.Equal(t, spawned, committed+1)
	assert.Greater(t, committed, 10)
}

func TestEngineStats(t *testing.T) {
	engine := newTestEngine(t)
	for i := 0; i < 5; i++ {
		engine.Tick(sim.CommandNone)
	}

	stats := engine.Stats()
	assert.Equal(t, int64(5), stats.Ticks)
	assert.Equal(t, 7, stats.StageCount)
	assert.Equal(t, int64(35), stats.TotalExecutions)

	names := make([]string, 0, len(stats.Stages))
	for _, stage := range stats.Stages {
		names = append(names, stage.Name)
		assert.Equal(t, int64(5), stage.ExecutionCount)
		assert.LessOrEqual(t, stage.MinDuration, stage.MaxDuration)
	}
	assert.Equal(t, []string{
		"commandStage", "gravityStage", "lockStage", "commitStage",
		"clearStage", "maskStage", "spawnStage",
	}, names)
}

func TestSnapshot(t *testing.T) {
	engine := newTestEngine(t, 0, 2)
	report := engine.Tick(sim.CommandNone)
	snap := engine.Snapshot(report)

	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, 12, snap.Width)
	assert.Equal(t, testRows, snap.Height)
	assert.Len(t, snap.Cells, testRows)
	assert.True(t, snap.Active(4, 1))
	assert.True(t, snap.Active(7, 1))
	assert.False(t, snap.Active(8, 1))
	assert.True(t, snap.Border(0))
	assert.True(t, snap.Border(11))
	assert.False(t, snap.Border(5))

	snap.Cells[5][5].Occupied = true
	assert.False(t, engine.Board().At(5, 5).Occupied, "snapshot is a copy")
}
