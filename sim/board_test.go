package sim_test

import (
	"testing"

	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(board *sim.Board, cells ...sim.Point) {
	for _, c := range cells {
		sim.SetCell(board, c.X, c.Y, sim.Cell{Occupied: true, Glyph: sim.DefaultGlyph})
	}
}

func fillRow(board *sim.Board, y int) {
	for x := 1; x <= board.Columns(); x++ {
		fill(board, sim.Point{X: x, Y: y})
	}
}

func assertMaskMatches(t *testing.T, board *sim.Board, mask *sim.Mask) {
	t.Helper()
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			assert.Equal(t, board.At(x, y).Occupied, mask.At(x, y), "cell (%d, %d)", x, y)
		}
	}
	for x := 0; x < mask.Width(); x++ {
		assert.True(t, mask.At(x, board.Height()), "floor at column %d", x)
	}
}

func TestNewBoard(t *testing.T) {
	board := sim.NewBoard(10, 20, "")
	assert.Equal(t, 12, board.Width())
	assert.Equal(t, 20, board.Height())
	assert.Equal(t, 10, board.Columns())
	assert.Equal(t, sim.DefaultGlyph, board.Glyph())
	assert.Zero(t, board.Occupied())
}

func TestBoardIndexOutOfRangePanics(t *testing.T) {
	board := sim.NewBoard(10, 20, "")
	assert.Panics(t, func() { board.At(12, 0) })
	assert.Panics(t, func() { board.At(0, 20) })
	assert.Panics(t, func() { sim.SetCell(board, -1, 3, sim.Cell{}) })
	assert.NotPanics(t, func() { board.At(11, 19) })
}

func TestBoardCommit(t *testing.T) {
	board := sim.NewBoard(10, 20, "##")
	p := sim.NewPiece(sim.KindS, sim.Point{X: 3, Y: 7})
	board.Commit(p)

	assert.Equal(t, 4, board.Occupied())
	for _, c := range p.Cells() {
		assert.Equal(t, sim.Cell{Occupied: true, Glyph: "##"}, board.At(c.X, c.Y))
	}
}

func TestBoardCommitOverwrites(t *testing.T) {
	board := sim.NewBoard(10, 20, "")
	fill(board, sim.Point{X: 4, Y: 1})
	board.Commit(sim.NewPiece(sim.KindI, sim.Point{X: 4, Y: 1}))
	assert.Equal(t, 4, board.Occupied())
}

func TestBoardCommitOutsidePanics(t *testing.T) {
	board := sim.NewBoard(10, 20, "")
	p := sim.NewPiece(sim.KindI, sim.Point{X: 10, Y: 1})
	assert.Panics(t, func() { board.Commit(p) })
}

func TestClearCompletedRows(t *testing.T) {
	t.Run("nothing full", func(t *testing.T) {
		board := sim.NewBoard(10, 6, "")
		fill(board, sim.Point{X: 1, Y: 5}, sim.Point{X: 2, Y: 5})
		before := board.Rows()

		assert.Zero(t, board.ClearCompletedRows())
		assert.Equal(t, before, board.Rows())
	})

	t.Run("single row", func(t *testing.T) {
		board := sim.NewBoard(10, 6, "")
		fill(board, sim.Point{X: 7, Y: 2}, sim.Point{X: 2, Y: 3}, sim.Point{X: 5, Y: 3}, sim.Point{X: 1, Y: 5})
		fillRow(board, 4)
		before := board.Rows()

		require.Equal(t, 1, board.ClearCompletedRows())
		after := board.Rows()

		for y := 1; y <= 4; y++ {
			assert.Equal(t, before[y-1], after[y], "row %d shifted from row %d", y, y-1)
		}
		assert.Equal(t, make([]sim.Cell, board.Width()), after[0])
		assert.Equal(t, before[5], after[5], "rows below are untouched")

		assert.True(t, board.At(7, 3).Occupied)
		assert.True(t, board.At(2, 4).Occupied)
		assert.True(t, board.At(5, 4).Occupied)
		assert.False(t, board.At(7, 2).Occupied)
		assert.Equal(t, 4, board.Occupied())
	})

	t.Run("adjacent rows in one sweep", func(t *testing.T) {
		board := sim.NewBoard(10, 6, "")
		fill(board, sim.Point{X: 3, Y: 3})
		fillRow(board, 4)
		fillRow(board, 5)

		assert.Equal(t, 2, board.ClearCompletedRows())
		assert.Equal(t, 1, board.Occupied())
		assert.True(t, board.At(3, 5).Occupied)
	})

	t.Run("separated rows", func(t *testing.T) {
		board := sim.NewBoard(10, 6, "")
		fillRow(board, 1)
		fill(board, sim.Point{X: 9, Y: 2})
		fillRow(board, 3)

		assert.Equal(t, 2, board.ClearCompletedRows())
		assert.Equal(t, 1, board.Occupied())
		assert.True(t, board.At(9, 3).Occupied)
	})

	t.Run("border columns do not count", func(t *testing.T) {
		board := sim.NewBoard(10, 6, "")
		for x := 0; x < board.Width(); x++ {
			if x != 10 {
				fill(board, sim.Point{X: x, Y: 5})
			}
		}

		assert.Zero(t, board.ClearCompletedRows())
	})
}

func TestMaskRebuild(t *testing.T) {
	board := sim.NewBoard(10, 20, "")
	mask := sim.NewMask(10, 20)
	assertMaskMatches(t, board, mask)

	rng := sim.NewRand(7)
	for i := 0; i < 60; i++ {
		fill(board, sim.Point{X: rng.IntN(board.Width()), Y: rng.IntN(board.Height())})
	}
	sim.RebuildMask(mask, board)
	assertMaskMatches(t, board, mask)

	fillRow(board, 19)
	board.ClearCompletedRows()
	sim.RebuildMask(mask, board)
	assertMaskMatches(t, board, mask)
}

func TestMaskRebuildSizeMismatchPanics(t *testing.T) {
	mask := sim.NewMask(10, 20)
	assert.Panics(t, func() { sim.RebuildMask(mask, sim.NewBoard(10, 21, "")) })
}

func TestMaskContains(t *testing.T) {
	mask := sim.NewMask(10, 20)
	assert.True(t, mask.Contains([]sim.Point{{1, 0}, {10, 19}}))
	assert.False(t, mask.Contains([]sim.Point{{0, 5}}))
	assert.False(t, mask.Contains([]sim.Point{{11, 5}}))
	assert.False(t, mask.Contains([]sim.Point{{5, 20}}))
	assert.False(t, mask.Contains([]sim.Point{{5, -1}}))
}

func TestMaskFloorRow(t *testing.T) {
	mask := sim.NewMask(10, 20)
	floor := mask.Row(20)
	assert.Len(t, floor, 12)
	for _, v := range floor {
		assert.True(t, v)
	}
	assert.Panics(t, func() { mask.At(3, 21) })
}
