package sim

import "fmt"

// DefaultGlyph is drawn for every committed cell.
const DefaultGlyph = "[ ]"

// Cell is one board square. Its position is its index in the grid.
type Cell struct {
	Occupied bool
	Glyph    string
}

// Board is the grid of committed cells. Columns 0 and Width()-1 are borders.
type Board struct {
	width  int
	height int
	glyph  string
	cells  [][]Cell
}

// NewBoard creates an empty board with the given number of playable columns and rows.
// Two border columns are added around the playable ones.
func NewBoard(columns, rows int, glyph string) *Board {
	if glyph == "" {
		glyph = DefaultGlyph
	}
	b := &Board{
		width:  columns + 2,
		height: rows,
		glyph:  glyph,
		cells:  make([][]Cell, rows),
	}
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
	}
	return b
}

func (b *Board) Width() int { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Columns() int { return b.width - 2 }
func (b *Board) Glyph() string { return b.glyph }

// At returns the cell at (x, y). Out of range coordinates panic.
func (b *Board) At(x, y int) Cell {
	b.check(x, y)
	return b.cells[y][x]
}

// set overwrites the cell at (x, y). Out of range coordinates panic.
func (b *Board) set(x, y int, cell Cell) {
	b.check(x, y)
	b.cells[y][x] = cell
}

func (b *Board) check(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("sim: board index (%d, %d) out of range %dx%d", x, y, b.width, b.height))
	}
}

// Commit writes every cell of p into the board, overwriting what was there.
func (b *Board) Commit(p *Piece) {
	for _, c := range p.Cells() {
		b.set(c.X, c.Y, Cell{Occupied: true, Glyph: b.glyph})
	}
}

// ClearCompletedRows removes every row whose playable columns are all occupied and
// collapses the rows above it by one. Rows are swept once from top to bottom; rows
// that move into an already swept position are not checked again. It returns the
// number of rows removed.
func (b *Board) ClearCompletedRows() int {
	cleared := 0
	for y := 0; y < b.height; y++ {
		if !b.full(y) {
			continue
		}
		clear(b.cells[y])
		for k := y; k >= 1; k-- {
			copy(b.cells[k], b.cells[k-1])
		}
		clear(b.cells[0])
		cleared++
	}
	return cleared
}

func (b *Board) full(y int) bool {
	for x := 1; x < b.width-1; x++ {
		if !b.cells[y][x].Occupied {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, glyph: b.glyph, cells: b.Rows()}
}

// Occupied returns the number of occupied cells.
func (b *Board) Occupied() int {
	n := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.Occupied {
				n++
			}
		}
	}
	return n
}

// Rows returns a deep copy of the grid, indexed [y][x].
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.height)
	for y, row := range b.cells {
		rows[y] = append([]Cell(nil), row...)
	}
	return rows
}
