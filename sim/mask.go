package sim

import "fmt"

// Mask is the collision view of a board: one flag per cell plus a floor row below
// the last board row that is always set. It only changes through rebuild, which the
// engine runs after every commit and clear pass.
type Mask struct {
	width  int
	height int
	rows   [][]bool
}

// NewMask creates a mask for a board with the given playable columns and rows.
func NewMask(columns, rows int) *Mask {
	m := &Mask{
		width:  columns + 2,
		height: rows,
		rows:   make([][]bool, rows+1),
	}
	for y := range m.rows {
		m.rows[y] = make([]bool, m.width)
	}
	for x := range m.rows[rows] {
		m.rows[rows][x] = true
	}
	return m
}

// rebuild recomputes every non-floor row from board occupancy.
func (m *Mask) rebuild(b *Board) {
	if b.width != m.width || b.height != m.height {
		panic(fmt.Sprintf("sim: mask %dx%d does not match board %dx%d", m.width, m.height, b.width, b.height))
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.rows[y][x] = b.cells[y][x].Occupied
		}
	}
}

// At reports whether (x, y) is occupied. y may equal the board height (the floor).
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y > m.height {
		panic(fmt.Sprintf("sim: mask index (%d, %d) out of range %dx%d", x, y, m.width, m.height+1))
	}
	return m.rows[y][x]
}

// Contains reports whether every cell lies in a playable column and a board row.
func (m *Mask) Contains(cells []Point) bool {
	for _, c := range cells {
		if c.X < 1 || c.X > m.width-2 || c.Y < 0 || c.Y >= m.height {
			return false
		}
	}
	return true
}

// Width includes the border columns. Height excludes the floor row.
func (m *Mask) Width() int { return m.width }
func (m *Mask) Height() int { return m.height }

// Row returns a copy of row y, which may be the floor row.
func (m *Mask) Row(y int) []bool {
	m.At(0, y)
	return append([]bool(nil), m.rows[y]...)
}

// Clone returns a deep copy of the mask, floor row included.
func (m *Mask) Clone() *Mask {
	rows := make([][]bool, len(m.rows))
	for y, row := range m.rows {
		rows[y] = append([]bool(nil), row...)
	}
	return &Mask{width: m.width, height: m.height, rows: rows}
}
