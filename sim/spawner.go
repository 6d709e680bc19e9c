package sim

import "math/rand/v2"

// SpawnRow is the anchor row of every new piece.
const SpawnRow = 1

// Rand is the source of spawn randomness. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Spawner creates new pieces at random kinds and columns.
type Spawner struct {
	rng    Rand
	minX   int
	maxX   int
	nextID PieceID
}

// NewSpawner returns a spawner for a board with the given playable columns. Anchor
// columns are drawn from the range that keeps every orientation of every kind inside
// the border columns.
func NewSpawner(rng Rand, columns int) *Spawner {
	minCol, maxCol := ColumnExtent()
	return &Spawner{
		rng:  rng,
		minX: 1 - minCol,
		maxX: columns - maxCol,
	}
}

// Range returns the inclusive anchor column range.
func (s *Spawner) Range() (lo, hi int) {
	return s.minX, s.maxX
}

// Spawn returns a new unlocked piece at rotation 0 on SpawnRow.
func (s *Spawner) Spawn() *Piece {
	kind := Kinds[s.rng.IntN(len(Kinds))]
	x := s.minX + s.rng.IntN(s.maxX-s.minX+1)

	s.nextID++
	p := NewPiece(kind, Point{X: x, Y: SpawnRow})
	p.id = s.nextID
	return p
}
