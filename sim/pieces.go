package sim

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// PieceSet holds the pieces that have not been committed to the board yet.
type PieceSet struct {
	pieces *intmap.Map[PieceID, *Piece]
}

func newPieceSet() *PieceSet {
	return &PieceSet{
		pieces: intmap.New[PieceID, *Piece](4),
	}
}

func (s *PieceSet) Add(p *Piece) {
	s.pieces.Put(p.id, p)
}

func (s *PieceSet) Remove(id PieceID) {
	s.pieces.Del(id)
}

func (s *PieceSet) Get(id PieceID) (*Piece, bool) {
	return s.pieces.Get(id)
}

func (s *PieceSet) Len() int {
	return s.pieces.Len()
}

// Ordered returns the pieces sorted by id, so every pass visits them in spawn order.
func (s *PieceSet) Ordered() []*Piece {
	out := make([]*Piece, 0, s.pieces.Len())
	s.pieces.ForEach(func(_ PieceID, p *Piece) bool {
		out = append(out, p)
		return true
	})
	slices.SortFunc(out, func(a, b *Piece) int {
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		}
		return 0
	})
	return out
}

// AllLocked reports whether every piece in the set is locked. An empty set is.
func (s *PieceSet) AllLocked() bool {
	all := true
	s.pieces.ForEach(func(_ PieceID, p *Piece) bool {
		all = p.locked
		return all
	})
	return all
}
