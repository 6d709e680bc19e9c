package sim

import "testing"

func pieceWithID(id PieceID, kind Kind) *Piece {
	p := NewPiece(kind, Point{X: 4, Y: 1})
	p.id = id
	return p
}

func TestCommandsFlush(t *testing.T) {
	t.Run("empty buffer", func(t *testing.T) {
		commands := newCommands()
		if commands.Pending() {
			t.Error("expected nothing pending")
		}
		pieces := newPieceSet()
		commands.Flush(pieces)
		if pieces.Len() != 0 {
			t.Errorf("expected empty set, got %d", pieces.Len())
		}
	})

	t.Run("removes before spawns before defers", func(t *testing.T) {
		pieces := newPieceSet()
		pieces.Add(pieceWithID(1, KindI))

		commands := newCommands()
		var seen int
		commands.Defer(func() { seen = pieces.Len() })
		commands.Spawn(pieceWithID(2, KindJ))
		commands.Remove(1)
		if !commands.Pending() {
			t.Fatal("expected pending commands")
		}

		commands.Flush(pieces)

		if _, ok := pieces.Get(1); ok {
			t.Error("expected piece 1 removed")
		}
		if _, ok := pieces.Get(2); !ok {
			t.Error("expected piece 2 added")
		}
		if seen != 1 {
			t.Errorf("expected defer to see 1 piece, got %d", seen)
		}
		if commands.Pending() {
			t.Error("expected buffer reset after flush")
		}
	})

	t.Run("remove and respawn same id", func(t *testing.T) {
		pieces := newPieceSet()
		pieces.Add(pieceWithID(3, KindI))

		commands := newCommands()
		commands.Spawn(pieceWithID(3, KindT))
		commands.Remove(3)
		commands.Flush(pieces)

		p, ok := pieces.Get(3)
		if !ok || p.Kind() != KindT {
			t.Errorf("expected respawned T piece, got %v %v", p, ok)
		}
	})
}

func TestPieceSet(t *testing.T) {
	pieces := newPieceSet()
	if !pieces.AllLocked() {
		t.Error("expected empty set to count as all locked")
	}

	for _, id := range []PieceID{5, 2, 9, 1} {
		pieces.Add(pieceWithID(id, KindO))
	}

	ordered := pieces.Ordered()
	want := []PieceID{1, 2, 5, 9}
	for i, p := range ordered {
		if p.ID() != want[i] {
			t.Errorf("position %d: expected id %d, got %d", i, want[i], p.ID())
		}
	}

	if pieces.AllLocked() {
		t.Error("expected unlocked pieces")
	}
	for _, p := range ordered {
		p.locked = true
	}
	if !pieces.AllLocked() {
		t.Error("expected all locked")
	}

	pieces.Remove(5)
	if pieces.Len() != 3 {
		t.Errorf("expected 3 pieces, got %d", pieces.Len())
	}
}
