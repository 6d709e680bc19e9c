package sim

// Hooks for the external tests. Only the engine mutates a live board or mask.

func SetCell(b *Board, x, y int, cell Cell) { b.set(x, y, cell) }

func RebuildMask(m *Mask, b *Board) { m.rebuild(b) }
