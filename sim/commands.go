package sim

// Commands buffers changes to the active piece set made while a stage is walking it.
// The scheduler flushes the buffer after every stage.
type Commands struct {
	spawns  []*Piece
	removes []PieceID
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues a piece to be added to the active set.
func (c *Commands) Spawn(p *Piece) {
	c.spawns = append(c.spawns, p)
}

// Remove queues a piece for removal from the active set.
func (c *Commands) Remove(id PieceID) {
	c.removes = append(c.removes, id)
}

// Defer queues a function to run at flush time, after removals and spawns.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending reports whether anything is queued.
func (c *Commands) Pending() bool {
	return len(c.spawns)+len(c.removes)+len(c.defers) > 0
}

// Flush applies all queued operations to pieces and resets the buffer.
func (c *Commands) Flush(pieces *PieceSet) {
	for _, id := range c.removes {
		pieces.Remove(id)
	}

	for _, p := range c.spawns {
		pieces.Add(p)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
