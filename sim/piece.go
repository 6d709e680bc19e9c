package sim

// PieceID identifies a piece for the lifetime of an engine.
type PieceID uint64

// Point is an absolute board position. Y grows downward.
type Point struct {
	X, Y int
}

// Piece is a falling piece. Once locked it never moves again.
type Piece struct {
	id       PieceID
	kind     Kind
	anchor   Point
	rotation Rotation
	segments []Segment
	locked   bool
}

// NewPiece creates an unlocked piece of kind at rotation 0 with its anchor at anchor.
func NewPiece(kind Kind, anchor Point) *Piece {
	return &Piece{
		kind:     kind,
		anchor:   anchor,
		segments: Layout(kind, 0),
	}
}

func (p *Piece) ID() PieceID { return p.id }
func (p *Piece) Kind() Kind { return p.kind }
func (p *Piece) Anchor() Point { return p.anchor }
func (p *Piece) Rotation() Rotation { return p.rotation }
func (p *Piece) Locked() bool { return p.locked }
func (p *Piece) Segments() []Segment { return p.segments }

// Cells returns the absolute cells the piece occupies, segment by segment.
func (p *Piece) Cells() []Point {
	return cellsAt(p.anchor, p.segments)
}

func cellsAt(anchor Point, segments []Segment) []Point {
	cells := make([]Point, 0, 4)
	for _, seg := range segments {
		for i := 0; i < seg.Len; i++ {
			cells = append(cells, Point{X: anchor.X + seg.Col + i, Y: anchor.Y + seg.Row})
		}
	}
	return cells
}

// Translate shifts the anchor by (dx, dy). Locked pieces are left untouched.
func (p *Piece) Translate(dx, dy int) {
	if p.locked {
		return
	}
	p.anchor.X += dx
	p.anchor.Y += dy
}

// WillCollide reports whether any column's lowest cell rests on an occupied mask cell.
// It only ever looks one row down, whatever move is being considered.
func (p *Piece) WillCollide(mask *Mask) bool {
	return restsOn(cellsAt(p.anchor, p.segments), mask)
}

func restsOn(cells []Point, mask *Mask) bool {
	lowest := make(map[int]int, 4)
	for _, c := range cells {
		if y, ok := lowest[c.X]; !ok || c.Y > y {
			lowest[c.X] = c.Y
		}
	}
	for x, y := range lowest {
		if mask.At(x, y+1) {
			return true
		}
	}
	return false
}

// Move applies a step of (dx, dy). If the piece is resting on something it locks
// instead and stays put. A step that would carry a cell off the playable area is
// dropped. Overlap with locked cells beside the piece is not checked. Move reports
// whether the anchor changed.
func (p *Piece) Move(dx, dy int, mask *Mask) bool {
	if p.locked {
		return false
	}
	if p.WillCollide(mask) {
		p.locked = true
		return false
	}
	next := Point{X: p.anchor.X + dx, Y: p.anchor.Y + dy}
	if !mask.Contains(cellsAt(next, p.segments)) {
		return false
	}
	p.Translate(dx, dy)
	return true
}

// Rotate turns the piece by delta degrees. The new orientation is rejected when it
// would rest on the mask or leave the playable area. O pieces never rotate.
func (p *Piece) Rotate(delta int, mask *Mask) bool {
	if p.locked || p.kind == KindO {
		return false
	}
	rotation := p.rotation.Add(delta)
	segments := Layout(p.kind, rotation)
	cells := cellsAt(p.anchor, segments)
	if !mask.Contains(cells) || restsOn(cells, mask) {
		return false
	}
	p.rotation = rotation
	p.segments = segments
	return true
}

// View returns a copy of the piece's public state.
func (p *Piece) View() PieceView {
	return PieceView{
		ID:       p.id,
		Kind:     p.kind,
		Rotation: p.rotation,
		Anchor:   p.anchor,
		Cells:    p.Cells(),
		Locked:   p.locked,
	}
}

// PieceView is a read-only copy of a piece handed to renderers.
type PieceView struct {
	ID       PieceID
	Kind     Kind
	Rotation Rotation
	Anchor   Point
	Cells    []Point
	Locked   bool
}
