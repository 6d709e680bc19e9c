package sim

import "fmt"

// Kind identifies one of the five piece shapes.
type Kind uint8

const (
	KindI Kind = iota + 1
	KindJ
	KindO
	KindS
	KindT
)

// Kinds lists every spawnable kind in table order.
var Kinds = [...]Kind{KindI, KindJ, KindO, KindS, KindT}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Rotation is an orientation in degrees: 0, 90, 180 or 270.
type Rotation int

// Rotations lists the four orientations in clockwise order.
var Rotations = [...]Rotation{0, 90, 180, 270}

// Add returns r turned by delta degrees, normalized into [0, 360).
func (r Rotation) Add(delta int) Rotation {
	return Rotation(((int(r)+delta)%360 + 360) % 360)
}

// Segment is a horizontal run of cells relative to a piece's anchor.
type Segment struct {
	Row int
	Col int
	Len int
}

// layouts holds every orientation as hand-authored data. The shapes do not share a
// common center, so they are not derived from one another.
var layouts = map[Kind]map[Rotation][]Segment{
	KindI: {
		0:   {{0, 0, 4}},
		90:  {{0, 0, 1}, {1, 0, 1}, {2, 0, 1}, {3, 0, 1}},
		180: {{0, 0, 4}},
		270: {{0, 0, 1}, {1, 0, 1}, {2, 0, 1}, {3, 0, 1}},
	},
	KindJ: {
		0:   {{0, 0, 3}, {1, 2, 1}},
		90:  {{0, 0, 2}, {1, 0, 1}, {2, 0, 1}},
		180: {{0, 0, 1}, {1, 0, 3}},
		270: {{0, 0, 1}, {1, 0, 1}, {2, 0, 2}},
	},
	KindO: {
		0:   {{0, 0, 2}, {1, 0, 2}},
		90:  {{0, 0, 2}, {1, 0, 2}},
		180: {{0, 0, 2}, {1, 0, 2}},
		270: {{0, 0, 2}, {1, 0, 2}},
	},
	KindS: {
		0:   {{0, 0, 2}, {1, 1, 2}},
		90:  {{0, 0, 1}, {1, -1, 2}, {2, -1, 1}},
		180: {{0, 0, 2}, {1, 1, 2}},
		270: {{0, 0, 1}, {1, -1, 2}, {2, -1, 1}},
	},
	KindT: {
		0:   {{0, -1, 3}, {1, 0, 1}},
		90:  {{0, 1, 1}, {1, 1, 2}, {2, 1, 1}},
		180: {{0, 0, 1}, {1, -1, 3}},
		270: {{0, 0, 1}, {1, -1, 2}, {2, 0, 1}},
	},
}

// Layout returns the segments of kind at rotation. The returned slice is shared and
// must not be modified. Unknown combinations are a table defect and panic.
func Layout(kind Kind, rotation Rotation) []Segment {
	segments, ok := layouts[kind][rotation]
	if !ok {
		panic(fmt.Sprintf("sim: no layout for kind %d at rotation %d", kind, rotation))
	}
	return segments
}

// ColumnExtent returns the smallest and largest column offsets any layout reaches.
func ColumnExtent() (minCol, maxCol int) {
	first := true
	for _, kind := range Kinds {
		for _, rotation := range Rotations {
			for _, seg := range Layout(kind, rotation) {
				lo, hi := seg.Col, seg.Col+seg.Len-1
				if first || lo < minCol {
					minCol = lo
				}
				if first || hi > maxCol {
					maxCol = hi
				}
				first = false
			}
		}
	}
	return minCol, maxCol
}
