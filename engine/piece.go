// Package engine implements the TetroMaster game rules: board state,
// piece movement and rotation, line clearing, randomizers, T-spin
// detection, scoring and the game state machine. It is free of any
// presentation concern; callers drive it with commands and timer ticks
// and read back snapshots.
package engine

// Kind identifies one of the seven tetromino shapes. The zero value is
// reserved for empty board cells.
type Kind int8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every playable piece kind in catalog order.
var Kinds = [7]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "."
	}
}

// Point is a board- or shape-relative cell coordinate. Y grows downward.
type Point struct {
	X int
	Y int
}

// Shape is a square occupancy matrix, indexed [y][x]. Each kind has one
// canonical spawn-orientation shape; rotated variants are derived
// geometrically with RotateCW/RotateCCW.
type Shape [][]bool

func shapeFromRows(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, c := range row {
			s[y][x] = c == 'X'
		}
	}
	return s
}

var catalog = map[Kind]Shape{
	KindI: shapeFromRows(
		"....",
		"XXXX",
		"....",
		"....",
	),
	KindO: shapeFromRows(
		"XX",
		"XX",
	),
	KindT: shapeFromRows(
		".X.",
		"XXX",
		"...",
	),
	KindS: shapeFromRows(
		".XX",
		"XX.",
		"...",
	),
	KindZ: shapeFromRows(
		"XX.",
		".XX",
		"...",
	),
	KindJ: shapeFromRows(
		"X..",
		"XXX",
		"...",
	),
	KindL: shapeFromRows(
		"..X",
		"XXX",
		"...",
	),
}

// SpawnShape returns a fresh copy of the kind's canonical shape.
func SpawnShape(kind Kind) Shape {
	return catalog[kind].clone()
}

func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = append([]bool(nil), s[y]...)
	}
	return out
}

// Size returns the side length of the shape's bounding box.
func (s Shape) Size() int {
	return len(s)
}

// Cells returns the occupied cells of the shape translated by the origin.
func (s Shape) Cells(originX, originY int) []Point {
	cells := make([]Point, 0, 4)
	for y := range s {
		for x := range s[y] {
			if s[y][x] {
				cells = append(cells, Point{X: originX + x, Y: originY + y})
			}
		}
	}
	return cells
}

// RotateCW returns the shape rotated 90 degrees clockwise: transpose,
// then reverse each row. Purely geometric, no board validation.
func RotateCW(s Shape) Shape {
	n := len(s)
	out := make(Shape, n)
	for y := 0; y < n; y++ {
		out[y] = make([]bool, n)
		for x := 0; x < n; x++ {
			out[y][x] = s[n-1-x][y]
		}
	}
	return out
}

// RotateCCW returns the shape rotated 90 degrees counter-clockwise.
func RotateCCW(s Shape) Shape {
	n := len(s)
	out := make(Shape, n)
	for y := 0; y < n; y++ {
		out[y] = make([]bool, n)
		for x := 0; x < n; x++ {
			out[y][x] = s[x][n-1-y]
		}
	}
	return out
}
