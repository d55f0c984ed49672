package engine

// Wall-kick offsets follow the Super Rotation System, expressed in board
// coordinates (positive Y is downward). The I piece has its own table;
// J, L, S, T and Z share one; O never needs kicking because its rotation
// is the identity.

// RotationDir is a quarter-turn direction.
type RotationDir int

const (
	Clockwise        RotationDir = 1
	CounterClockwise RotationDir = -1
)

type kickKey struct {
	from int
	to   int
}

var jlstzKicks = map[kickKey][]Point{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var iKicks = map[kickKey][]Point{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// fallbackKicks is tried when a transition is missing from both tables.
// All eight quarter-turn transitions are covered above, so this only
// matters for malformed rotation states.
var fallbackKicks = []Point{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}

func kickOffsets(kind Kind, from, to int) []Point {
	if kind == KindO {
		return []Point{{0, 0}}
	}
	key := kickKey{from: from, to: to}
	var table map[kickKey][]Point
	if kind == KindI {
		table = iKicks
	} else {
		table = jlstzKicks
	}
	if offsets, ok := table[key]; ok {
		return offsets
	}
	return fallbackKicks
}

// RotationResult is a successful rotation: the rotated shape, the
// possibly kicked origin, the new rotation state and whether a non-zero
// kick offset was needed.
type RotationResult struct {
	Shape    Shape
	X        int
	Y        int
	State    int
	UsedKick bool
}

// ResolveRotation rotates the shape a quarter turn and validates it
// against the board. In Classic mode only the unkicked position is
// tried. In Modern mode the kick table for the (from, to) transition is
// walked in order and the first valid offset wins. Returns ok=false when
// every candidate collides; the caller must leave the piece untouched.
func ResolveRotation(b *Board, mode Mode, kind Kind, s Shape, x, y, state int, dir RotationDir) (RotationResult, bool) {
	to := (state + int(dir) + 4) % 4
	var rotated Shape
	if dir == Clockwise {
		rotated = RotateCW(s)
	} else {
		rotated = RotateCCW(s)
	}
	if mode == ModeClassic {
		if b.IsValidPlacement(rotated, x, y) {
			return RotationResult{Shape: rotated, X: x, Y: y, State: to}, true
		}
		return RotationResult{}, false
	}
	for _, off := range kickOffsets(kind, state, to) {
		if b.IsValidPlacement(rotated, x+off.X, y+off.Y) {
			return RotationResult{
				Shape:    rotated,
				X:        x + off.X,
				Y:        y + off.Y,
				State:    to,
				UsedKick: off != (Point{}),
			}, true
		}
	}
	return RotationResult{}, false
}
