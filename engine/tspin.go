package engine

// T-spin detection, Modern mode only. A lock counts as a T-spin when the
// piece is a T, its final rotation needed a wall kick, and at least three
// of the four diagonal neighbors of the pivot are blocked. The pivot sits
// at a fixed (+1, +1) offset from the piece origin: the T shape's 3x3
// bounding box keeps the stem centered in every rotation state. The
// inspected diagonals deliberately do not rotate with the piece, so the
// test is looser than strict SRS front/back corner accounting.

const tSpinCornerThreshold = 3

// IsTSpinPosition inspects the board as it exists before the piece locks
// and reports whether the pivot at (pivotX, pivotY) is confined enough to
// qualify. Walls and the floor count as blocked; space above the board
// does not.
func IsTSpinPosition(b *Board, pivotX, pivotY int) bool {
	corners := [4]Point{
		{pivotX - 1, pivotY - 1},
		{pivotX + 1, pivotY - 1},
		{pivotX - 1, pivotY + 1},
		{pivotX + 1, pivotY + 1},
	}
	blocked := 0
	for _, c := range corners {
		if cornerBlocked(b, c.X, c.Y) {
			blocked++
		}
	}
	return blocked >= tSpinCornerThreshold
}

func cornerBlocked(b *Board, x, y int) bool {
	if x < 0 || x >= BoardWidth {
		return true
	}
	if y >= BoardHeight {
		return true
	}
	if y < 0 {
		return false
	}
	return b.Cell(x, y) != KindNone
}
