package engine

// Board dimensions, in cells. Row 0 is the top row.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is one board cell: KindNone when empty, otherwise the kind of the
// piece that locked there.
type Cell = Kind

// Board is the fixed-size playfield. Cells above row 0 do not exist on
// the board; pieces may occupy negative rows while spawning and those
// cells are simply discarded on lock.
type Board struct {
	cells [][]Cell
}

func NewBoard() *Board {
	cells := make([][]Cell, BoardHeight)
	for y := range cells {
		cells[y] = make([]Cell, BoardWidth)
	}
	return &Board{cells: cells}
}

// Cell returns the value at (x, y). Out-of-range access is a caller bug;
// coordinates are expected to be pre-validated.
func (b *Board) Cell(x, y int) Cell {
	return b.cells[y][x]
}

// SetCell writes one cell directly. Meant for scenario setup; gameplay
// mutations go through Lock and ClearRows.
func (b *Board) SetCell(x, y int, kind Kind) {
	b.cells[y][x] = kind
}

// Grid returns a copy of the full grid, row 0 first.
func (b *Board) Grid() [][]Cell {
	out := make([][]Cell, BoardHeight)
	for y := range b.cells {
		out[y] = append([]Cell(nil), b.cells[y]...)
	}
	return out
}

// IsValidPlacement reports whether every occupied cell of the shape,
// translated by the origin, is inside the horizontal bounds, above the
// floor, and not overlapping an occupied cell. Rows above the top of the
// board are allowed, so freshly spawned pieces may hang over the edge.
func (b *Board) IsValidPlacement(s Shape, originX, originY int) bool {
	for _, p := range s.Cells(originX, originY) {
		if p.X < 0 || p.X >= BoardWidth {
			return false
		}
		if p.Y >= BoardHeight {
			return false
		}
		if p.Y >= 0 && b.cells[p.Y][p.X] != KindNone {
			return false
		}
	}
	return true
}

// Lock stamps the shape's occupied cells onto the board as kind. Cells at
// negative rows are discarded.
func (b *Board) Lock(s Shape, kind Kind, originX, originY int) {
	for _, p := range s.Cells(originX, originY) {
		if p.Y >= 0 {
			b.cells[p.Y][p.X] = kind
		}
	}
}

// FullRows returns the indices of completely occupied rows, in
// descending order.
func (b *Board) FullRows() []int {
	var rows []int
	for y := BoardHeight - 1; y >= 0; y-- {
		full := true
		for x := 0; x < BoardWidth; x++ {
			if b.cells[y][x] == KindNone {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes the given rows, shifts everything above them down and
// refills the top with empty rows. Clearing no rows leaves the board
// unchanged.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	drop := make(map[int]bool, len(rows))
	for _, y := range rows {
		drop[y] = true
	}
	kept := make([][]Cell, 0, BoardHeight)
	for y := 0; y < BoardHeight; y++ {
		if !drop[y] {
			kept = append(kept, b.cells[y])
		}
	}
	fresh := make([][]Cell, 0, BoardHeight)
	for len(fresh)+len(kept) < BoardHeight {
		fresh = append(fresh, make([]Cell, BoardWidth))
	}
	b.cells = append(fresh, kept...)
}

// Reset empties every cell.
func (b *Board) Reset() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = KindNone
		}
	}
}
