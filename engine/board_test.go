package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhavalhparikh/TetroMaster/engine"
)

func fillRowExcept(b *engine.Board, y int, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, x := range gaps {
		skip[x] = true
	}
	for x := 0; x < engine.BoardWidth; x++ {
		if !skip[x] {
			b.SetCell(x, y, engine.KindJ)
		}
	}
}

func TestIsValidPlacementBounds(t *testing.T) {
	b := engine.NewBoard()
	bar := engine.SpawnShape(engine.KindI) // occupies shape row 1, columns 0-3

	tests := []struct {
		name  string
		x, y  int
		valid bool
	}{
		{"inside", 3, 0, true},
		{"left wall", 0, 0, true},
		{"right wall", 6, 0, true},
		{"past left wall", -1, 0, false},
		{"past right wall", 7, 0, false},
		{"resting on floor", 3, 18, true},
		{"through floor", 3, 19, false},
		{"above top is allowed", 3, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, b.IsValidPlacement(bar, tt.x, tt.y))
		})
	}
}

func TestIsValidPlacementOverlap(t *testing.T) {
	b := engine.NewBoard()
	b.SetCell(4, 10, engine.KindL)
	square := engine.SpawnShape(engine.KindO)
	assert.False(t, b.IsValidPlacement(square, 4, 10))
	assert.False(t, b.IsValidPlacement(square, 3, 9))
	assert.True(t, b.IsValidPlacement(square, 5, 10))
}

func TestLockDiscardsCellsAboveTop(t *testing.T) {
	b := engine.NewBoard()
	square := engine.SpawnShape(engine.KindO)
	b.Lock(square, engine.KindO, 4, -1)
	grid := b.Grid()
	assert.Equal(t, engine.KindO, grid[0][4])
	assert.Equal(t, engine.KindO, grid[0][5])
	for x := 0; x < engine.BoardWidth; x++ {
		assert.Equal(t, engine.KindNone, grid[1][x])
	}
}

func TestFullRowsDescendingOrder(t *testing.T) {
	b := engine.NewBoard()
	fillRowExcept(b, 5)
	fillRowExcept(b, 12)
	assert.Equal(t, []int{12, 5}, b.FullRows())
}

func TestAlmostFullRowIsNotFull(t *testing.T) {
	b := engine.NewBoard()
	fillRowExcept(b, 19, 4)
	require.Empty(t, b.FullRows())
	b.SetCell(4, 19, engine.KindT)
	assert.Equal(t, []int{19}, b.FullRows())
}

func TestClearRowsNoopOnEmptySet(t *testing.T) {
	b := engine.NewBoard()
	fillRowExcept(b, 19, 2)
	before := b.Grid()
	b.ClearRows(nil)
	assert.Equal(t, before, b.Grid())
}

func TestClearRowsCompactsDownward(t *testing.T) {
	b := engine.NewBoard()
	fillRowExcept(b, 19)
	b.SetCell(0, 18, engine.KindS)
	b.ClearRows(b.FullRows())

	grid := b.Grid()
	require.Len(t, grid, engine.BoardHeight)
	// The marker above the cleared row drops into the bottom row.
	assert.Equal(t, engine.KindS, grid[19][0])
	for x := 1; x < engine.BoardWidth; x++ {
		assert.Equal(t, engine.KindNone, grid[19][x])
	}
	for x := 0; x < engine.BoardWidth; x++ {
		assert.Equal(t, engine.KindNone, grid[0][x])
	}
}

func TestClearRowsMultiple(t *testing.T) {
	b := engine.NewBoard()
	fillRowExcept(b, 19)
	fillRowExcept(b, 18)
	fillRowExcept(b, 17)
	fillRowExcept(b, 16)
	b.SetCell(3, 15, engine.KindZ)
	b.ClearRows(b.FullRows())

	grid := b.Grid()
	assert.Equal(t, engine.KindZ, grid[19][3])
	assert.Empty(t, b.FullRows())
}

func TestReset(t *testing.T) {
	b := engine.NewBoard()
	fillRowExcept(b, 10)
	b.Reset()
	assert.Equal(t, engine.NewBoard().Grid(), b.Grid())
}
