package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhavalhparikh/TetroMaster/engine"
)

func TestTSpinWallsAndFloorCountAsBlocked(t *testing.T) {
	b := engine.NewBoard()
	// Pivot in the bottom-left corner: two wall corners plus two floor
	// corners overlap to three blocked positions.
	assert.True(t, engine.IsTSpinPosition(b, 0, 19))
}

func TestTSpinSpaceAboveBoardIsOpen(t *testing.T) {
	b := engine.NewBoard()
	assert.False(t, engine.IsTSpinPosition(b, 5, 0))
	b.SetCell(4, 1, engine.KindJ)
	b.SetCell(6, 1, engine.KindJ)
	// Two blocked diagonals below, two open above the board: no T-spin.
	assert.False(t, engine.IsTSpinPosition(b, 5, 0))
}

func TestTSpinOccupiedCornerCount(t *testing.T) {
	b := engine.NewBoard()
	pivotX, pivotY := 5, 10
	b.SetCell(4, 9, engine.KindL)
	b.SetCell(6, 9, engine.KindL)
	assert.False(t, engine.IsTSpinPosition(b, pivotX, pivotY), "two corners are not enough")

	b.SetCell(4, 11, engine.KindL)
	assert.True(t, engine.IsTSpinPosition(b, pivotX, pivotY), "three corners qualify")

	b.SetCell(6, 11, engine.KindL)
	assert.True(t, engine.IsTSpinPosition(b, pivotX, pivotY), "four corners qualify")
}
