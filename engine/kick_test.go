package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhavalhparikh/TetroMaster/engine"
)

func TestRotationInOpenFieldNeedsNoKick(t *testing.T) {
	b := engine.NewBoard()
	shape := engine.SpawnShape(engine.KindT)

	result, ok := engine.ResolveRotation(b, engine.ModeModern, engine.KindT, shape, 3, 5, 0, engine.Clockwise)
	require.True(t, ok)
	assert.False(t, result.UsedKick)
	assert.Equal(t, 1, result.State)
	assert.Equal(t, 3, result.X)
	assert.Equal(t, 5, result.Y)
}

func TestRotationStateTransitions(t *testing.T) {
	b := engine.NewBoard()
	shape := engine.SpawnShape(engine.KindT)

	cw, ok := engine.ResolveRotation(b, engine.ModeModern, engine.KindT, shape, 3, 5, 3, engine.Clockwise)
	require.True(t, ok)
	assert.Equal(t, 0, cw.State)

	ccw, ok := engine.ResolveRotation(b, engine.ModeModern, engine.KindT, shape, 3, 5, 0, engine.CounterClockwise)
	require.True(t, ok)
	assert.Equal(t, 3, ccw.State)
}

// A T pressed against the left wall in its east-facing orientation can
// only finish the next clockwise turn by kicking one column right.
func TestModernWallKickAtLeftWall(t *testing.T) {
	b := engine.NewBoard()
	east := engine.RotateCW(engine.SpawnShape(engine.KindT)) // occupies columns 1-2 of its box
	x, y := -1, 5
	require.True(t, b.IsValidPlacement(east, x, y))

	result, ok := engine.ResolveRotation(b, engine.ModeModern, engine.KindT, east, x, y, 1, engine.Clockwise)
	require.True(t, ok)
	assert.True(t, result.UsedKick)
	assert.Equal(t, 2, result.State)
	assert.Equal(t, 0, result.X)
	assert.Equal(t, y, result.Y)
}

func TestClassicNeverKicks(t *testing.T) {
	b := engine.NewBoard()
	east := engine.RotateCW(engine.SpawnShape(engine.KindT))

	_, ok := engine.ResolveRotation(b, engine.ModeClassic, engine.KindT, east, -1, 5, 1, engine.Clockwise)
	assert.False(t, ok, "classic mode must reject instead of kicking")

	// The same rotation in open space is accepted.
	result, ok := engine.ResolveRotation(b, engine.ModeClassic, engine.KindT, east, 3, 5, 1, engine.Clockwise)
	require.True(t, ok)
	assert.False(t, result.UsedKick)
}

func TestRotationRejectedWhenEveryKickCollides(t *testing.T) {
	b := engine.NewBoard()
	for _, y := range []int{16, 17, 18} {
		fillRowExcept(b, y)
	}
	bar := engine.SpawnShape(engine.KindI) // lying flat just above the floor
	require.True(t, b.IsValidPlacement(bar, 3, 18))

	_, ok := engine.ResolveRotation(b, engine.ModeModern, engine.KindI, bar, 3, 18, 0, engine.Clockwise)
	assert.False(t, ok)
}

func TestOPieceRotationIsIdentity(t *testing.T) {
	b := engine.NewBoard()
	square := engine.SpawnShape(engine.KindO)

	result, ok := engine.ResolveRotation(b, engine.ModeModern, engine.KindO, square, 4, 0, 0, engine.Clockwise)
	require.True(t, ok)
	assert.False(t, result.UsedKick)
	assert.Equal(t, square, result.Shape)
	assert.Equal(t, 4, result.X)
	assert.Equal(t, 0, result.Y)
}

func TestIPieceWallKick(t *testing.T) {
	b := engine.NewBoard()
	vertical := engine.RotateCW(engine.SpawnShape(engine.KindI)) // column 2 of its box
	x := -2                                                      // bar hugs the left wall
	require.True(t, b.IsValidPlacement(vertical, x, 5))

	result, ok := engine.ResolveRotation(b, engine.ModeModern, engine.KindI, vertical, x, 5, 1, engine.Clockwise)
	require.True(t, ok)
	assert.True(t, result.UsedKick)
	assert.Equal(t, 2, result.State)
}
