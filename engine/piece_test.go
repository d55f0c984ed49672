package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhavalhparikh/TetroMaster/engine"
)

func TestRotationRoundTrip(t *testing.T) {
	for _, kind := range engine.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			original := engine.SpawnShape(kind)
			rotated := original
			for i := 0; i < 4; i++ {
				rotated = engine.RotateCW(rotated)
			}
			assert.Equal(t, original, rotated)
		})
	}
}

func TestRotateCCWInvertsRotateCW(t *testing.T) {
	for _, kind := range engine.Kinds {
		original := engine.SpawnShape(kind)
		assert.Equal(t, original, engine.RotateCCW(engine.RotateCW(original)), "kind %s", kind)
	}
}

func TestRotateCWKnownShapes(t *testing.T) {
	// T: stem up becomes stem pointing right of the vertical bar.
	rotatedT := engine.RotateCW(engine.SpawnShape(engine.KindT))
	assert.ElementsMatch(t,
		[]engine.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
		rotatedT.Cells(0, 0))

	// I: horizontal bar in row 1 becomes vertical bar in column 2.
	rotatedI := engine.RotateCW(engine.SpawnShape(engine.KindI))
	assert.ElementsMatch(t,
		[]engine.Point{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}},
		rotatedI.Cells(0, 0))

	// O: rotation is the identity.
	assert.Equal(t, engine.SpawnShape(engine.KindO), engine.RotateCW(engine.SpawnShape(engine.KindO)))
}

func TestSpawnShapeReturnsCopy(t *testing.T) {
	first := engine.SpawnShape(engine.KindS)
	first[0][0] = true
	second := engine.SpawnShape(engine.KindS)
	assert.False(t, second[0][0], "catalog must not be mutated through a spawned shape")
}

func TestShapeCellsTranslate(t *testing.T) {
	cells := engine.SpawnShape(engine.KindO).Cells(4, -1)
	assert.ElementsMatch(t,
		[]engine.Point{{X: 4, Y: -1}, {X: 5, Y: -1}, {X: 4, Y: 0}, {X: 5, Y: 0}},
		cells)
}
