package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhavalhparikh/TetroMaster/engine"
)

func TestBagDrawsEachKindOncePerSeven(t *testing.T) {
	bag := engine.NewBagRandomizer(rand.New(rand.NewSource(7)))
	for window := 0; window < 4; window++ {
		draws := make([]engine.Kind, 0, 7)
		for i := 0; i < 7; i++ {
			draws = append(draws, bag.Next())
		}
		assert.ElementsMatch(t, engine.Kinds[:], draws, "window %d", window)
	}
}

func TestBagDeterministicBySeed(t *testing.T) {
	first := engine.NewBagRandomizer(rand.New(rand.NewSource(99)))
	second := engine.NewBagRandomizer(rand.New(rand.NewSource(99)))
	for i := 0; i < 21; i++ {
		assert.Equal(t, first.Next(), second.Next(), "draw %d", i)
	}
}

func TestUniformReturnsValidKinds(t *testing.T) {
	uniform := engine.NewUniformRandomizer(rand.New(rand.NewSource(1)))
	valid := make(map[engine.Kind]bool, len(engine.Kinds))
	for _, kind := range engine.Kinds {
		valid[kind] = true
	}
	for i := 0; i < 200; i++ {
		assert.True(t, valid[uniform.Next()])
	}
}
