package engine

import "math/rand"

// Randomizer produces the piece sequence. Implementations advance
// internal state on every call and never fail. The random source is
// injected so sequences are reproducible from a seed.
type Randomizer interface {
	Next() Kind
}

// UniformRandomizer draws every piece independently and uniformly.
// Classic mode sequencing.
type UniformRandomizer struct {
	rng *rand.Rand
}

func NewUniformRandomizer(rng *rand.Rand) *UniformRandomizer {
	return &UniformRandomizer{rng: rng}
}

func (u *UniformRandomizer) Next() Kind {
	return Kinds[u.rng.Intn(len(Kinds))]
}

// BagRandomizer implements the 7-bag rule: a shuffled permutation of all
// seven kinds is consumed in order and reshuffled once exhausted, so each
// kind appears exactly once per bag. Modern mode sequencing.
type BagRandomizer struct {
	rng    *rand.Rand
	bag    [7]Kind
	cursor int
}

func NewBagRandomizer(rng *rand.Rand) *BagRandomizer {
	b := &BagRandomizer{rng: rng}
	b.refill()
	return b
}

func (b *BagRandomizer) Next() Kind {
	if b.cursor == len(b.bag) {
		b.refill()
	}
	kind := b.bag[b.cursor]
	b.cursor++
	return kind
}

func (b *BagRandomizer) refill() {
	b.bag = Kinds
	b.rng.Shuffle(len(b.bag), func(i, j int) {
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	})
	b.cursor = 0
}
