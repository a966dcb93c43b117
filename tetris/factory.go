package tetris

import "math/rand/v2"

// Rand is the source of piece draws. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Factory draws pieces uniformly from the catalog.
type Factory struct {
	rng Rand
}

// NewFactory creates a factory drawing from rng. A nil rng uses the global
// math/rand/v2 source.
func NewFactory(rng Rand) *Factory {
	if rng == nil {
		rng = globalRand{}
	}
	return &Factory{rng: rng}
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

func (f *Factory) draw() Kind {
	return Kinds[f.rng.IntN(len(Kinds))]
}

// Spawn draws a new active piece at its spawn position. It returns false when
// that position is already blocked, which ends the game.
func (f *Factory) Spawn(board Board) (ActivePiece, bool) {
	k := f.draw()
	piece := ActivePiece{
		Kind:  k,
		Shape: k.Shape(),
		Pos:   SpawnPosition(k.Shape()),
	}
	if !piece.Fits(board) {
		return ActivePiece{}, false
	}
	return piece, true
}

// Preview draws the next piece, independently of any Spawn.
func (f *Factory) Preview() NextPiece {
	k := f.draw()
	return NextPiece{Kind: k, Shape: k.Shape()}
}
