package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// DefaultDensity is the probability of a cell being occupied after FillRandom
const DefaultDensity = 0.4

// RandomSource returns a uniformly distributed value in [0, 1)
type RandomSource func() float64

// NewRandomSource returns a deterministic PCG-backed source for the given seed
func NewRandomSource(seed uint64) RandomSource {
	r := rand.New(rand.NewPCG(seed, 0))
	return r.Float64
}

// FillRandom reseeds every cell with DefaultDensity
func FillRandom(g *Grid, src RandomSource) error {
	return FillRandomDensity(g, src, DefaultDensity)
}

// FillRandomDensity draws one sample per cell in row-major order; a cell is occupied
// when its sample is below density. The turn counter is left alone.
func FillRandomDensity(g *Grid, src RandomSource, density float64) error {
	if src == nil {
		return errors.Wrap(ErrNoRandomSource, "[FillRandomDensity]")
	}
	if density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidDensity, "[FillRandomDensity] got %v", density)
	}

	for _, row := range g.cells {
		for col := range row {
			if src() < density {
				row[col] = Occupied
			} else {
				row[col] = Empty
			}
		}
	}
	return nil
}
