package gol

import (
	"math/rand/v2"
)

// Random seeds a width x height grid where each cell is independently alive
// with probability density. Density is clamped to [0, 1]; the same seed always
// yields the same grid.
func Random(width, height int, density float64, seed uint64) (*Grid, error) {
	if density < 0 {
		density = 0
	} else if density > 1 {
		density = 1
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return NewGrid(width, height, func(row, col int) State {
		if rng.Float64() < density {
			return Alive
		}
		return Dead
	})
}
