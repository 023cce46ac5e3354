package gol

import "uk.ac.bris.cs/vida/util"

// SerialStepper evaluates the whole grid on the calling goroutine, in row-major order.
type SerialStepper struct{}

func (SerialStepper) Advance(grid *Grid) *Grid {
	next := makeGrid(grid.width, grid.height)
	evaluateBlock(grid, next, Block{
		Start: util.Cell{X: 0, Y: 0},
		End:   util.Cell{X: grid.width, Y: grid.height},
	})
	return next
}
