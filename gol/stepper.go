package gol

import (
	"errors"
	"fmt"
	"strings"

	"uk.ac.bris.cs/vida/util"
)

// ErrUnknownStrategy is returned for strategy names other than serial and parallel.
var ErrUnknownStrategy = errors.New("gol: unknown strategy")

// Stepper advances a grid by one generation. The input grid is only read;
// the returned grid is freshly allocated and owned by the caller.
type Stepper interface {
	Advance(grid *Grid) *Grid
}

// Strategy selects a Stepper.
type Strategy string

const (
	Serial   Strategy = "serial"
	Parallel Strategy = "parallel"
)

// ParseStrategy accepts the names used on the command line, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case Serial:
		return Serial, nil
	case Parallel:
		return Parallel, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// NewStepper returns the stepper for strategy. threads only applies to the
// parallel stepper, where zero or less means one worker per host thread.
// The host count is resolved here so Advance never has to ask for it.
func NewStepper(strategy Strategy, threads int) (Stepper, error) {
	switch strategy {
	case Serial:
		return SerialStepper{}, nil
	case Parallel:
		if threads <= 0 {
			threads = util.HostThreads()
		}
		return ParallelStepper{Threads: threads}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
}

// Block is a rectangle of cells evaluated by one worker.
type Block struct {
	Start util.Cell // Top-left corner of block
	End   util.Cell // Bottom-right corner of block (not inclusive)
}

// Evaluate every cell of block, reading grid and writing next.
// Different blocks never write the same cell of next.
func evaluateBlock(grid, next *Grid, block Block) {
	for y := block.Start.Y; y != block.End.Y; y++ {
		next_row := next.rows[y]
		for x := block.Start.X; x != block.End.X; x++ {
			next_row[x] = NextState(grid.rows[y][x], grid.LiveNeighbourCount(y, x))
		}
	}
}
