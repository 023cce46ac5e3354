package gol

import (
	"golang.org/x/sync/errgroup"

	"uk.ac.bris.cs/vida/util"
)

// ParallelStepper splits the rows of the grid into contiguous bands and
// evaluates each band on its own goroutine.
//
// Workers share the input grid read-only and each one writes only the rows of
// its own band in the output grid, so no cell needs a lock. Advance returns
// once every band has been written.
type ParallelStepper struct {
	Threads int // Number of workers; zero or less uses every host thread
}

func (s ParallelStepper) threads() int {
	if s.Threads > 0 {
		return s.Threads
	}
	return util.HostThreads()
}

func (s ParallelStepper) Advance(grid *Grid) *Grid {
	next := makeGrid(grid.width, grid.height)
	blocks := divideToRows(grid.width, grid.height, s.threads())
	if len(blocks) == 1 {
		evaluateBlock(grid, next, blocks[0])
		return next
	}
	var group errgroup.Group
	for _, block := range blocks {
		block := block
		group.Go(func() error {
			evaluateBlock(grid, next, block)
			return nil
		})
	}
	// Barrier: no worker can fail, Wait only joins
	_ = group.Wait()
	return next
}

// Divide the grid into at most threads bands of whole rows.
// Band heights differ by at most one and the taller bands come first.
func divideToRows(width, height, threads int) []Block {
	nthread := threads
	if nthread < 1 {
		nthread = 1
	}
	if nthread > height {
		// Never split a row between workers
		nthread = height
	}
	blocks := make([]Block, nthread)
	part_height := height / nthread
	remainder := height % nthread
	start := 0
	for i := 0; i != nthread; i++ {
		end := start + part_height
		if i < remainder {
			end++
		}
		blocks[i] = Block{
			Start: util.Cell{X: 0, Y: start},
			End:   util.Cell{X: width, Y: end},
		}
		start = end
	}
	return blocks
}
