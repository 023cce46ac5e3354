package gol

import (
	"log"
	"time"

	"uk.ac.bris.cs/vida/util"
)

type distributorChannels struct {
	events     chan<- Event
	keyPresses <-chan rune
}

// distributor owns the current generation, advances it with the selected
// stepper and reports every turn to the renderer.
func distributor(p Params, c distributorChannels) {

	// Close the channel to stop the renderer gracefully. Removing may cause deadlock.
	defer close(c.events)

	strategy := p.Strategy
	if strategy == "" {
		strategy = Serial
	}
	stepper, err := NewStepper(strategy, p.Threads)
	if err != nil {
		c.events <- ErrorEvent{err}
		return
	}
	grid, err := Random(p.ImageWidth, p.ImageHeight, p.Density, p.Seed)
	if err != nil {
		c.events <- ErrorEvent{err}
		return
	}
	log.Printf("Running %dx%d world with the %s stepper", p.ImageWidth, p.ImageHeight, strategy)

	current := Generation{Turn: 0, Grid: grid}
	c.events <- CellsFlipped{0, grid.AliveCells()}

	// Alive timer
	ticker := time.NewTicker(time.Second * 2)
	defer ticker.Stop()

	// Update timer, nil runs turns back to back
	var pace *time.Ticker
	if p.Interval > 0 {
		pace = time.NewTicker(p.Interval)
		defer pace.Stop()
	}

	paused := false
	c.events <- StateChange{current.Turn, Executing}

	// Returns false once the run should stop
	handleKey := func(char rune) bool {
		switch char {
		case 's':
			c.events <- AliveCellsCount{current.Turn, current.Grid.AliveCount()}
		case 'q':
			return false
		case 'p':
			paused = !paused
			if paused {
				c.events <- StateChange{current.Turn, Paused}
			} else {
				c.events <- StateChange{current.Turn, Executing}
			}
		}
		return true
	}

	// Evaluate each turn
run:
	for p.Turns <= 0 || current.Turn != p.Turns {
		if !paused {
			next := current.Next(stepper)
			if flipped := flippedCells(current.Grid, next.Grid); len(flipped) != 0 {
				c.events <- CellsFlipped{next.Turn, flipped}
			}
			// Previous generation is dropped here
			current = next
			c.events <- TurnComplete{current.Turn}
		}
		// Handle events
		if paused {
			select {
			case <-ticker.C:
				c.events <- AliveCellsCount{current.Turn, current.Grid.AliveCount()}
			case char := <-c.keyPresses:
				if !handleKey(char) {
					break run
				}
			}
			continue
		}
		if pace == nil {
			select {
			case <-ticker.C:
				c.events <- AliveCellsCount{current.Turn, current.Grid.AliveCount()}
			case char := <-c.keyPresses:
				if !handleKey(char) {
					break run
				}
			default:
			}
			continue
		}
		// Hold the next turn until the update interval has passed
	wait:
		for {
			select {
			case <-pace.C:
				break wait
			case <-ticker.C:
				c.events <- AliveCellsCount{current.Turn, current.Grid.AliveCount()}
			case char := <-c.keyPresses:
				if !handleKey(char) {
					break run
				}
				if paused {
					break wait
				}
			}
		}
	}

	c.events <- FinalTurnComplete{
		CompletedTurns: current.Turn,
		Alive:          current.Grid.AliveCells(),
		Strategy:       strategy,
	}
	c.events <- StateChange{current.Turn, Quitting}
}

// Cells whose state differs between two grids of the same run
func flippedCells(grid, next *Grid) []util.Cell {
	flipped := make([]util.Cell, 0, 64)
	for y := 0; y != grid.height; y++ {
		row, next_row := grid.rows[y], next.rows[y]
		for x := 0; x != grid.width; x++ {
			if row[x] != next_row[x] {
				flipped = append(flipped, util.Cell{X: x, Y: y})
			}
		}
	}
	return flipped
}
