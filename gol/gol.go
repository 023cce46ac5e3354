package gol

import "time"

// Params provides the details of how to run the Game of Life and which world to seed.
type Params struct {
	Turns       int // Zero or less runs until 'q' is pressed
	Threads     int // Parallel workers; zero or less uses every host thread
	ImageWidth  int
	ImageHeight int
	Strategy    Strategy // Defaults to Serial
	Density     float64  // Probability of a cell being alive at turn 0
	Seed        uint64
	Interval    time.Duration // Least time between turns; zero or less does not wait
}

// Run starts the processing of Game of Life. It blocks until the run is over
// and closes events before returning. keyPresses may be nil.
func Run(p Params, events chan<- Event, keyPresses <-chan rune) {

	distributorChannels := distributorChannels{
		events:     events,
		keyPresses: keyPresses,
	}
	distributor(p, distributorChannels)
}
