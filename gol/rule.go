package gol

// NextState applies the B3/S23 rule to one cell.
func NextState(current State, live_neighbours int) State {
	switch live_neighbours {
	case 3:
		// Survival or birth
		return Alive
	case 2:
		// Copying
		if current == Alive {
			return Alive
		}
		return Dead
	default:
		// Isolation or overcrowding
		return Dead
	}
}
