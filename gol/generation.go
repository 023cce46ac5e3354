package gol

// Generation is one snapshot of a run together with its turn number.
// Turn 0 is the initial state.
type Generation struct {
	Turn int
	Grid *Grid
}

// Next advances the generation by one turn. The receiver is left untouched.
func (g Generation) Next(stepper Stepper) Generation {
	return Generation{
		Turn: g.Turn + 1,
		Grid: stepper.Advance(g.Grid),
	}
}
