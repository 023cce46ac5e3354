package gol

import (
	"errors"
	"testing"

	"uk.ac.bris.cs/vida/util"
)

// Build a grid with exactly the given cells alive
func gridWith(t testing.TB, width, height int, alive ...util.Cell) *Grid {
	t.Helper()
	set := make(map[util.Cell]bool, len(alive))
	for _, cell := range alive {
		set[cell] = true
	}
	grid, err := NewGrid(width, height, func(row, col int) State {
		if set[util.Cell{X: col, Y: row}] {
			return Alive
		}
		return Dead
	})
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", width, height, err)
	}
	return grid
}

func TestNewGridInvalidDimension(t *testing.T) {
	tests := []struct{ width, height int }{
		{0, 5},
		{5, -1},
		{0, 0},
		{-3, 4},
	}
	for _, test := range tests {
		grid, err := NewGrid(test.width, test.height, nil)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimension", test.width, test.height, err)
		}
		if grid != nil {
			t.Errorf("NewGrid(%d, %d) returned a grid alongside the error", test.width, test.height)
		}
	}
}

func TestNewGridInitializer(t *testing.T) {
	calls := 0
	grid, err := NewGrid(4, 3, func(row, col int) State {
		calls++
		if row == col {
			return Alive
		}
		return Dead
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 12 {
		t.Errorf("initializer called %d times, want 12", calls)
	}
	width, height := grid.Dimensions()
	if width != 4 || height != 3 {
		t.Errorf("Dimensions() = %d, %d, want 4, 3", width, height)
	}
	want := "#...\n.#..\n..#.\n"
	if got := grid.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	empty, err := NewGrid(2, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if empty.AliveCount() != 0 {
		t.Errorf("nil initializer left %d cells alive", empty.AliveCount())
	}
}

func TestFromRows(t *testing.T) {
	grid, err := FromRows([][]State{
		{Dead, Alive, Dead},
		{Alive, Dead, Alive},
	})
	if err != nil {
		t.Fatal(err)
	}
	if w, h := grid.Dimensions(); w != 3 || h != 2 {
		t.Errorf("Dimensions() = %d, %d, want 3, 2", w, h)
	}
	if grid.Get(1, 2) != Alive || grid.Get(0, 0) != Dead {
		t.Errorf("FromRows copied the wrong cells:\n%v", grid)
	}

	if _, err := FromRows([][]State{{Dead, Alive}, {Dead}}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("ragged rows error = %v, want ErrInvalidDimension", err)
	}
	if _, err := FromRows(nil); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("no rows error = %v, want ErrInvalidDimension", err)
	}
}

func TestGetWraps(t *testing.T) {
	grid := gridWith(t, 4, 3, util.Cell{X: 3, Y: 2})
	tests := []struct{ row, col int }{
		{2, 3},
		{-1, -1},
		{5, 7},
		{-4, 3},
		{2, -5},
		{302, 403},
	}
	for _, test := range tests {
		if got := grid.Get(test.row, test.col); got != Alive {
			t.Errorf("Get(%d, %d) = %v, want alive", test.row, test.col, got)
		}
	}
	if got := grid.Get(0, 0); got != Dead {
		t.Errorf("Get(0, 0) = %v, want dead", got)
	}
}

func TestLiveNeighbourCountWrapsOn3x3(t *testing.T) {
	// Every wrapped neighbour of (0,0) on a 3x3 torus
	neighbours := []util.Cell{
		{X: 2, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 2},
		{X: 2, Y: 0}, {X: 1, Y: 0},
		{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
	for i, neighbour := range neighbours {
		grid := gridWith(t, 3, 3, neighbour)
		if got := grid.LiveNeighbourCount(0, 0); got != 1 {
			t.Errorf("only %v alive: LiveNeighbourCount(0, 0) = %d, want 1", neighbour, got)
		}
		grid = gridWith(t, 3, 3, neighbours[:i+1]...)
		if got := grid.LiveNeighbourCount(0, 0); got != i+1 {
			t.Errorf("%d neighbours alive: LiveNeighbourCount(0, 0) = %d", i+1, got)
		}
	}
	// The cell itself is not a neighbour
	grid := gridWith(t, 3, 3, util.Cell{X: 0, Y: 0})
	if got := grid.LiveNeighbourCount(0, 0); got != 0 {
		t.Errorf("LiveNeighbourCount(0, 0) counted itself: %d", got)
	}
}

func TestLiveNeighbourCountInterior(t *testing.T) {
	grid := gridWith(t, 5, 5,
		util.Cell{X: 1, Y: 1}, util.Cell{X: 2, Y: 1}, util.Cell{X: 3, Y: 1},
		util.Cell{X: 1, Y: 2}, util.Cell{X: 2, Y: 2}, util.Cell{X: 3, Y: 2},
		util.Cell{X: 1, Y: 3}, util.Cell{X: 2, Y: 3}, util.Cell{X: 3, Y: 3},
	)
	if got := grid.LiveNeighbourCount(2, 2); got != 8 {
		t.Errorf("LiveNeighbourCount(2, 2) = %d, want 8", got)
	}
	if got := grid.LiveNeighbourCount(0, 0); got != 1 {
		t.Errorf("LiveNeighbourCount(0, 0) = %d, want 1", got)
	}
	// Wrapped coordinates give the same answer
	if got := grid.LiveNeighbourCount(7, -3); got != 8 {
		t.Errorf("LiveNeighbourCount(7, -3) = %d, want 8", got)
	}
}

func TestEqual(t *testing.T) {
	a := gridWith(t, 4, 4, util.Cell{X: 1, Y: 2})
	b := gridWith(t, 4, 4, util.Cell{X: 1, Y: 2})
	c := gridWith(t, 4, 4, util.Cell{X: 2, Y: 1})
	d := gridWith(t, 4, 5, util.Cell{X: 1, Y: 2})
	if !a.Equal(b) {
		t.Error("identical grids are not equal")
	}
	if a.Equal(c) {
		t.Error("grids with different cells are equal")
	}
	if a.Equal(d) {
		t.Error("grids with different dimensions are equal")
	}
	if a.Equal(nil) {
		t.Error("grid equals nil")
	}
}

func TestAliveCells(t *testing.T) {
	want := []util.Cell{{X: 3, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 2}}
	grid := gridWith(t, 4, 3, want[2], want[0], want[1])
	got := grid.AliveCells()
	if len(got) != len(want) {
		t.Fatalf("AliveCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AliveCells() = %v, want %v", got, want)
		}
	}
	if grid.AliveCount() != 3 {
		t.Errorf("AliveCount() = %d, want 3", grid.AliveCount())
	}
}

func TestLiveNeighbourCountMatchesOffsets(t *testing.T) {
	dimensions := []struct{ width, height int }{
		{1, 1}, {1, 4}, {4, 1}, {2, 3}, {3, 3}, {7, 5}, {12, 9},
	}
	for _, d := range dimensions {
		grid, err := Random(d.width, d.height, 0.5, uint64(d.width*31+d.height))
		if err != nil {
			t.Fatal(err)
		}
		for row := 0; row != d.height; row++ {
			for col := 0; col != d.width; col++ {
				want := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if dr == 0 && dc == 0 {
							continue
						}
						r := (row + dr + d.height) % d.height
						c := (col + dc + d.width) % d.width
						if grid.rows[r][c] == Alive {
							want++
						}
					}
				}
				if got := grid.LiveNeighbourCount(row, col); got != want {
					t.Fatalf("%dx%d: LiveNeighbourCount(%d, %d) = %d, want %d\n%v",
						d.width, d.height, row, col, got, want, grid)
				}
			}
		}
	}
}
