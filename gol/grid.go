package gol

import (
	"errors"
	"fmt"
	"strings"

	"uk.ac.bris.cs/vida/util"
)

// ErrInvalidDimension is returned when a grid would have a non-positive width or height.
var ErrInvalidDimension = errors.New("gol: invalid grid dimension")

// State of a single cell. The values match the pixel values of the pgm images
// used by the rest of the coursework, so a row of a Grid is a row of pixels.
type State uint8

const (
	Dead  State = 0
	Alive State = 255
)

// 1 for an alive cell, 0 otherwise
func (s State) count() int {
	if s == Alive {
		return 1
	}
	return 0
}

func (s State) String() string {
	if s == Alive {
		return "#"
	}
	return "."
}

// Grid is a fixed-size toroidal lattice of cells.
// Once a Grid has been returned to a caller it is never written again.
type Grid struct {
	width  int
	height int
	cells  []State   // Row-major cell data
	rows   [][]State // Views of cells, one per row
}

// Make grid object with every cell dead
func makeGrid(width, height int) *Grid {
	grid := &Grid{
		width:  width,
		height: height,
		cells:  make([]State, width*height),
		rows:   make([][]State, height),
	}
	cell_data := grid.cells
	for i := 0; i != height; i++ {
		grid.rows[i] = cell_data[0:width:width]
		cell_data = cell_data[width:]
	}
	return grid
}

// NewGrid constructs a width x height grid, asking init for the state of every
// (row, column). A nil init leaves every cell dead.
func NewGrid(width, height int, init func(row, col int) State) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	grid := makeGrid(width, height)
	if init == nil {
		return grid, nil
	}
	for y := 0; y != height; y++ {
		for x := 0; x != width; x++ {
			if init(y, x) == Alive {
				grid.rows[y][x] = Alive
			}
		}
	}
	return grid, nil
}

// FromRows builds a grid from literal rows. All rows must have the same, non-zero length.
func FromRows(rows [][]State) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrInvalidDimension)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, i, len(row), width)
		}
	}
	return NewGrid(width, len(rows), func(row, col int) State {
		return rows[row][col]
	})
}

// Dimensions returns the width and height of the grid.
func (grid *Grid) Dimensions() (width, height int) {
	return grid.width, grid.height
}

// Get returns the state at (row, col) after wrapping both coordinates onto the torus.
func (grid *Grid) Get(row, col int) State {
	row, col = grid.wrap(row, col)
	return grid.rows[row][col]
}

// LiveNeighbourCount counts alive cells among the eight wrapped neighbours of (row, col).
// On grids one cell wide or high a neighbour may be counted more than once.
func (grid *Grid) LiveNeighbourCount(row, col int) int {
	row, col = grid.wrap(row, col)
	up := grid.rows[(row-1+grid.height)%grid.height]
	middle := grid.rows[row]
	down := grid.rows[(row+1)%grid.height]
	left := (col - 1 + grid.width) % grid.width
	right := (col + 1) % grid.width
	return up[left].count() + up[col].count() + up[right].count() +
		middle[left].count() + middle[right].count() +
		down[left].count() + down[col].count() + down[right].count()
}

// Equal reports whether both grids have the same dimensions and the same cells.
func (grid *Grid) Equal(other *Grid) bool {
	if grid == nil || other == nil {
		return grid == other
	}
	if grid.width != other.width || grid.height != other.height {
		return false
	}
	for i, state := range grid.cells {
		if other.cells[i] != state {
			return false
		}
	}
	return true
}

// AliveCells lists the alive cells in row-major order.
func (grid *Grid) AliveCells() []util.Cell {
	cells := make([]util.Cell, 0, grid.AliveCount())
	for y := 0; y != grid.height; y++ {
		for x := 0; x != grid.width; x++ {
			if grid.rows[y][x] == Alive {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

func (grid *Grid) AliveCount() int {
	count := 0
	for _, state := range grid.cells {
		if state == Alive {
			count++
		}
	}
	return count
}

func (grid *Grid) String() string {
	var b strings.Builder
	b.Grow((grid.width + 1) * grid.height)
	for _, row := range grid.rows {
		for _, state := range row {
			b.WriteString(state.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Normalise coordinates onto the torus
func (grid *Grid) wrap(row, col int) (int, int) {
	row %= grid.height
	if row < 0 {
		row += grid.height
	}
	col %= grid.width
	if col < 0 {
		col += grid.width
	}
	return row, col
}
