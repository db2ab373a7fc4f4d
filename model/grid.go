package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is returned when a cell coordinate falls outside the grid
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrPatternTooLarge is returned when a seed pattern does not fit the grid
	ErrPatternTooLarge = errors.New("pattern does not fit grid")
)

// Grid holds the alive/dead state of one generation, indexed by (row, col)
type Grid struct {
	height int
	width  int
	cells  [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(height, width int) *Grid {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("model: invalid grid size %dx%d", height, width))
	}
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  cells,
	}
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Reset resizes the grid to new dimensions, killing every cell
func (g *Grid) Reset(height, width int) {
	g.height = height
	g.width = width

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for row := range g.cells {
		clear(g.cells[row])
	}
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Get] (%d,%d) in %dx%d grid", row, col, g.height, g.width)
	}
	return g.cells[row][col], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) in %dx%d grid", row, col, g.height, g.width)
	}
	g.cells[row][col] = alive
	return nil
}

// CountAliveNeighbors counts living cells among the up to 8 neighbors of (row, col).
// Neighbors outside the grid are absent, the edges do not wrap.
func (g *Grid) CountAliveNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Seed overwrites the centered box covered by pattern with its values.
// Cells outside the box are left untouched.
func (g *Grid) Seed(p Pattern) error {
	rowOffset, colOffset := p.Offset(g.height, g.width)
	if rowOffset < 0 || colOffset < 0 ||
		rowOffset+p.Height() > g.height || colOffset+p.Width() > g.width {
		return errors.Wrapf(ErrPatternTooLarge, "[Seed] %s (%dx%d) in %dx%d grid",
			p.Name, p.Height(), p.Width(), g.height, g.width)
	}

	for r, line := range p.Rows {
		for c, v := range line {
			g.cells[rowOffset+r][colOffset+c] = v == 1
		}
	}
	return nil
}
