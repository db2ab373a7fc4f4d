package rules

/*
NextCellState applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3,
every other combination is dead in the next generation.
*/
func NextCellState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
