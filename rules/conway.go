package rules

/*
Next reports whether a cell is alive in the following generation.

Conway's Game of Life rules: a cell with exactly 3 living neighbors is born or survives,
a living cell with exactly 2 living neighbors survives, every other cell is dead.
*/
func Next(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
