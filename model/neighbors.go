package model

// CountNeighbors counts the occupied cells around row, col.
// The window is clamped to the board, so corners see at most 3 neighbors and edges 5.
func CountNeighbors(g *Grid, row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.size-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.size-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] == Occupied {
				count++
			}
		}
	}

	return count
}
