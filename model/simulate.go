package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/rules"
)

// Renderer paints a grid after it has been stepped
type Renderer interface {
	DrawCells(g *Grid) error
}

// Simulate advances the grid by one generation.
// Every next state is computed from the current generation before any cell is replaced.
func Simulate(g *Grid) {
	for row := range g.size {
		for col := range g.size {
			alive := g.cells[row][col] == Occupied
			if rules.Next(alive, CountNeighbors(g, row, col)) {
				g.next[row][col] = Occupied
			} else {
				g.next[row][col] = Empty
			}
		}
	}
	g.cells, g.next = g.next, g.cells
	g.turn++
}

// NextTurn simulates one generation and hands the grid to r
func NextTurn(g *Grid, r Renderer) error {
	if r == nil {
		return errors.Wrap(ErrNoRenderer, "[NextTurn]")
	}
	Simulate(g)
	if err := r.DrawCells(g); err != nil {
		return errors.Wrapf(err, "[NextTurn] failed to draw turn %d", g.turn)
	}
	return nil
}
