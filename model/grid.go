package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// DefaultSize is the board dimension used by CreateSimulation
const DefaultSize = 15

// Grid is a square Game of Life board and the generation it is on
type Grid struct {
	size  int
	cells [][]Cell
	next  [][]Cell // scratch generation, swapped with cells by Simulate
	turn  int
}

// NewGrid creates an all-empty size x size grid at turn 0
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] size %d", size)
	}
	return &Grid{
		size:  size,
		cells: newMatrix(size),
		next:  newMatrix(size),
	}, nil
}

// CreateSimulation returns a new empty grid of DefaultSize
func CreateSimulation() *Grid {
	g, err := NewGrid(DefaultSize)
	if err != nil {
		panic(err)
	}
	return g
}

func newMatrix(size int) [][]Cell {
	m := make([][]Cell, size)
	for i := range m {
		m[i] = make([]Cell, size)
	}
	return m
}

// Size returns the number of rows (and columns) of the grid
func (g *Grid) Size() int {
	return g.size
}

// Turn returns the number of completed generations
func (g *Grid) Turn() int {
	return g.turn
}

// Get returns the cell at row, col. Out-of-range coordinates panic.
func (g *Grid) Get(row, col int) Cell {
	g.mustContain(row, col)
	return g.cells[row][col]
}

// Set stores cell at row, col. Out-of-range coordinates panic.
func (g *Grid) Set(row, col int, cell Cell) {
	g.mustContain(row, col)
	g.cells[row][col] = cell
}

// Occupied reports whether the cell at row, col is occupied
func (g *Grid) Occupied(row, col int) bool {
	return g.Get(row, col) == Occupied
}

func (g *Grid) mustContain(row, col int) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		panic(fmt.Sprintf("model: cell (%d, %d) outside %dx%d grid", row, col, g.size, g.size))
	}
}

// Clear empties every cell without touching the turn counter
func (g *Grid) Clear() {
	for _, row := range g.cells {
		for col := range row {
			row[col] = Empty
		}
	}
}

// CountOccupied returns the number of occupied cells
func (g *Grid) CountOccupied() (count int) {
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == Occupied {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same size and cells; turns are ignored
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the cell matrix
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, g.size)
	for _, row := range g.cells {
		for col, cell := range row {
			buf[col] = byte(cell)
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
