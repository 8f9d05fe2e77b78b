package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grids of any size between restarts
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an empty grid of the given size at turn 0
func (p *GridPool) Get(size int) (*Grid, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "[GridPool.Get] size %d", size)
	}
	g := p.pool.Get().(*Grid)
	g.reset(size)
	return g, nil
}

// Put clears the grid and returns it to the pool
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}

// reset resizes the grid, reusing its matrices when the size already matches
func (g *Grid) reset(size int) {
	if g.size != size || len(g.cells) != size {
		g.size = size
		g.cells = newMatrix(size)
		g.next = newMatrix(size)
	} else {
		g.Clear()
	}
	g.turn = 0
}
