package render

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

var (
	// ErrNoCanvas is returned when a Board is created without a surface
	ErrNoCanvas = errors.New("no canvas")
	// ErrBackendUnavailable is returned by backends that were not compiled in
	ErrBackendUnavailable = errors.New("render backend unavailable")
)

// Canvas is the drawing capability a surface has to provide
type Canvas interface {
	SetFillStyle(c color.Color)
	FillRect(x, y, w, h float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// Geometry fixes where cells and grid lines land in surface units
type Geometry struct {
	Step  int // distance between grid lines
	Inset int // offset of a cell square from its grid line
	Side  int // side of a cell square
}

// DefaultGeometry is a 20 unit grid with 18 unit cells
var DefaultGeometry = Geometry{Step: 20, Inset: 2, Side: 18}

// CellRect returns the square painted for row, col
func (g Geometry) CellRect(row, col int) (x, y, w, h float64) {
	return float64(col*g.Step + g.Inset), float64(row*g.Step + g.Inset), float64(g.Side), float64(g.Side)
}

// Extent returns the width and height of a size x size board
func (g Geometry) Extent(size int) int {
	return g.Step*size + g.Inset
}

// Palette holds the cell colours used by a Board; line colour belongs to the Canvas
type Palette struct {
	Occupied color.Color
	Empty    color.Color
}

// DefaultPalette paints occupied cells dark grey on white
var DefaultPalette = Palette{
	Occupied: color.RGBA{R: 64, G: 64, B: 64, A: 255},
	Empty:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
}

// Board draws grids onto a Canvas; it implements model.Renderer
type Board struct {
	canvas   Canvas
	geometry Geometry
	palette  Palette
}

// BoardOption customises a Board
type BoardOption func(*Board)

// WithGeometry overrides DefaultGeometry
func WithGeometry(g Geometry) BoardOption {
	return func(b *Board) { b.geometry = g }
}

// WithPalette overrides DefaultPalette
func WithPalette(p Palette) BoardOption {
	return func(b *Board) { b.palette = p }
}

// NewBoard wraps c
func NewBoard(c Canvas, opts ...BoardOption) (*Board, error) {
	if c == nil {
		return nil, errors.Wrap(ErrNoCanvas, "[NewBoard]")
	}
	b := &Board{canvas: c, geometry: DefaultGeometry, palette: DefaultPalette}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Geometry returns the layout the board paints with
func (b *Board) Geometry() Geometry {
	return b.geometry
}

// DrawCells fills one square per cell
func (b *Board) DrawCells(g *model.Grid) error {
	for row := range g.Size() {
		for col := range g.Size() {
			if g.Occupied(row, col) {
				b.canvas.SetFillStyle(b.palette.Occupied)
			} else {
				b.canvas.SetFillStyle(b.palette.Empty)
			}
			b.canvas.FillRect(b.geometry.CellRect(row, col))
		}
	}
	return nil
}

// DrawGrid strokes size+1 vertical and size+1 horizontal lines in a single path
func (b *Board) DrawGrid(size int) {
	step := float64(b.geometry.Step)
	end := 1 + step*float64(size)

	b.canvas.BeginPath()
	for k := 0; k <= size; k++ {
		pos := float64(k)*step + 1
		b.canvas.MoveTo(pos, 1)
		b.canvas.LineTo(pos, end)
		b.canvas.MoveTo(1, pos)
		b.canvas.LineTo(end, pos)
	}
	b.canvas.Stroke()
}

// Draw paints the grid lines and then every cell
func (b *Board) Draw(g *model.Grid) error {
	b.DrawGrid(g.Size())
	return b.DrawCells(g)
}
