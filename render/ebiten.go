//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

// EbitenCanvas draws onto the ebiten image it is currently targeting
type EbitenCanvas struct {
	target    *ebiten.Image
	fill      color.Color
	LineColor color.Color

	path   [][4]float32
	cx, cy float32
}

// NewEbitenCanvas returns a canvas with no target; call SetTarget every frame
func NewEbitenCanvas() *EbitenCanvas {
	return &EbitenCanvas{fill: color.Black, LineColor: color.Black}
}

// SetTarget selects the image subsequent calls draw onto
func (c *EbitenCanvas) SetTarget(img *ebiten.Image) { c.target = img }

func (c *EbitenCanvas) SetFillStyle(col color.Color) { c.fill = col }

func (c *EbitenCanvas) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), c.fill, false)
}

func (c *EbitenCanvas) BeginPath() { c.path = c.path[:0] }

func (c *EbitenCanvas) MoveTo(x, y float64) { c.cx, c.cy = float32(x), float32(y) }

func (c *EbitenCanvas) LineTo(x, y float64) {
	c.path = append(c.path, [4]float32{c.cx, c.cy, float32(x), float32(y)})
	c.cx, c.cy = float32(x), float32(y)
}

func (c *EbitenCanvas) Stroke() {
	for _, s := range c.path {
		vector.StrokeLine(c.target, s[0], s[1], s[2], s[3], 1, c.LineColor, false)
	}
}

type windowGame struct {
	grid   *model.Grid
	canvas *EbitenCanvas
	board  *Board
	opts   WindowOptions

	frames   int
	paused   bool
	tickOnce bool
}

func (w *windowGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && w.opts.Reseed != nil {
		if err := w.opts.Reseed(w.grid); err != nil {
			return err
		}
	}

	w.frames++
	if (!w.paused && w.frames%w.opts.StepEvery == 0) || w.tickOnce {
		model.Simulate(w.grid)
		model.Debug(w.grid, w.opts.Sink)
		w.tickOnce = false
	}
	return nil
}

func (w *windowGame) Draw(screen *ebiten.Image) {
	w.canvas.SetTarget(screen)
	screen.Fill(color.White)
	_ = w.board.Draw(w.grid)
}

func (w *windowGame) Layout(int, int) (int, int) {
	side := w.board.Geometry().Extent(w.grid.Size())
	return side, side
}

// RunWindow opens a window and steps g until it is closed
func RunWindow(g *model.Grid, opts WindowOptions) error {
	opts.defaults()
	canvas := NewEbitenCanvas()
	board, err := NewBoard(canvas)
	if err != nil {
		return errors.Wrap(err, "[RunWindow]")
	}
	game := &windowGame{grid: g, canvas: canvas, board: board, opts: opts}

	side := board.Geometry().Extent(g.Size())
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[RunWindow] game loop failed")
	}
	return nil
}
