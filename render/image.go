package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
)

type segment struct {
	x0, y0, x1, y1 float64
}

// ImageCanvas draws into an in-memory RGBA image
type ImageCanvas struct {
	img       *image.RGBA
	fill      color.Color
	LineColor color.Color

	path   []segment
	cx, cy float64
}

// NewImageCanvas allocates a transparent w x h canvas
func NewImageCanvas(w, h int) *ImageCanvas {
	return &ImageCanvas{
		img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		fill:      color.Black,
		LineColor: color.Black,
	}
}

// NewImageCanvasFor sizes a canvas to fit a size x size board laid out with geo
func NewImageCanvasFor(size int, geo Geometry) *ImageCanvas {
	side := geo.Extent(size)
	return NewImageCanvas(side, side)
}

// Image exposes the backing image
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

func (c *ImageCanvas) SetFillStyle(col color.Color) { c.fill = col }

func (c *ImageCanvas) FillRect(x, y, w, h float64) {
	r := image.Rect(int(x), int(y), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(c.fill), image.Point{}, draw.Src)
}

func (c *ImageCanvas) BeginPath() { c.path = c.path[:0] }

func (c *ImageCanvas) MoveTo(x, y float64) { c.cx, c.cy = x, y }

func (c *ImageCanvas) LineTo(x, y float64) {
	c.path = append(c.path, segment{c.cx, c.cy, x, y})
	c.cx, c.cy = x, y
}

// Stroke draws every segment of the current path one pixel wide
func (c *ImageCanvas) Stroke() {
	for _, s := range c.path {
		c.line(s)
	}
}

func (c *ImageCanvas) line(s segment) {
	dx, dy := s.x1-s.x0, s.y1-s.y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		c.img.Set(int(s.x0), int(s.y0), c.LineColor)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.img.Set(int(math.Round(s.x0+t*dx)), int(math.Round(s.y0+t*dy)), c.LineColor)
	}
}

// WritePNG encodes the canvas as PNG
func (c *ImageCanvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return errors.Wrap(err, "[WritePNG] failed to encode image")
	}
	return nil
}
