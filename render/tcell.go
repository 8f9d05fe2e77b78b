package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	// CellWidth is the number of surface units covered by one terminal column
	CellWidth = 10
	// CellHeight is the number of surface units covered by one terminal row
	CellHeight = 20
)

// TcellCanvas paints on a terminal screen. Each board cell covers two columns and one row
// with the default geometry. Grid lines are thinner than a character and are not drawn.
type TcellCanvas struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTcellCanvas wraps an initialised screen
func NewTcellCanvas(screen tcell.Screen) *TcellCanvas {
	return &TcellCanvas{screen: screen, style: tcell.StyleDefault}
}

func (c *TcellCanvas) SetFillStyle(col color.Color) {
	c.style = tcell.StyleDefault.Background(tcell.FromImageColor(col))
}

func (c *TcellCanvas) FillRect(x, y, w, h float64) {
	x0, y0 := int(x)/CellWidth, int(y)/CellHeight
	x1 := (int(math.Ceil(x+w)) + CellWidth - 1) / CellWidth
	y1 := (int(math.Ceil(y+h)) + CellHeight - 1) / CellHeight
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c.screen.SetContent(col, row, ' ', nil, c.style)
		}
	}
}

func (c *TcellCanvas) BeginPath()          {}
func (c *TcellCanvas) MoveTo(x, y float64) {}
func (c *TcellCanvas) LineTo(x, y float64) {}
func (c *TcellCanvas) Stroke()             {}

// Show flushes pending cells to the terminal
func (c *TcellCanvas) Show() {
	c.screen.Show()
}
