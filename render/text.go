package render

import (
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TextRenderer prints grids as block characters; it implements model.Renderer directly
type TextRenderer struct {
	w     io.Writer
	clear bool
}

// NewTextRenderer writes to w, clearing the terminal before each frame when clear is set
func NewTextRenderer(w io.Writer, clear bool) *TextRenderer {
	return &TextRenderer{w: w, clear: clear}
}

// DrawCells renders the grid to the writer
func (r *TextRenderer) DrawCells(g *model.Grid) error {
	if r.clear {
		if err := r.Clear(); err != nil {
			return err
		}
	}
	buf := make([]byte, 0, g.Size()*(len(gridPosBlock)*g.Size()+1))
	for row := range g.Size() {
		for col := range g.Size() {
			if g.Occupied(row, col) {
				buf = append(buf, gridPosBlock...)
			} else {
				buf = append(buf, gridPosEmpty...)
			}
		}
		buf = append(buf, '\n')
	}
	if _, err := r.w.Write(buf); err != nil {
		return errors.Wrap(err, "[TextRenderer.DrawCells] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() error {
	if _, err := io.WriteString(r.w, ansiClear); err != nil {
		return errors.Wrap(err, "[TextRenderer.Clear] failed to clear terminal")
	}
	return nil
}
