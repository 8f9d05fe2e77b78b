package model

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// String renders the grid one row per line, '_' for empty and 'X' for occupied
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for _, row := range g.cells {
		for _, cell := range row {
			b.WriteRune(cell.rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the serialized grid to w
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	if err != nil {
		return int64(n), errors.Wrap(err, "[WriteTo] failed to write grid")
	}
	return int64(n), nil
}

// Parse builds a grid at turn 0 from the output of String.
// A missing final newline is tolerated; anything else that is not a square of '_' and 'X' is rejected.
func Parse(text string) (*Grid, error) {
	if text == "" {
		return nil, errors.Wrap(ErrMalformedBoard, "[Parse] empty input")
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	g, err := NewGrid(len(lines))
	if err != nil {
		return nil, errors.Wrap(err, "[Parse]")
	}
	for row, line := range lines {
		if len(line) != g.size {
			return nil, errors.Wrapf(ErrMalformedBoard, "[Parse] row %d has %d cells, want %d", row, len(line), g.size)
		}
		for col, ch := range []byte(line) {
			switch ch {
			case emptyRune:
				g.cells[row][col] = Empty
			case occupiedRune:
				g.cells[row][col] = Occupied
			default:
				return nil, errors.Wrapf(ErrMalformedBoard, "[Parse] unexpected %q at (%d, %d)", ch, row, col)
			}
		}
	}
	return g, nil
}
