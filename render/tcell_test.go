package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTcellCanvas(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	c := NewTcellCanvas(screen)
	b, err := NewBoard(c)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Draw(mustParse(t, "X__\n_X_\n___\n")); err != nil {
		t.Fatal(err)
	}
	c.Show()

	occupied := tcell.FromImageColor(DefaultPalette.Occupied)
	empty := tcell.FromImageColor(DefaultPalette.Empty)

	tests := []struct {
		name     string
		col, row int
		want     tcell.Color
	}{
		{"first column of (0, 0)", 0, 0, occupied},
		{"second column of (0, 0)", 1, 0, occupied},
		{"(0, 1)", 2, 0, empty},
		{"(1, 1)", 3, 1, occupied},
		{"(2, 2)", 5, 2, empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, style, _ := screen.GetContent(tt.col, tt.row)
			_, bg, _ := style.Decompose()
			if bg != tt.want {
				t.Fatalf("background at (%d, %d) = %v, want %v", tt.col, tt.row, bg, tt.want)
			}
		})
	}

	_, _, style, _ := screen.GetContent(6, 0)
	if _, bg, _ := style.Decompose(); bg == occupied || bg == empty {
		t.Fatal("canvas painted outside the 3x3 board")
	}
}
