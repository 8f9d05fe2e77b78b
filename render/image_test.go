package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestImageCanvas(t *testing.T) {
	g := mustParse(t, "X_\n_X\n")
	c := NewImageCanvasFor(g.Size(), DefaultGeometry)
	b, err := NewBoard(c)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Draw(g); err != nil {
		t.Fatal(err)
	}

	img := c.Image()
	if w := img.Bounds().Dx(); w != 42 {
		t.Fatalf("image width %d, want 42", w)
	}

	tests := []struct {
		name string
		x, y int
		want color.Color
	}{
		{"occupied cell", 10, 10, DefaultPalette.Occupied},
		{"empty cell", 30, 10, DefaultPalette.Empty},
		{"second occupied cell", 30, 30, DefaultPalette.Occupied},
		{"vertical grid line", 21, 5, color.Black},
		{"horizontal grid line", 5, 41, color.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.At(tt.x, tt.y); !sameColor(got, tt.want) {
				t.Fatalf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	c := NewImageCanvas(4, 3)
	c.SetFillStyle(color.White)
	c.FillRect(0, 0, 4, 3)

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("decoded bounds %v", b)
	}
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
