package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/render"
	"github.com/sheikhrachel/gol-engine/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Size = 6
	config.Seed = 11
	config.Interval = 0
	config.ClearScreen = false
	return config
}

func newTestGame(t *testing.T, config utils.Config) (*game, *bytes.Buffer) {
	t.Helper()
	g, err := initializeGame(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	g.renderer = render.NewTextRenderer(&out, false)
	g.status = &out
	return g, &out
}

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gol.json")
	if err := os.WriteFile(path, []byte(`{"size": 30, "density": 0.2}`), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := parseConfig([]string{"-config", path, "-density", "0.6"})
	if err != nil {
		t.Fatal(err)
	}
	if config.Size != 30 || config.Density != 0.6 {
		t.Fatalf("size=%d density=%v, want 30 and 0.6", config.Size, config.Density)
	}
}

func TestParseConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	if _, err := parseConfig([]string{"-config", missing}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("explicit missing config error = %v", err)
	}
	if _, err := parseConfig([]string{"-size", "0"}); !errors.Is(err, utils.ErrInvalidConfig) {
		t.Fatalf("size 0 error = %v", err)
	}
	if _, err := parseConfig([]string{"-no-such-flag"}); err == nil {
		t.Fatal("unknown flag accepted")
	}
}

func TestInitializeGame(t *testing.T) {
	config := testConfig()
	config.Density = 1
	g, _ := newTestGame(t, config)
	if g.grid.Size() != 6 || g.grid.Turn() != 0 {
		t.Fatalf("size=%d turn=%d", g.grid.Size(), g.grid.Turn())
	}
	if g.grid.CountOccupied() != 36 {
		t.Fatalf("density 1 seeded %d cells", g.grid.CountOccupied())
	}
}

func TestStepStopsAtMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 3
	config.AutoRestart = false
	g, out := newTestGame(t, config)

	if err := g.loop(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if g.generation != 3 || g.grid.Turn() != 3 {
		t.Fatalf("generation=%d turn=%d, want 3", g.generation, g.grid.Turn())
	}
	if !strings.Contains(out.String(), "Reached maximum generations limit (3)") {
		t.Fatalf("missing limit message in\n%s", out.String())
	}
}

func TestStepRestartsOnExtinction(t *testing.T) {
	config := testConfig()
	config.Density = 0.5
	g, out := newTestGame(t, config)

	g.grid.Clear()
	if _, err := g.step(); err != nil {
		t.Fatal(err)
	}
	if g.stats.Restarts != 1 {
		t.Fatalf("Restarts = %d, want 1", g.stats.Restarts)
	}
	if g.grid.Turn() != 0 {
		t.Fatal("restart should swap in a fresh grid at turn 0")
	}
	if !strings.Contains(out.String(), "Restarting due to extinction") {
		t.Fatalf("missing restart message in\n%s", out.String())
	}
}

func TestStepRestartsOnStagnation(t *testing.T) {
	config := testConfig()
	config.StagnationThreshold = 2
	g, _ := newTestGame(t, config)

	block, err := model.Parse("XX____\nXX____\n______\n______\n______\n______\n")
	if err != nil {
		t.Fatal(err)
	}
	g.grid = block

	for range 3 {
		if _, err := g.step(); err != nil {
			t.Fatal(err)
		}
	}
	if g.stats.Restarts != 1 {
		t.Fatalf("Restarts = %d, want 1 after a still life repeats twice", g.stats.Restarts)
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := testConfig()
	tests := []struct {
		name     string
		living   int
		stagnant int
		want     bool
		reason   string
	}{
		{"extinct", 0, 0, true, "extinction"},
		{"stagnant", 5, config.StagnationThreshold, true, "stagnation detected"},
		{"active", 5, 1, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := checkRestartConditions(tt.living, tt.stagnant, config)
			if got != tt.want || reason != tt.reason {
				t.Fatalf("got (%v, %q), want (%v, %q)", got, reason, tt.want, tt.reason)
			}
		})
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.loop(ctx, time.Hour); err != nil {
		t.Fatal(err)
	}
	if g.generation != 0 {
		t.Fatalf("stepped %d times after cancellation", g.generation)
	}
}

func TestInitSurfacePNG(t *testing.T) {
	config := testConfig()
	config.Renderer = utils.RendererPNG
	config.MaxGenerations = 2
	config.Output = filepath.Join(t.TempDir(), "board.png")

	var out bytes.Buffer
	surf, err := initSurface(config, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !surf.headless {
		t.Fatal("png surface should be headless")
	}

	g, err := initializeGame(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.renderer = surf.renderer
	if err := surf.initial(g.grid); err != nil {
		t.Fatal(err)
	}
	if err := g.loop(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if err := surf.close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(config.Output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if side := render.DefaultGeometry.Extent(config.Size); img.Bounds().Dx() != side {
		t.Fatalf("image width %d, want %d", img.Bounds().Dx(), side)
	}
}

func TestInitSurfaceUnknownRenderer(t *testing.T) {
	config := testConfig()
	config.Renderer = "canvas"
	_, err := initSurface(config, &bytes.Buffer{})
	var surfErr *SurfaceError
	if !errors.As(err, &surfErr) || surfErr.Renderer != "canvas" {
		t.Fatalf("error = %v, want *SurfaceError for canvas", err)
	}
	if !errors.Is(err, render.ErrBackendUnavailable) {
		t.Fatal("SurfaceError should unwrap to ErrBackendUnavailable")
	}
}

type countingRenderer struct{ draws int }

func (r *countingRenderer) DrawCells(*model.Grid) error {
	r.draws++
	return nil
}

func TestPresentingRenderer(t *testing.T) {
	inner := &countingRenderer{}
	presented := 0
	r := &presentingRenderer{Renderer: inner, present: func() { presented++ }}

	g := model.CreateSimulation()
	if err := model.NextTurn(g, r); err != nil {
		t.Fatal(err)
	}
	if inner.draws != 1 || presented != 1 {
		t.Fatalf("draws=%d presented=%d, want 1 each", inner.draws, presented)
	}
}
