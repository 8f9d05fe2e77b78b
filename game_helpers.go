package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

// game owns the grid and everything that happens between two generations
type game struct {
	config   utils.Config
	grid     *model.Grid
	pool     *model.GridPool
	src      model.RandomSource
	renderer model.Renderer
	sink     model.DebugSink
	stats    *utils.Stats
	tracker  utils.StagnationTracker
	status   io.Writer // nil suppresses status lines

	generation     int // generations across restarts
	lastRestartGen int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, sink model.DebugSink) (*game, error) {
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &game{
		config: config,
		pool:   model.NewGridPool(),
		src:    model.NewRandomSource(seed),
		sink:   sink,
		stats:  utils.NewStats(),
	}

	grid, err := g.pool.Get(config.Size)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	if err := g.reseed(grid); err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	g.grid = grid
	return g, nil
}

func (g *game) reseed(grid *model.Grid) error {
	return model.FillRandomDensity(grid, g.src, g.config.Density)
}

// loop steps the grid every interval until ctx is done or the generation limit is hit.
// A zero interval steps back to back.
func (g *game) loop(ctx context.Context, interval time.Duration) error {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		done, err := g.step()
		if err != nil || done {
			return err
		}
	}
}

// step advances one generation and reports whether the run is finished
func (g *game) step() (bool, error) {
	frameStart := time.Now()
	if err := model.NextTurn(g.grid, g.renderer); err != nil {
		return false, errors.Wrapf(err, "[step] generation %d", g.generation+1)
	}
	g.generation++
	model.Debug(g.grid, g.sink)

	livingCells := g.grid.CountOccupied()
	g.stats.Update(g.generation, livingCells, time.Since(frameStart))
	isStagnant := g.tracker.Observe(g.grid.Hash())
	g.displayGameStatus(livingCells, isStagnant)

	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		g.printf("\nReached maximum generations limit (%d)\n", g.config.MaxGenerations)
		return true, nil
	}

	shouldRestart, reason := checkRestartConditions(livingCells, g.tracker.Streak(), g.config)
	if shouldRestart && g.config.AutoRestart {
		if err := g.restart(reason); err != nil {
			return false, err
		}
	}
	return false, nil
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restart swaps in a freshly seeded grid from the pool
func (g *game) restart(reason string) error {
	g.printf("Restarting due to %s...\n", reason)

	grid, err := g.pool.Get(g.config.Size)
	if err != nil {
		return errors.Wrap(err, "[restart]")
	}
	if err := g.reseed(grid); err != nil {
		return errors.Wrap(err, "[restart]")
	}
	model.GridToPool(g.grid, g.pool)
	g.grid = grid

	g.tracker.Reset()
	g.stats.Restarts++
	g.lastRestartGen = g.generation
	g.printf("New board seeded! Living cells: %d\n", g.grid.CountOccupied())
	return nil
}

func (g *game) printf(format string, args ...any) {
	if g.status == nil {
		return
	}
	fmt.Fprintf(g.status, format, args...)
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	g.printf("Grid: %dx%d | Density: %.2f | Initial living cells: %d\n",
		g.grid.Size(), g.grid.Size(), g.config.Density, g.grid.CountOccupied())
	g.printf("Press Ctrl+C to exit gracefully\n\n")
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(livingCells int, isStagnant bool) {
	size := g.grid.Size()
	density := float64(livingCells) / float64(size*size) * 100

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", g.tracker.Streak())
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	g.printf("Gen: %d | Turn: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, g.grid.Turn(), livingCells, density, status)
	g.printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
	if g.generation > g.lastRestartGen && g.lastRestartGen > 0 {
		g.printf("Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
}

// displayFinalStats summarises the run once the loop has stopped
func displayFinalStats(g *game, w io.Writer) {
	fmt.Fprintf(w, "Final stats: %d generations, %d restarts in %.1f seconds\n",
		g.generation, g.stats.Restarts, g.stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f avg population\n", g.stats.AveragePopulation)
}

// presentingRenderer flushes the surface after every frame
type presentingRenderer struct {
	model.Renderer
	present func()
}

func (r *presentingRenderer) DrawCells(g *model.Grid) error {
	return r.draw(r.Renderer.DrawCells, g)
}

func (r *presentingRenderer) draw(paint func(*model.Grid) error, g *model.Grid) error {
	if err := paint(g); err != nil {
		return err
	}
	r.present()
	return nil
}
