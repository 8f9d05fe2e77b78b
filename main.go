package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/render"
	"github.com/sheikhrachel/gol-engine/utils"
)

const defaultConfigPath = "config.json"

// SurfaceError reports a drawing surface that could not be set up
type SurfaceError struct {
	Renderer string
	Err      error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("renderer %q unavailable: %v", e.Renderer, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// surface bundles a renderer with the lifecycle hooks of its backend
type surface struct {
	renderer model.Renderer
	initial  func(*model.Grid) error            // first frame, grid lines included
	events   func(context.Context, func()) error // optional input watcher
	close    func() error
	status   io.Writer

	// headless surfaces step without waiting between generations
	headless bool
}

func main() {
	config, err := parseConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "gol:", err)
		os.Exit(2)
	}

	if err := run(config); err != nil {
		var surfErr *SurfaceError
		if errors.As(err, &surfErr) {
			fmt.Fprintf(os.Stderr, "gol: cannot draw with %s: %v\n", surfErr.Renderer, surfErr.Err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "gol:", err)
		os.Exit(1)
	}
}

func newFlagSet(path *string, config *utils.Config) *flag.FlagSet {
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	fs.StringVar(path, "config", *path, "JSON configuration file")
	config.Bind(fs)
	return fs
}

// parseConfig layers defaults, the JSON file and command line flags, in that order
func parseConfig(args []string) (utils.Config, error) {
	path := defaultConfigPath
	var scratch utils.Config
	pre := newFlagSet(&path, &scratch)
	pre.SetOutput(io.Discard)
	if err := pre.Parse(args); err != nil && !errors.Is(err, flag.ErrHelp) {
		return scratch, errors.Wrap(err, "[parseConfig]")
	}

	config, err := utils.LoadConfig(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || path != defaultConfigPath {
			return config, err
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	if err := newFlagSet(&path, &config).Parse(args); err != nil {
		return config, err
	}
	return config, config.Validate()
}

// initSurface sets up the drawing backend named by the config
func initSurface(config utils.Config, stdout io.Writer) (*surface, error) {
	switch config.Renderer {
	case utils.RendererText:
		r := render.NewTextRenderer(stdout, config.ClearScreen)
		return &surface{
			renderer: r,
			initial:  r.DrawCells,
			close:    func() error { return nil },
			status:   stdout,
		}, nil

	case utils.RendererTcell:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, &SurfaceError{Renderer: config.Renderer, Err: err}
		}
		if err := screen.Init(); err != nil {
			return nil, &SurfaceError{Renderer: config.Renderer, Err: err}
		}
		canvas := render.NewTcellCanvas(screen)
		board, err := render.NewBoard(canvas)
		if err != nil {
			screen.Fini()
			return nil, &SurfaceError{Renderer: config.Renderer, Err: err}
		}
		r := &presentingRenderer{Renderer: board, present: canvas.Show}
		return &surface{
			renderer: r,
			initial: func(g *model.Grid) error {
				screen.Clear()
				return r.draw(board.Draw, g)
			},
			events: func(ctx context.Context, stop func()) error {
				return pollKeys(ctx, screen, stop)
			},
			close: func() error {
				screen.Fini()
				return nil
			},
		}, nil

	case utils.RendererPNG:
		canvas := render.NewImageCanvasFor(config.Size, render.DefaultGeometry)
		board, err := render.NewBoard(canvas)
		if err != nil {
			return nil, &SurfaceError{Renderer: config.Renderer, Err: err}
		}
		return &surface{
			renderer: board,
			initial:  board.Draw,
			close:    func() error { return writePNG(canvas, config.Output) },
			headless: true,
			status:   stdout,
		}, nil
	}
	return nil, &SurfaceError{Renderer: config.Renderer, Err: render.ErrBackendUnavailable}
}

func writePNG(canvas *render.ImageCanvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[writePNG] failed to create %s", path)
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "[writePNG] failed to close %s", path)
}

// pollKeys stops the game on Esc, q or Ctrl+C
func pollKeys(ctx context.Context, screen tcell.Screen, stop func()) error {
	unblock := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer unblock()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				stop()
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// waitForSignal stops the game on SIGINT or SIGTERM
func waitForSignal(ctx context.Context, stop func()) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		stop()
	case <-ctx.Done():
	}
	return nil
}

func run(config utils.Config) error {
	var sink model.DebugSink
	if config.Debug {
		sink = log.New(os.Stderr, "gol: ", log.Ltime)
	}

	g, err := initializeGame(config, sink)
	if err != nil {
		return err
	}

	if config.Renderer == utils.RendererEbiten {
		err := render.RunWindow(g.grid, render.WindowOptions{
			Title:     "gol",
			StepEvery: max(1, int(config.Interval/(time.Second/60))),
			Reseed:    g.reseed,
			Sink:      sink,
		})
		if err != nil {
			return &SurfaceError{Renderer: config.Renderer, Err: err}
		}
		return nil
	}

	surf, err := initSurface(config, os.Stdout)
	if err != nil {
		return err
	}
	g.renderer = surf.renderer
	g.status = surf.status

	displayGameInfo(g)
	if err := surf.initial(g.grid); err != nil {
		_ = surf.close()
		return errors.Wrap(err, "[run] failed to draw first frame")
	}

	eg, ctx := errgroup.WithContext(context.Background())
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg.Go(func() error { return waitForSignal(ctx, cancel) })
	if surf.events != nil {
		eg.Go(func() error { return surf.events(ctx, cancel) })
	}
	eg.Go(func() error {
		defer cancel()
		interval := config.Interval
		if surf.headless {
			interval = 0
		}
		return g.loop(ctx, interval)
	})

	loopErr := eg.Wait()
	if err := surf.close(); err != nil && loopErr == nil {
		loopErr = err
	}
	displayFinalStats(g, os.Stdout)
	return loopErr
}
