package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Renderer names accepted by Config.Renderer
const (
	RendererText   = "text"
	RendererTcell  = "tcell"
	RendererPNG    = "png"
	RendererEbiten = "ebiten"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the host
type Config struct {
	Size                int           `json:"size"`
	Density             float64       `json:"density"`
	Seed                uint64        `json:"seed"` // 0 picks a time based seed
	Interval            time.Duration `json:"interval"`
	Renderer            string        `json:"renderer"`
	Output              string        `json:"output"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	Debug               bool          `json:"debug"`
	ClearScreen         bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:                15,
		Density:             0.4,
		Interval:            800 * time.Millisecond,
		Renderer:            RendererText,
		Output:              "gol.png",
		MaxGenerations:      0,
		AutoRestart:         true,
		StagnationThreshold: 5,
		Debug:               false,
		ClearScreen:         true,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "board size (cells per side)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability of a cell starting occupied")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time based")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "text, tcell, png or ebiten")
	fs.StringVar(&c.Output, "out", c.Output, "output file for the png renderer")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations, 0 runs forever")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "reseed when the board dies out or stagnates")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "stagnant generations before a restart")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log every generation to stderr")
	fs.BoolVar(&c.ClearScreen, "clear", c.ClearScreen, "clear the terminal between text frames")
}

// Validate checks the values a host cannot run with
func (c Config) Validate() error {
	switch {
	case c.Size < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size %d", c.Size)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] density %v", c.Density)
	case c.Interval < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] interval %v", c.Interval)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations %d", c.MaxGenerations)
	case c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation threshold %d", c.StagnationThreshold)
	case c.Renderer == RendererPNG && c.MaxGenerations == 0:
		return errors.Wrap(ErrInvalidConfig, "[Validate] png renderer needs max generations")
	}
	switch c.Renderer {
	case RendererText, RendererTcell, RendererPNG, RendererEbiten:
		return nil
	}
	return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown renderer %q", c.Renderer)
}
