package model

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a grid is requested with a size below 1
	ErrInvalidSize = errors.New("grid size must be at least 1")
	// ErrInvalidDensity is returned for occupancy probabilities outside [0, 1]
	ErrInvalidDensity = errors.New("density must be within [0, 1]")
	// ErrNoRandomSource is returned when a randomizer is called without a source
	ErrNoRandomSource = errors.New("no random source")
	// ErrNoRenderer is returned when NextTurn is called without a renderer
	ErrNoRenderer = errors.New("no renderer")
	// ErrMalformedBoard is returned by Parse for text that is not a square board
	ErrMalformedBoard = errors.New("malformed board")
)
