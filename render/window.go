package render

import "github.com/sheikhrachel/gol-engine/model"

// WindowOptions configures RunWindow
type WindowOptions struct {
	Title     string
	TPS       int                     // window frame rate
	StepEvery int                     // frames between generations
	Reseed    func(*model.Grid) error // bound to R; nil disables reseeding
	Sink      model.DebugSink
}

func (o *WindowOptions) defaults() {
	if o.TPS <= 0 {
		o.TPS = 60
	}
	if o.StepEvery <= 0 {
		o.StepEvery = 1
	}
	if o.Title == "" {
		o.Title = "gol"
	}
}
