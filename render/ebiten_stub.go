//go:build !ebiten

package render

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

// RunWindow reports that the window backend needs the ebiten build tag
func RunWindow(*model.Grid, WindowOptions) error {
	return errors.Wrap(ErrBackendUnavailable, "[RunWindow] rebuild with -tags ebiten")
}
