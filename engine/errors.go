package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/umbrella/constants"
)

// ErrScreenTooSmall is fatal: the loop stops and the process exits non-zero
var ErrScreenTooSmall = errors.New("screen is too small")

// CheckSize returns ErrScreenTooSmall, wrapped with the observed size, when
// either canvas dimension is below the minimum
func CheckSize(width, height int) error {
	if width < constants.MinCanvasWidth || height < constants.MinCanvasHeight {
		return fmt.Errorf("%w: canvas %dx%d, need at least %dx%d",
			ErrScreenTooSmall, width, height, constants.MinCanvasWidth, constants.MinCanvasHeight)
	}
	return nil
}
