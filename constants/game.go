package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the sleep between simulation ticks
	TickInterval = 20 * time.Millisecond
)

// Simulation Constants
const (
	// DensityRatio is the target fraction of canvas cells holding a live drop
	DensityRatio = 0.4

	// MinCanvasWidth and MinCanvasHeight gate the main loop; smaller is fatal
	MinCanvasWidth  = 25
	MinCanvasHeight = 25

	// RainRune is the drop glyph; drops fall down-right, matching the slant
	RainRune = '\\'
)
