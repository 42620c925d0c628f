package entity

import (
	"math/rand"

	"github.com/lixenwraith/umbrella/constants"
	"github.com/lixenwraith/umbrella/core"
)

// FallResult is the outcome of advancing a drop one step
type FallResult uint8

const (
	FallOK          FallResult = iota // Moved onto a blank cell and was drawn
	FallCollided                      // Destination held something
	FallOutOfBounds                   // Destination could not be read
)

// String returns the result name for logging
func (r FallResult) String() string {
	switch r {
	case FallOK:
		return "ok"
	case FallCollided:
		return "collided"
	case FallOutOfBounds:
		return "out-of-bounds"
	}
	return "unknown"
}

// Expired reports whether the drop is done and must be replaced
func (r FallResult) Expired() bool {
	return r != FallOK
}

// Drop is one falling raindrop. Drops are fungible: only position matters
type Drop struct {
	X, Y  int
	drawn bool
}

// SpawnDrop places a drop on the top or left edge.
// The entry point is uniform over the width top-edge columns and the height-1
// left-edge rows below the corner; the drop is not drawn until it first advances
func SpawnDrop(c core.Canvas, rng *rand.Rand) *Drop {
	w, h := c.Size()
	span := w + h - 1
	if span <= 0 {
		return &Drop{}
	}

	p := rng.Intn(span) - (h - 1)
	if p >= 0 {
		return &Drop{X: p, Y: 0}
	}
	return &Drop{X: 0, Y: -p}
}

// Advance moves the drop one cell down-right.
// An unreadable destination counts as expiry, a non-blank one as a collision
func (d *Drop) Advance(c core.Canvas) FallResult {
	if d.drawn {
		c.SetCell(d.X, d.Y, core.Blank)
		d.drawn = false
	}

	d.X++
	d.Y++

	r, ok := c.GetCell(d.X, d.Y)
	if !ok {
		return FallOutOfBounds
	}
	if r != core.Blank {
		return FallCollided
	}

	d.drawn = c.SetCell(d.X, d.Y, constants.RainRune)
	return FallOK
}
