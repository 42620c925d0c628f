package entity

import (
	"github.com/lixenwraith/umbrella/constants"
	"github.com/lixenwraith/umbrella/core"
)

// UmbrellaState is the visual state of the umbrella
type UmbrellaState uint8

const (
	UmbrellaOpen UmbrellaState = iota
	UmbrellaClosed
)

// String returns the state name for logging
func (s UmbrellaState) String() string {
	if s == UmbrellaClosed {
		return "closed"
	}
	return "open"
}

var umbrellaGlyphs = [...]Glyph{
	UmbrellaOpen:   ParseGlyph(constants.OpenUmbrellaArt),
	UmbrellaClosed: ParseGlyph(constants.ClosedUmbrellaArt),
}

// Umbrella is the single player-controlled entity
type Umbrella struct {
	X, Y  int
	State UmbrellaState
}

// NewUmbrella places an open umbrella at the centre of the canvas; nothing is drawn yet
func NewUmbrella(c core.Canvas) *Umbrella {
	w, h := c.Size()
	return &Umbrella{
		X:     w/2 - UmbrellaWidth()/2,
		Y:     h/2 - UmbrellaHeight()/2,
		State: UmbrellaOpen,
	}
}

// UmbrellaWidth is the bounding box width, taken from the open glyph
func UmbrellaWidth() int {
	return umbrellaGlyphs[UmbrellaOpen].Width
}

// UmbrellaHeight is the bounding box height, taken from the open glyph
func UmbrellaHeight() int {
	return umbrellaGlyphs[UmbrellaOpen].Height
}

// MinX is the leftmost allowed origin; the glyph keeps a one-column margin
func MinX() int { return 1 }

// MaxX returns the rightmost allowed origin for a canvas of the given width
func MaxX(width int) int { return width - UmbrellaWidth() - 1 }

func (u *Umbrella) glyph() *Glyph {
	return &umbrellaGlyphs[u.State]
}

// Draw writes the current-state glyph at the current position
func (u *Umbrella) Draw(c core.Canvas) {
	u.glyph().Draw(c, u.X, u.Y)
}

// Erase blanks the current-state glyph at the current position
func (u *Umbrella) Erase(c core.Canvas) {
	u.glyph().Erase(c, u.X, u.Y)
}

// Covers reports whether the drawn umbrella occupies (x, y)
func (u *Umbrella) Covers(x, y int) bool {
	return u.glyph().Covers(u.X, u.Y, x, y)
}

// Redraw erases the umbrella, moves it by dx within the canvas margins,
// switches to state and draws it again
func (u *Umbrella) Redraw(c core.Canvas, dx int, state UmbrellaState) {
	w, _ := c.Size()

	u.Erase(c)
	u.State = state
	u.X = min(max(u.X+dx, MinX()), MaxX(w))
	u.Draw(c)
}
