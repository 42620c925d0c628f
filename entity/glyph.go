package entity

import (
	"strings"

	"github.com/lixenwraith/umbrella/core"
)

// GlyphCell is one visible character of a glyph, relative to the glyph origin
type GlyphCell struct {
	Offset core.Point
	Rune   rune
}

// Glyph is a fixed multi-line ASCII shape.
// Only non-space characters are cells; padding and interior spaces are never written
type Glyph struct {
	Cells  []GlyphCell
	Width  int // Longest line, in runes
	Height int // Line count
}

// ParseGlyph builds a glyph from line-separated art
func ParseGlyph(art string) Glyph {
	lines := strings.Split(art, "\n")
	g := Glyph{Height: len(lines)}
	for y, line := range lines {
		runes := []rune(line)
		if len(runes) > g.Width {
			g.Width = len(runes)
		}
		for x, r := range runes {
			if r == core.Blank {
				continue
			}
			g.Cells = append(g.Cells, GlyphCell{Offset: core.Point{X: x, Y: y}, Rune: r})
		}
	}
	return g
}

// Draw writes the glyph with its origin at (x, y); cells outside the canvas are skipped
func (g *Glyph) Draw(c core.Canvas, x, y int) {
	for _, cell := range g.Cells {
		c.SetCell(x+cell.Offset.X, y+cell.Offset.Y, cell.Rune)
	}
}

// Erase blanks every cell Draw would have written
func (g *Glyph) Erase(c core.Canvas, x, y int) {
	for _, cell := range g.Cells {
		c.SetCell(x+cell.Offset.X, y+cell.Offset.Y, core.Blank)
	}
}

// Covers reports whether (x, y) is a visible cell of the glyph placed at origin (ox, oy)
func (g *Glyph) Covers(ox, oy, x, y int) bool {
	for _, cell := range g.Cells {
		if ox+cell.Offset.X == x && oy+cell.Offset.Y == y {
			return true
		}
	}
	return false
}
