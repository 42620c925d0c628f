package terminal

import "github.com/gdamore/tcell/v2"

// Region is the canvas part of the screen: all columns, every row but the bar.
// Dimensions follow the terminal live; nothing is cached between calls
type Region struct {
	screen tcell.Screen
	style  tcell.Style
}

// Size returns the region dimensions
func (r *Region) Size() (width, height int) {
	w, h := r.screen.Size()
	h -= BarHeight
	if h < 0 {
		h = 0
	}
	return w, h
}

// GetCell returns the rune at the position, blank for never-written cells
func (r *Region) GetCell(x, y int) (rune, bool) {
	if !r.inBounds(x, y) {
		return ' ', false
	}
	mainc, _, _, _ := r.screen.GetContent(x, y)
	return mainc, true
}

// SetCell writes a rune with the region style
func (r *Region) SetCell(x, y int, ch rune) bool {
	if !r.inBounds(x, y) {
		return false
	}
	r.screen.SetContent(x, y, ch, nil, r.style)
	return true
}

func (r *Region) inBounds(x, y int) bool {
	w, h := r.Size()
	return x >= 0 && x < w && y >= 0 && y < h
}
