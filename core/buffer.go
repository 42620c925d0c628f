package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Blank is the rune stored in every cell that has never been written
const Blank = ' '

// Canvas is a character surface with bounds-checked single-cell access.
// Size may change between calls (terminal resize), callers re-read it every tick
type Canvas interface {
	// Size returns current dimensions
	Size() (width, height int)

	// GetCell returns the rune at the position, ok is false outside the visible region
	GetCell(x, y int) (r rune, ok bool)

	// SetCell writes a rune, returns false and writes nothing outside the visible region
	SetCell(x, y int, r rune) bool
}

// Buffer is an in-memory Canvas backed by a 2D rune grid
type Buffer struct {
	width  int
	height int
	lines  [][]rune
}

// NewBuffer creates a new blank buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Resize resizes the buffer, preserving existing content where possible
func (b *Buffer) Resize(newWidth, newHeight int) {
	if newWidth < 0 {
		newWidth = 0
	}
	if newHeight < 0 {
		newHeight = 0
	}

	newLines := make([][]rune, newHeight)
	for y := 0; y < newHeight; y++ {
		newLines[y] = make([]rune, newWidth)
		for x := 0; x < newWidth; x++ {
			if y < b.height && x < b.width {
				newLines[y][x] = b.lines[y][x]
			} else {
				newLines[y][x] = Blank
			}
		}
	}

	b.width = newWidth
	b.height = newHeight
	b.lines = newLines
}

// GetCell returns the rune at the given position
func (b *Buffer) GetCell(x, y int) (rune, bool) {
	if !b.inBounds(x, y) {
		return Blank, false
	}
	return b.lines[y][x], true
}

// SetCell sets the rune at the given position
func (b *Buffer) SetCell(x, y int, r rune) bool {
	if !b.inBounds(x, y) {
		return false
	}
	b.lines[y][x] = r
	return true
}

// Clear blanks the entire buffer
func (b *Buffer) Clear() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.lines[y][x] = Blank
		}
	}
}

// Line returns a row as a string, empty for rows outside the buffer
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return string(b.lines[y])
}

// Count returns the number of cells holding r
func (b *Buffer) Count(r rune) int {
	n := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.lines[y][x] == r {
				n++
			}
		}
	}
	return n
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
