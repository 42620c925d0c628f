package entity

import (
	"testing"

	"github.com/lixenwraith/umbrella/core"
)

func TestUmbrellaDimensions(t *testing.T) {
	if UmbrellaWidth() != 11 {
		t.Errorf("Expected width 11, got %d", UmbrellaWidth())
	}
	if UmbrellaHeight() != 7 {
		t.Errorf("Expected height 7, got %d", UmbrellaHeight())
	}
}

func TestNewUmbrellaCentered(t *testing.T) {
	buf := core.NewBuffer(80, 40)
	u := NewUmbrella(buf)

	if u.State != UmbrellaOpen {
		t.Errorf("Expected open umbrella, got %v", u.State)
	}
	if u.X != 40-5 {
		t.Errorf("Expected X=%d, got %d", 35, u.X)
	}
	if u.Y != 20-3 {
		t.Errorf("Expected Y=%d, got %d", 17, u.Y)
	}
	if n := buf.Count('^'); n != 0 {
		t.Errorf("Expected nothing drawn by constructor, found %d cells", n)
	}
}

func TestUmbrellaClamping(t *testing.T) {
	buf := core.NewBuffer(30, 30)
	u := NewUmbrella(buf)
	maxX := 30 - UmbrellaWidth() - 1

	for i := 0; i < 50; i++ {
		u.Redraw(buf, -1, UmbrellaOpen)
		if u.X < 1 || u.X > maxX {
			t.Fatalf("X out of range after move left: %d", u.X)
		}
	}
	if u.X != 1 {
		t.Errorf("Expected X pinned at 1, got %d", u.X)
	}

	// Clamping is idempotent at the boundary
	u.Redraw(buf, -1, UmbrellaOpen)
	if u.X != 1 {
		t.Errorf("Expected X to stay at 1, got %d", u.X)
	}

	for i := 0; i < 50; i++ {
		u.Redraw(buf, 1, UmbrellaOpen)
		if u.X < 1 || u.X > maxX {
			t.Fatalf("X out of range after move right: %d", u.X)
		}
	}
	if u.X != maxX {
		t.Errorf("Expected X pinned at %d, got %d", maxX, u.X)
	}
}

func TestUmbrellaClampsAfterShrink(t *testing.T) {
	buf := core.NewBuffer(80, 30)
	u := NewUmbrella(buf)
	u.Redraw(buf, 0, UmbrellaOpen)
	for i := 0; i < 40; i++ {
		u.Redraw(buf, 1, UmbrellaOpen)
	}

	buf.Resize(30, 30)
	u.Redraw(buf, 0, UmbrellaOpen)
	if want := 30 - UmbrellaWidth() - 1; u.X != want {
		t.Errorf("Expected X clamped to %d after shrink, got %d", want, u.X)
	}
}

func TestUmbrellaDrawEraseRoundTrip(t *testing.T) {
	for _, state := range []UmbrellaState{UmbrellaOpen, UmbrellaClosed} {
		t.Run(state.String(), func(t *testing.T) {
			buf := core.NewBuffer(30, 30)
			u := &Umbrella{X: 5, Y: 5, State: state}

			u.Draw(buf)
			drawn := 0
			for y := 0; y < 30; y++ {
				for x := 0; x < 30; x++ {
					if r, _ := buf.GetCell(x, y); r != core.Blank {
						drawn++
					}
				}
			}
			if drawn != len(u.glyph().Cells) {
				t.Errorf("Expected %d drawn cells, got %d", len(u.glyph().Cells), drawn)
			}

			u.Erase(buf)
			for y := 0; y < 30; y++ {
				if line := buf.Line(y); line != blankLine(30) {
					t.Fatalf("Row %d not restored: %q", y, line)
				}
			}
		})
	}
}

func TestUmbrellaPaddingUntouched(t *testing.T) {
	buf := core.NewBuffer(30, 30)
	u := &Umbrella{X: 5, Y: 5, State: UmbrellaOpen}

	// First row of the open glyph is "     ." so columns 5..9 are padding
	for x := 5; x < 10; x++ {
		buf.SetCell(x, 5, 'r')
	}
	u.Draw(buf)
	u.Erase(buf)

	for x := 5; x < 10; x++ {
		if r, _ := buf.GetCell(x, 5); r != 'r' {
			t.Errorf("Expected padding cell (%d,5) untouched, got %q", x, r)
		}
	}
}

func TestUmbrellaRedrawSwitchesState(t *testing.T) {
	buf := core.NewBuffer(40, 30)
	u := NewUmbrella(buf)
	u.Redraw(buf, 0, UmbrellaOpen)

	if buf.Count('^') != 10 {
		t.Fatalf("Expected open canopy of ten '^', got %d", buf.Count('^'))
	}

	u.Redraw(buf, 0, UmbrellaClosed)
	if u.State != UmbrellaClosed {
		t.Errorf("Expected closed state, got %v", u.State)
	}
	// Closed glyph has "^|^" only; no leftovers from the open canopy
	if n := buf.Count('^'); n != 2 {
		t.Errorf("Expected two '^' after closing, got %d", n)
	}
	if n := buf.Count('_'); n != 1 {
		t.Errorf("Expected only the handle '_' after closing, got %d", n)
	}
}

func TestUmbrellaCovers(t *testing.T) {
	u := &Umbrella{X: 10, Y: 10, State: UmbrellaOpen}

	if !u.Covers(15, 10) {
		t.Error("Expected the tip to be covered")
	}
	if u.Covers(10, 10) {
		t.Error("Expected padding not to be covered")
	}
	if !u.Covers(10, 14) {
		t.Error("Expected canopy edge to be covered")
	}
}

func blankLine(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = core.Blank
	}
	return string(b)
}
