package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	scr := NewWithScreen(sim)
	if err := scr.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(scr.Fini)
	sim.SetSize(w, h)
	return scr, sim
}

func TestRegionExcludesBar(t *testing.T) {
	scr, _ := newSimScreen(t, 40, 30)

	w, h := scr.Canvas().Size()
	if w != 40 || h != 29 {
		t.Errorf("Expected canvas 40x29, got %dx%d", w, h)
	}

	if scr.Canvas().SetCell(0, 29, 'x') {
		t.Error("Expected write on the bar row to be rejected")
	}
	if _, ok := scr.Canvas().GetCell(0, 29); ok {
		t.Error("Expected read on the bar row to fail")
	}
}

func TestRegionGetSet(t *testing.T) {
	scr, _ := newSimScreen(t, 30, 30)
	c := scr.Canvas()

	r, ok := c.GetCell(3, 3)
	if !ok || r != ' ' {
		t.Errorf("Expected blank never-written cell, got %q ok=%v", r, ok)
	}

	if !c.SetCell(3, 3, '\\') {
		t.Fatal("Expected SetCell to succeed")
	}
	r, ok = c.GetCell(3, 3)
	if !ok || r != '\\' {
		t.Errorf("Expected '\\\\', got %q ok=%v", r, ok)
	}

	if c.SetCell(-1, 0, 'x') || c.SetCell(30, 0, 'x') {
		t.Error("Expected out-of-bounds writes to fail")
	}
}

func TestRegionFollowsResize(t *testing.T) {
	scr, sim := newSimScreen(t, 30, 30)

	sim.SetSize(50, 20)
	w, h := scr.Canvas().Size()
	if w != 50 || h != 19 {
		t.Errorf("Expected canvas 50x19 after resize, got %dx%d", w, h)
	}
}

func TestShowDrawsBar(t *testing.T) {
	scr, sim := newSimScreen(t, 20, 5)
	scr.SetBar("(q)uit | a very long instruction line")
	scr.Show()

	cells, w, h := sim.GetContents()
	var got []rune
	for x := 0; x < w; x++ {
		c := cells[(h-1)*w+x]
		if len(c.Runes) > 0 {
			got = append(got, c.Runes[0])
		}
	}
	if string(got) != "(q)uit | a very long" {
		t.Errorf("Expected clipped bar text, got %q", string(got))
	}
}

func TestReadKey(t *testing.T) {
	scr, sim := newSimScreen(t, 30, 30)

	// Drain anything queued by Init/SetSize
	for {
		if _, ok := scr.ReadKey(); !ok {
			break
		}
	}

	if _, ok := scr.ReadKey(); ok {
		t.Fatal("Expected no key pending")
	}

	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	sim.InjectKey(tcell.KeyF5, 0, tcell.ModNone)

	ev, ok := scr.ReadKey()
	if !ok || ev.Key != KeyLeft {
		t.Errorf("Expected KeyLeft, got %+v ok=%v", ev, ok)
	}
	ev, ok = scr.ReadKey()
	if !ok || ev.Key != KeyRune || ev.Rune != 'q' {
		t.Errorf("Expected rune q, got %+v ok=%v", ev, ok)
	}
	ev, ok = scr.ReadKey()
	if !ok || ev.Key != KeyUnknown {
		t.Errorf("Expected KeyUnknown, got %+v ok=%v", ev, ok)
	}
	if _, ok := scr.ReadKey(); ok {
		t.Error("Expected queue to be empty")
	}
}

func TestFiniIdempotent(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	scr := NewWithScreen(sim)
	scr.Fini() // before Init is a no-op
	if err := scr.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	scr.Fini()
	scr.Fini()
}
