package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// BarHeight is the number of rows reserved below the canvas
const BarHeight = 1

// ErrNotTerminal is returned when stdout is not attached to a terminal
var ErrNotTerminal = errors.New("stdout is not a terminal")

// Screen owns the tcell screen and splits it into a canvas region and an instructions bar
type Screen struct {
	screen tcell.Screen
	canvas *Region

	barText  string
	barStyle tcell.Style

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a screen on the controlling terminal
func New() (*Screen, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing tcell screen, e.g. a simulation screen in tests
func NewWithScreen(s tcell.Screen) *Screen {
	scr := &Screen{
		screen:   s,
		barStyle: tcell.StyleDefault.Reverse(true),
	}
	scr.canvas = &Region{screen: s, style: tcell.StyleDefault}
	return scr
}

// Init enters raw mode, alternate screen buffer, hides cursor
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.HideCursor()
	s.screen.Clear()

	s.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.screen.Fini()
	s.finalized = true
}

// Size returns full terminal dimensions including the bar
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Canvas returns the drawable region above the bar
func (s *Screen) Canvas() *Region {
	return s.canvas
}

// HideCursor hides the terminal cursor
func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

// SetBar sets the instructions bar text, drawn on every Show
func (s *Screen) SetBar(text string) {
	s.barText = text
}

// Show draws the bar and flushes pending cell changes to the terminal
func (s *Screen) Show() {
	s.drawBar()
	s.screen.Show()
}

// drawBar writes the bar text on the last row, clipped to the width
func (s *Screen) drawBar() {
	w, h := s.screen.Size()
	if h < BarHeight || w <= 0 {
		return
	}
	y := h - BarHeight
	runes := []rune(s.barText)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		s.screen.SetContent(x, y, r, nil, s.barStyle)
	}
}

// ReadKey returns the next pending key without blocking.
// Resize events are consumed on the way and trigger a full redraw
func (s *Screen) ReadKey() (KeyEvent, bool) {
	for s.screen.HasPendingEvent() {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return keyFromTcell(ev), true
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			// Screen finalized
			return KeyEvent{}, false
		}
	}
	return KeyEvent{}, false
}
