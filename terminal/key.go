package terminal

import "github.com/gdamore/tcell/v2"

// Key represents a parsed input key
type Key uint16

const (
	KeyNone    Key = iota
	KeyRune        // Printable character (check KeyEvent.Rune)
	KeyUnknown     // Recognised by the driver but unused by the game

	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// KeyEvent is a single key press
type KeyEvent struct {
	Key  Key
	Rune rune
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape: KeyEscape,
	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyCtrlC:  KeyCtrlC,
}

// keyFromTcell converts a tcell key event
func keyFromTcell(ev *tcell.EventKey) KeyEvent {
	if ev.Key() == tcell.KeyRune {
		return KeyEvent{Key: KeyRune, Rune: ev.Rune()}
	}
	if k, ok := tcellKeys[ev.Key()]; ok {
		return KeyEvent{Key: k}
	}
	return KeyEvent{Key: KeyUnknown}
}
