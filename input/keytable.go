package input

import "github.com/lixenwraith/umbrella/terminal"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Ctrl+*)
	SpecialKeys map[terminal.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent

	// Second and third byte of a raw ESC sequence
	EscapePairs map[[2]rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]Intent{
			terminal.KeyLeft:  IntentMoveLeft,
			terminal.KeyRight: IntentMoveRight,
			terminal.KeyUp:    IntentOpen,
			terminal.KeyDown:  IntentClose,
			terminal.KeyCtrlC: IntentQuit,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
		},
		// Some terminals deliver arrows undecoded as ESC [ A..D
		EscapePairs: map[[2]rune]Intent{
			{'[', 'A'}: IntentOpen,
			{'[', 'B'}: IntentClose,
			{'[', 'C'}: IntentMoveRight,
			{'[', 'D'}: IntentMoveLeft,
		},
	}
}
