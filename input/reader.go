package input

import "github.com/lixenwraith/umbrella/terminal"

// KeySource delivers key presses without blocking
type KeySource interface {
	// ReadKey returns the next pending key, ok is false when nothing is pending
	ReadKey() (ev terminal.KeyEvent, ok bool)
}

// Reader turns key reads into intents
type Reader struct {
	src   KeySource
	table *KeyTable
}

// NewReader creates a reader with the default key table
func NewReader(src KeySource) *Reader {
	return &Reader{src: src, table: DefaultKeyTable()}
}

// Next reads at most one key press (plus an ESC sequence tail) and returns its intent
func (r *Reader) Next() Intent {
	ev, ok := r.src.ReadKey()
	if !ok {
		return IntentNone
	}

	if ev.Key == terminal.KeyEscape {
		return r.readEscape()
	}
	return r.table.Lookup(ev)
}

// readEscape consumes the two keys following ESC
func (r *Reader) readEscape() Intent {
	var pair [2]rune
	for i := range pair {
		ev, ok := r.src.ReadKey()
		if !ok || ev.Key != terminal.KeyRune {
			return IntentNone
		}
		pair[i] = ev.Rune
	}
	return r.table.DecodeEscape(pair[0], pair[1])
}

// Lookup maps a single decoded key to an intent
func (t *KeyTable) Lookup(ev terminal.KeyEvent) Intent {
	if ev.Key == terminal.KeyRune {
		return t.Runes[ev.Rune]
	}
	return t.SpecialKeys[ev.Key]
}

// DecodeEscape maps the two characters after ESC to an intent, IntentNone if unknown
func (t *KeyTable) DecodeEscape(a, b rune) Intent {
	return t.EscapePairs[[2]rune{a, b}]
}

var defaultKeys = DefaultKeyTable()

// DecodeEscape decodes with the default bindings
func DecodeEscape(a, b rune) Intent {
	return defaultKeys.DecodeEscape(a, b)
}
