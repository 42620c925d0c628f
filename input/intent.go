package input

// Intent is the semantic action derived from one key read
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentOpen  // Up arrow
	IntentClose // Down arrow
	IntentQuit  // q, Ctrl+C
)

var intentNames = [...]string{
	IntentNone:      "none",
	IntentMoveLeft:  "move-left",
	IntentMoveRight: "move-right",
	IntentOpen:      "open",
	IntentClose:     "close",
	IntentQuit:      "quit",
}

// String returns the intent name for logging
func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Dx returns the horizontal umbrella movement for the intent
func (i Intent) Dx() int {
	switch i {
	case IntentMoveLeft:
		return -1
	case IntentMoveRight:
		return 1
	}
	return 0
}
