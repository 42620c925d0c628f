package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundPatter SoundType = iota // Drop landing on the umbrella
	SoundOpen                    // Umbrella opened
	SoundClose                   // Umbrella closed
	soundTypeCount
)

var soundNames = [...]string{
	SoundPatter: "patter",
	SoundOpen:   "open",
	SoundClose:  "close",
}

// String returns the sound name used in config and logs
func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
