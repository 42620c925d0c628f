package constants

import "time"

// MinSoundGap is the minimum gap between two plays of the same sound
const MinSoundGap = 60 * time.Millisecond

// Patter Sound Timing (rain on the canopy)
const (
	PatterSoundDuration = 40 * time.Millisecond
	PatterSoundAttack   = 2 * time.Millisecond
	PatterSoundRelease  = 30 * time.Millisecond
)

// Fold Sound Timing (umbrella opened or closed)
const (
	FoldSoundDuration = 90 * time.Millisecond
	FoldSoundAttack   = 5 * time.Millisecond
	FoldSoundRelease  = 60 * time.Millisecond
)
