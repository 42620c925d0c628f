package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/umbrella/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream in a linear volume; 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePatterSound generates a short noise tick for a drop hitting the canopy
func CreatePatterSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.PatterSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.PatterSoundDuration, constants.PatterSoundAttack, constants.PatterSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundPatter]*cfg.MasterVolume)
}

// CreateFoldSound generates a soft blip, pitched higher for opening than closing
func CreateFoldSound(cfg *AudioConfig, s SoundType) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	freq := 440.0
	if s == SoundOpen {
		freq = 660.0
	}

	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		// Tone above Nyquist for a tiny sample rate; fall back to the local oscillator
		fund = NewOscillator(freq, constants.FoldSoundDuration, WaveSine, rate)
	}
	body := beep.Take(rate.N(constants.FoldSoundDuration), fund)
	click := NewOscillator(freq*2, constants.FoldSoundAttack*2, WaveSquare, rate)

	mixed := beep.Mix(
		newVolume(NewEnvelope(body, constants.FoldSoundDuration, constants.FoldSoundAttack, constants.FoldSoundRelease, rate), 0.8),
		newVolume(click, 0.1),
	)

	return newVolume(mixed, cfg.EffectVolumes[s]*cfg.MasterVolume)
}

// CreateSound dispatches to the generator for the sound type
func CreateSound(cfg *AudioConfig, s SoundType) beep.Streamer {
	switch s {
	case SoundPatter:
		return CreatePatterSound(cfg)
	case SoundOpen, SoundClose:
		return CreateFoldSound(cfg, s)
	}
	return nil
}
