package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the configuration used when no env vars are set.
// Audio is off unless explicitly enabled
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundPatter: 0.3,
			SoundOpen:   0.6,
			SoundClose:  0.6,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("UMBRELLA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("UMBRELLA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Effect volumes as JSON, e.g. {"patter":0.2,"open":1}
	if effectVols := os.Getenv("UMBRELLA_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for s := SoundType(0); s < soundTypeCount; s++ {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("UMBRELLA_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
