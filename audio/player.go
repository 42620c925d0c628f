package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/umbrella/constants"
)

// Player plays one-shot effects through a single mixer on the speaker
type Player struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	lastPlay    [soundTypeCount]time.Time
	initialized bool
	now         func() time.Time
}

// NewPlayer creates a player; nothing is played until Start succeeds
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Start initializes the speaker and starts the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if !p.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Stop clears queued sounds and closes the speaker
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Play queues a sound unless the same sound played within MinSoundGap
func (p *Player) Play(s SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.allow(s) {
		return
	}

	streamer := CreateSound(p.cfg, s)
	if streamer == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// allow applies the per-sound rate limit and records the play time
func (p *Player) allow(s SoundType) bool {
	if s < 0 || s >= soundTypeCount {
		return false
	}
	now := p.now()
	if now.Sub(p.lastPlay[s]) < constants.MinSoundGap {
		return false
	}
	p.lastPlay[s] = now
	return true
}
