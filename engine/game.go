package engine

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/umbrella/audio"
	"github.com/lixenwraith/umbrella/constants"
	"github.com/lixenwraith/umbrella/core"
	"github.com/lixenwraith/umbrella/entity"
	"github.com/lixenwraith/umbrella/input"
)

// Renderer flushes the canvas and the instructions bar to the terminal
type Renderer interface {
	Show()
}

// SoundPlayer plays one-shot effects; implementations must not block
type SoundPlayer interface {
	Play(audio.SoundType)
}

// Game owns the drop set and the umbrella and advances them once per tick.
// All state is touched from the goroutine calling Tick/Run only
type Game struct {
	canvas   core.Canvas
	renderer Renderer
	input    *input.Reader
	rng      *rand.Rand
	sound    SoundPlayer

	umbrella *entity.Umbrella
	state    entity.UmbrellaState
	drops    []*entity.Drop

	tickInterval time.Duration
	ticks        uint64
}

// NewGame creates a game drawing on canvas; the umbrella starts centred and open
func NewGame(canvas core.Canvas, renderer Renderer, keys input.KeySource, rng *rand.Rand) *Game {
	return &Game{
		canvas:       canvas,
		renderer:     renderer,
		input:        input.NewReader(keys),
		rng:          rng,
		umbrella:     entity.NewUmbrella(canvas),
		state:        entity.UmbrellaOpen,
		tickInterval: constants.TickInterval,
	}
}

// SetSoundPlayer attaches optional audio feedback
func (g *Game) SetSoundPlayer(p SoundPlayer) {
	g.sound = p
}

// Umbrella returns the umbrella, for inspection
func (g *Game) Umbrella() *entity.Umbrella {
	return g.umbrella
}

// DropCount returns the number of live drops
func (g *Game) DropCount() int {
	return len(g.drops)
}

// Ticks returns the number of completed ticks
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Tick runs one iteration: input, size gate, spawn, fall, umbrella, flush.
// quit is true when the user asked to leave; err is only ever ErrScreenTooSmall
func (g *Game) Tick() (quit bool, err error) {
	intent := g.input.Next()
	if intent == input.IntentQuit {
		return true, nil
	}

	w, h := g.canvas.Size()
	if err := CheckSize(w, h); err != nil {
		return false, err
	}

	if float64(len(g.drops)) < constants.DensityRatio*float64(w*h) {
		g.drops = append(g.drops, entity.SpawnDrop(g.canvas, g.rng))
	}

	g.advanceDrops()
	g.applyIntent(intent)

	g.renderer.Show()
	g.ticks++
	return false, nil
}

// advanceDrops moves every drop; expired ones are replaced in place so the count is stable.
// Replacements are not advanced until the next tick
func (g *Game) advanceDrops() {
	for i, d := range g.drops {
		res := d.Advance(g.canvas)
		if !res.Expired() {
			continue
		}
		if res == entity.FallCollided && g.umbrella.Covers(d.X, d.Y) {
			g.play(audio.SoundPatter)
		}
		g.drops[i] = entity.SpawnDrop(g.canvas, g.rng)
	}
}

// applyIntent moves and opens/closes the umbrella; the state persists across ticks
func (g *Game) applyIntent(intent input.Intent) {
	switch intent {
	case input.IntentOpen:
		if g.state != entity.UmbrellaOpen {
			g.play(audio.SoundOpen)
		}
		g.state = entity.UmbrellaOpen
	case input.IntentClose:
		if g.state != entity.UmbrellaClosed {
			g.play(audio.SoundClose)
		}
		g.state = entity.UmbrellaClosed
	}
	g.umbrella.Redraw(g.canvas, intent.Dx(), g.state)
}

func (g *Game) play(s audio.SoundType) {
	if g.sound != nil {
		g.sound.Play(s)
	}
}

// Run ticks until quit, a fatal error, or context cancellation, sleeping a fixed interval between ticks
func (g *Game) Run(ctx context.Context) error {
	w, h := g.canvas.Size()
	log.Printf("game: starting on %dx%d canvas", w, h)

	timer := time.NewTimer(g.tickInterval)
	defer timer.Stop()

	for {
		quit, err := g.Tick()
		if err != nil {
			log.Printf("game: stopped after %d ticks: %v", g.ticks, err)
			return err
		}
		if quit {
			log.Printf("game: quit after %d ticks", g.ticks)
			return nil
		}

		timer.Reset(g.tickInterval)
		select {
		case <-ctx.Done():
			log.Printf("game: cancelled after %d ticks", g.ticks)
			return ctx.Err()
		case <-timer.C:
		}
	}
}
