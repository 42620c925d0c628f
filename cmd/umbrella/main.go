package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/umbrella/audio"
	"github.com/lixenwraith/umbrella/constants"
	"github.com/lixenwraith/umbrella/core"
	"github.com/lixenwraith/umbrella/engine"
	"github.com/lixenwraith/umbrella/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg := engine.LoadConfig()
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	scr, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	if err := scr.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashTerminal(scr)
	// Normal exit terminal cleanup
	defer scr.Fini()

	scr.HideCursor()
	scr.SetBar(constants.InstructionsText)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	player := audio.NewPlayer(audio.LoadAudioConfig())
	if err := player.Start(); err == nil {
		defer player.Stop()
	} else if !errors.Is(err, audio.ErrAudioDisabled) {
		log.Printf("audio start failed: %v (continuing without audio)", err)
	}

	game := engine.NewGame(scr.Canvas(), scr, scr, cfg.NewRand())
	game.SetSoundPlayer(player)

	err = game.Run(ctx)

	// Leave the alternate screen before printing anything
	scr.Fini()
	core.SetCrashTerminal(nil)

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return 0
	case errors.Is(err, engine.ErrScreenTooSmall):
		fmt.Println("Screen is too small")
		return 1
	default:
		fmt.Fprintf(os.Stderr, "umbrella: %v\n", err)
		return 1
	}
}
