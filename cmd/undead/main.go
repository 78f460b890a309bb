package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/undead/audio"
	"github.com/lixenwraith/undead/config"
	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/core"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/hud"
	"github.com/lixenwraith/undead/input"
	"github.com/lixenwraith/undead/render"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to YAML config")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/undead.log")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	hudFlag    = flag.String("hud", "", "Serve the HUD on this address")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	// Nothing may reach the terminal before logging is routed
	log.SetOutput(io.Discard)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *hudFlag != "" {
		cfg.HUD.Enabled = true
		cfg.HUD.Addr = *hudFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag || cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)

	screen.SetStyle(render.StyleDefault)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// Audio is optional; the game runs silently without it
	var sound *audio.SoundManager
	sm := audio.NewSoundManager(cfg.AudioSettings())
	if err := sm.Initialize(); err != nil {
		log.Printf("Audio unavailable: %v (continuing without audio)", err)
	} else {
		sound = sm
		defer sm.Close()
	}

	s, err := newSession(cfg, screen, engine.NewMonotonicTimeProvider(), sound)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	defer s.close()

	if *muteFlag {
		s.applyIntent(input.IntentToggleMute)
	}

	commands := make(chan input.Intent, constants.CommandQueueSize)
	if cfg.HUD.Enabled {
		server := hud.NewServer(s.ctx, cfg.HUD.Addr, cfg.HUD.PushInterval, commands)
		if err := server.Start(); err != nil {
			log.Printf("HUD disabled: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), constants.HUDShutdownTimeout)
				defer cancel()
				if err := server.Shutdown(ctx); err != nil {
					log.Printf("HUD shutdown: %v", err)
				}
			}()
		}
	}

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(cfg.Game.FrameInterval)
	defer frameTicker.Stop()

	log.Printf("Main loop running at %v per frame", cfg.Game.FrameInterval)
	for {
		select {
		case ev := <-eventChan:
			if s.handleEvent(ev) {
				log.Printf("Quit requested")
				return
			}
		case in := <-commands:
			if s.applyIntent(in) {
				return
			}
		case <-frameTicker.C:
			s.frame()
		}
	}
}
