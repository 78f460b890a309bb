package main

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/undead/audio"
	"github.com/lixenwraith/undead/config"
	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/input"
	"github.com/lixenwraith/undead/render"
	"github.com/lixenwraith/undead/render/renderers"
	"github.com/lixenwraith/undead/status"
	"github.com/lixenwraith/undead/systems"
)

// session owns one running game: store, scheduler, systems, input and rendering
// All methods run on the main goroutine
type session struct {
	ctx      *engine.GameContext
	sched    *engine.Scheduler
	systems  *engine.SystemSet
	director *systems.Director
	machine  *input.Machine
	screen   tcell.Screen
	orch     *render.RenderOrchestrator
	sound    *audio.SoundManager // nil when audio is unavailable

	lastFrame  time.Time
	frameTicks *atomic.Int64
}

// newSession wires the game over source; sound may be nil
func newSession(cfg *config.Config, screen tcell.Screen, source engine.TimeProvider, sound *audio.SoundManager) (*session, error) {
	keymap, err := cfg.KeyMap()
	if err != nil {
		return nil, err
	}

	ctx := engine.NewGameContext(source, cfg.Game.Seed)
	ctx.Width, ctx.Height = screen.Size()

	s := &session{
		ctx:        ctx,
		sched:      engine.NewScheduler(ctx.Clock),
		systems:    engine.NewSystemSet(),
		machine:    input.NewMachine(keymap),
		screen:     screen,
		orch:       render.NewRenderOrchestrator(screen),
		sound:      sound,
		lastFrame:  ctx.Now(),
		frameTicks: ctx.Status.Ints.Get(status.KeyFrameTicks),
	}

	s.director = systems.NewDirector(ctx, s.sched)
	s.systems.Add(systems.NewPlayerSystem(ctx, s.machine))
	s.systems.Add(systems.NewCameraSystem(ctx))
	s.systems.Add(systems.NewCombatSystem(ctx))
	s.systems.Add(s.director)

	// A nil *SoundManager must not become a non-nil interface
	var player systems.SoundPlayer
	if sound != nil {
		player = sound
	}
	ctx.Router.Register(systems.NewAudioSystem(player))
	ctx.Status.Bools.Get(status.KeyAudioEnabled).Store(sound != nil)

	s.orch.Register(renderers.NewArenaRenderer(), render.PriorityArena)
	s.orch.Register(renderers.NewEntityRenderer(), render.PriorityEntities)
	s.orch.Register(renderers.NewHUDRenderer(), render.PriorityUI)
	s.orch.Register(renderers.NewStatusBarRenderer(ctx.Status), render.PriorityUI)
	s.orch.Register(renderers.NewOverlayRenderer(), render.PriorityOverlay)

	s.director.Start()
	return s, nil
}

// close releases scheduler tasks
func (s *session) close() {
	s.director.Stop()
}

// handleEvent feeds a terminal event; returns true when the player quits
func (s *session) handleEvent(ev tcell.Event) bool {
	if resize, ok := ev.(*tcell.EventResize); ok {
		w, h := resize.Size()
		s.ctx.Width, s.ctx.Height = w, h
		s.orch.Resize(w, h)
		return false
	}
	return s.applyIntent(s.machine.HandleEvent(ev, s.ctx.Now()))
}

// applyIntent performs a one-shot request from keys or the HUD; returns true on quit
func (s *session) applyIntent(in input.Intent) bool {
	state := s.ctx.State

	switch in {
	case input.IntentQuit:
		return true

	case input.IntentStart:
		phase := state.Phase()
		if phase == engine.PhaseMenu || phase.IsTerminal() {
			s.resetSession()
			state.StartGame()
		}

	case input.IntentRestart:
		s.resetSession()
		state.RestartGame()

	case input.IntentMenu:
		s.resetSession()
		state.GoToMenu()

	case input.IntentTogglePause:
		if state.Phase().IsActive() {
			paused := s.ctx.Clock.Toggle()
			log.Printf("Paused: %v", paused)
		}

	case input.IntentToggleMute:
		muted := !s.ctx.IsMuted.Load()
		s.ctx.IsMuted.Store(muted)
		if s.sound != nil {
			s.sound.SetMuted(muted)
		}
	}
	return false
}

// resetSession clears per-session input and unpauses before a session change
func (s *session) resetSession() {
	s.machine.Reset()
	s.ctx.Clock.Resume()
}

// frame runs one tick: scheduler, systems, event dispatch, render
func (s *session) frame() {
	now := s.ctx.Now()
	dt := min(now.Sub(s.lastFrame), constants.MaxFrameDelta)
	s.lastFrame = now

	if !s.ctx.Clock.IsPaused() {
		s.sched.Advance(now)
		s.systems.Update(now, dt)
	}
	s.ctx.Router.DispatchAll()

	s.ctx.FrameNumber.Add(1)
	s.frameTicks.Add(1)

	s.orch.RenderFrame(render.NewRenderContext(s.ctx, s.machine.Aim().Yaw))
}
