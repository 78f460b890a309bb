package systems

import (
	"github.com/lixenwraith/undead/audio"
	"github.com/lixenwraith/undead/engine"
)

// SoundPlayer is the audio surface game events drive
// Implemented by audio.SoundManager
type SoundPlayer interface {
	Play(st audio.SoundType)
	StartBackground()
	StopBackground()
}

// AudioSystem turns game events into sounds
// Decouples game systems from direct SoundManager access
type AudioSystem struct {
	player SoundPlayer
}

// NewAudioSystem creates an audio event handler; player may be nil if audio is disabled
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventBulletFired,
		engine.EventPhaseChanged,
	}
}

// HandleEvent plays the shot sound and follows phase changes with ambience and the victory sting
func (s *AudioSystem) HandleEvent(event engine.GameEvent) {
	if s.player == nil {
		return
	}

	switch event.Type {
	case engine.EventBulletFired:
		s.player.Play(audio.SoundHit)

	case engine.EventPhaseChanged:
		change, ok := event.Payload.(engine.PhaseChange)
		if !ok {
			return
		}
		switch {
		case change.To.IsActive():
			s.player.StartBackground()
		case change.To == engine.PhaseVictory:
			s.player.StopBackground()
			s.player.Play(audio.SoundSuccess)
		default:
			s.player.StopBackground()
		}
	}
}
