package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/undead/constants"
)

// SoundManager owns the speaker and the mix of game sounds
// Every method is safe before Initialize and after Close; calls then do nothing
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	background  *beep.Ctrl
	samples     map[SoundType]*beep.Buffer
	initialized bool
	muted       bool
	playing     bool // Background requested by game flow
}

// NewSoundManager creates a sound manager; nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Clamp()
	return &SoundManager{
		cfg:     cfg,
		mixer:   &beep.Mixer{},
		samples: make(map[SoundType]*beep.Buffer),
	}
}

// Initialize opens the speaker and loads optional samples
// Returns ErrAudioDisabled when audio is switched off in config
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.samples = LoadSamples(sm.cfg.SoundsDir, rate)
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("Audio: initialized at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Close silences everything and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.background = nil
	sm.playing = false
	sm.initialized = false
	log.Printf("Audio: closed")
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play starts a one-shot sound
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := sm.streamerFor(st)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartBackground begins the ambience loop if it is not already playing
func (sm *SoundManager) StartBackground() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	sm.playing = true
	if sm.background != nil {
		sm.background.Paused = sm.muted
		return
	}

	var s beep.Streamer
	if buf, ok := sm.samples[SoundBackground]; ok {
		s = newVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), sm.cfg.volume(SoundBackground))
	} else {
		s = CreateBackground(sm.cfg)
	}
	sm.background = &beep.Ctrl{Streamer: s, Paused: sm.muted}
	sm.mixer.Add(sm.background)
}

// StopBackground pauses the ambience loop
func (sm *SoundManager) StopBackground() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.playing = false
	if !sm.initialized || sm.background == nil {
		return
	}
	speaker.Lock()
	sm.background.Paused = true
	speaker.Unlock()
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetMuted silences or restores output; one-shots started while muted are dropped
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized || sm.background == nil {
		return
	}
	speaker.Lock()
	sm.background.Paused = muted || !sm.playing
	speaker.Unlock()
}

// streamerFor prefers a loaded sample over the synthesized sound
func (sm *SoundManager) streamerFor(st SoundType) beep.Streamer {
	if buf, ok := sm.samples[st]; ok {
		return newVolume(buf.Streamer(0, buf.Len()), sm.cfg.volume(st))
	}
	return GetSoundEffect(st, sm.cfg)
}
