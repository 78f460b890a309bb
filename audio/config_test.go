package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/undead/constants"
)

func TestSoundTypeNames(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		got, ok := ParseSoundType(st.String())
		if !ok || got != st {
			t.Errorf("Expected %s to parse back, got %v (ok=%v)", st, got, ok)
		}
	}
	if _, ok := ParseSoundType("explosion"); ok {
		t.Error("Expected unknown sound name to be rejected")
	}
	if SoundType(99).String() != "unknown" {
		t.Error("Expected out-of-range sound to stringify as unknown")
	}
}

func TestSetEffectVolumes(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SetEffectVolumes(map[string]float64{"hit": 0.2, "bogus": 1})

	if cfg.EffectVolumes[SoundHit] != 0.2 {
		t.Errorf("Expected hit volume 0.2, got %f", cfg.EffectVolumes[SoundHit])
	}
	if cfg.EffectVolumes[SoundSuccess] != constants.DefaultSuccessVolume {
		t.Errorf("Expected untouched success volume, got %f", cfg.EffectVolumes[SoundSuccess])
	}
	if len(cfg.EffectVolumes) != int(soundTypeCount) {
		t.Errorf("Expected unknown names ignored, got %d entries", len(cfg.EffectVolumes))
	}
}

func TestClamp(t *testing.T) {
	cfg := &AudioConfig{
		MasterVolume:  3,
		EffectVolumes: map[SoundType]float64{SoundHit: -1, SoundSuccess: 0.5},
	}
	cfg.Clamp()

	if cfg.MasterVolume != 1 {
		t.Errorf("Expected master clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundHit] != 0 {
		t.Errorf("Expected hit clamped to 0, got %f", cfg.EffectVolumes[SoundHit])
	}
	if cfg.SampleRate != constants.AudioSampleRate {
		t.Errorf("Expected default sample rate, got %d", cfg.SampleRate)
	}
	if got := cfg.volume(SoundSuccess); got != 0.5 {
		t.Errorf("Expected effective volume 0.5, got %f", got)
	}
}

func TestDisabledManagerDegrades(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	err := sm.Initialize()
	if !errors.Is(err, ErrAudioDisabled) {
		t.Fatalf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Expected manager to stay uninitialized")
	}

	// Every call is a no-op without a speaker
	sm.Play(SoundHit)
	sm.StartBackground()
	sm.SetMuted(true)
	sm.StopBackground()
	sm.Close()

	if !sm.IsMuted() {
		t.Error("Expected mute state tracked without a speaker")
	}
}

func TestNilConfigUsesDefaults(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.cfg.SampleRate != constants.AudioSampleRate {
		t.Errorf("Expected default sample rate, got %d", sm.cfg.SampleRate)
	}
}
