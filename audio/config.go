package audio

import (
	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/vmath"
)

// AudioConfig holds sound output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64               // 0.0 - 1.0
	EffectVolumes map[SoundType]float64 // 0.0 - 1.0 per sound
	SampleRate    int
	SoundsDir     string // Optional directory of <sound>.wav overrides
}

// DefaultAudioConfig returns synthesized sounds at stock volumes
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		EffectVolumes: map[SoundType]float64{
			SoundBackground: constants.DefaultBackgroundVolume,
			SoundHit:        constants.DefaultHitVolume,
			SoundSuccess:    constants.DefaultSuccessVolume,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// SetEffectVolumes applies name → volume overrides, ignoring unknown names
func (c *AudioConfig) SetEffectVolumes(volumes map[string]float64) {
	if c.EffectVolumes == nil {
		c.EffectVolumes = make(map[SoundType]float64)
	}
	for name, v := range volumes {
		if st, ok := ParseSoundType(name); ok {
			c.EffectVolumes[st] = v
		}
	}
}

// Clamp bounds every volume to [0, 1] and restores a usable sample rate
func (c *AudioConfig) Clamp() {
	c.MasterVolume = vmath.Clamp(c.MasterVolume, 0, 1)
	for st, v := range c.EffectVolumes {
		c.EffectVolumes[st] = vmath.Clamp(v, 0, 1)
	}
	if c.SampleRate <= 0 {
		c.SampleRate = constants.AudioSampleRate
	}
}

// volume returns the effective gain for a sound
func (c *AudioConfig) volume(st SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}
