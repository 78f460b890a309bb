package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Hit Sound Timing (played per shot)
const (
	HitSoundDuration = 90 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 60 * time.Millisecond
)

// Success Sound Timing (victory sting, two rising notes)
const (
	SuccessSoundAttack   = 10 * time.Millisecond
	SuccessNote1Duration = 200 * time.Millisecond
	SuccessNote1Release  = 150 * time.Millisecond
	SuccessSoundGap      = 60 * time.Millisecond
	SuccessNote2Duration = 500 * time.Millisecond
	SuccessNote2Release  = 400 * time.Millisecond
)

// Background Drone
const (
	// BackgroundBaseFreq and BackgroundBeatFreq are detuned to produce a slow beat
	BackgroundBaseFreq = 55.0
	BackgroundBeatFreq = 57.5

	// BackgroundSwell is the period of the amplitude swell
	BackgroundSwell = 4 * time.Second
)

// Default Volumes (0.0 - 1.0)
const (
	DefaultBackgroundVolume = 0.3
	DefaultHitVolume        = 0.5
	DefaultSuccessVolume    = 0.7
)
