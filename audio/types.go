package audio

import (
	"errors"
)

// SoundType identifies a game sound
type SoundType int

const (
	SoundBackground SoundType = iota // Looping ambience during play
	SoundHit                         // Gunshot, one per fired bullet
	SoundSuccess                     // Victory sting
	soundTypeCount
)

var soundNames = [...]string{
	SoundBackground: "background",
	SoundHit:        "hit",
	SoundSuccess:    "success",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a sound name as used in config and sample file names
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
