package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/undead/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a finite raw waveform
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a waveform streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.attackSamples, e.totalSamples-e.releaseSamples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// droneGenerator is an endless detuned low drone with a slow swell
type droneGenerator struct {
	rate  beep.SampleRate
	pos   int
	swell int
}

// NewDroneGenerator creates the background ambience streamer; it never ends
func NewDroneGenerator(rate beep.SampleRate) beep.Streamer {
	return &droneGenerator{
		rate:  rate,
		swell: rate.N(constants.BackgroundSwell),
	}
}

func (g *droneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)
		cycle := float64(g.pos%g.swell) / float64(g.swell)

		amp := 0.35 + 0.25*math.Sin(2*math.Pi*cycle)
		base := math.Sin(2 * math.Pi * constants.BackgroundBaseFreq * t)
		beat := math.Sin(2 * math.Pi * constants.BackgroundBeatFreq * t)
		val := amp * 0.5 * (base + beat)

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *droneGenerator) Err() error { return nil }

// newVolume wraps s with a linear gain; zero or negative gain is silent
// math.Log2(0) is -Inf, so silence is requested explicitly
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHitSound generates a short gunshot: noise crack over a low thump
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	crack := NewEnvelope(NewOscillator(0, constants.HitSoundDuration, WaveNoise, rate),
		constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	thump := NewEnvelope(NewOscillator(90, constants.HitSoundDuration, WaveSquare, rate),
		constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	mixed := beep.Mix(newVolume(crack, 0.6), newVolume(thump, 0.4))
	return newVolume(mixed, cfg.volume(SoundHit))
}

// CreateSuccessSound generates a rising two-note sting (C5 then G5)
func CreateSuccessSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewEnvelope(NewOscillator(523.25, constants.SuccessNote1Duration, WaveSine, rate),
		constants.SuccessNote1Duration, constants.SuccessSoundAttack, constants.SuccessNote1Release, rate)
	n2 := NewEnvelope(NewOscillator(783.99, constants.SuccessNote2Duration, WaveSine, rate),
		constants.SuccessNote2Duration, constants.SuccessSoundAttack, constants.SuccessNote2Release, rate)

	sequence := beep.Seq(n1, beep.Silence(rate.N(constants.SuccessSoundGap)), n2)
	return newVolume(sequence, cfg.volume(SoundSuccess))
}

// CreateBackground generates the endless ambience at configured volume
func CreateBackground(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(NewDroneGenerator(rate), cfg.volume(SoundBackground))
}

// GetSoundEffect returns a synthesized streamer for a one-shot sound, nil for unknown types
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundSuccess:
		return CreateSuccessSound(cfg)
	default:
		return nil
	}
}
