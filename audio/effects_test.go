package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/undead/constants"
)

const testRate = beep.SampleRate(44100)

// drain reads s to completion, bounded by limit frames
func drain(s beep.Streamer, limit int) (frames int, peak float64) {
	buf := make([][2]float64, 512)
	for frames < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		frames += n
		if !ok {
			break
		}
	}
	return frames, peak
}

func TestOscillatorLength(t *testing.T) {
	s := NewOscillator(440, 50*time.Millisecond, WaveSine, testRate)
	frames, peak := drain(s, testRate.N(time.Second))

	if want := testRate.N(50 * time.Millisecond); frames != want {
		t.Errorf("Expected %d frames, got %d", want, frames)
	}
	if peak > 1.0 || peak < 0.9 {
		t.Errorf("Expected sine peak near 1.0, got %f", peak)
	}
}

func TestOscillatorWaveShapes(t *testing.T) {
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		_, peak := drain(NewOscillator(220, 20*time.Millisecond, w, testRate), testRate.N(time.Second))
		if peak > 1.0 {
			t.Errorf("Wave %d: expected samples within [-1, 1], got peak %f", w, peak)
		}
		if peak == 0 {
			t.Errorf("Wave %d: expected audible output", w)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, testRate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, 4)
	n, ok := env.Stream(buf)
	if !ok || n != 4 {
		t.Fatalf("Expected 4 frames, got %d (ok=%v)", n, ok)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first frame under attack, got %f", buf[0][0])
	}
	if buf[3][0] <= buf[1][0] {
		t.Errorf("Expected rising attack, got %f then %f", buf[1][0], buf[3][0])
	}
}

func TestHitSoundPlays(t *testing.T) {
	cfg := DefaultAudioConfig()
	frames, peak := drain(CreateHitSound(cfg), testRate.N(time.Second))

	if want := testRate.N(constants.HitSoundDuration); frames < want {
		t.Errorf("Expected at least %d frames, got %d", want, frames)
	}
	if peak == 0 {
		t.Error("Expected audible hit sound")
	}
}

func TestSuccessSoundSequence(t *testing.T) {
	cfg := DefaultAudioConfig()
	frames, _ := drain(CreateSuccessSound(cfg), testRate.N(5*time.Second))

	want := testRate.N(constants.SuccessNote1Duration) +
		testRate.N(constants.SuccessSoundGap) +
		testRate.N(constants.SuccessNote2Duration)
	if frames != want {
		t.Errorf("Expected %d frames, got %d", want, frames)
	}
}

func TestBackgroundNeverEnds(t *testing.T) {
	cfg := DefaultAudioConfig()
	limit := testRate.N(10 * time.Second)
	frames, peak := drain(CreateBackground(cfg), limit)

	if frames < limit {
		t.Errorf("Expected endless background, stopped after %d frames", frames)
	}
	if peak == 0 {
		t.Error("Expected audible background")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.EffectVolumes[SoundHit] = 0

	_, peak := drain(CreateHitSound(cfg), testRate.N(time.Second))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	if GetSoundEffect(SoundHit, cfg) == nil {
		t.Error("Expected hit effect")
	}
	if GetSoundEffect(SoundSuccess, cfg) == nil {
		t.Error("Expected success effect")
	}
	if GetSoundEffect(SoundBackground, cfg) != nil {
		t.Error("Expected no one-shot for background")
	}
}
