package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func writeWAV(t *testing.T, path string, rate beep.SampleRate, d time.Duration) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, NewOscillator(440, d, WaveSine, rate), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLoadSampleSameRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hit.wav")
	writeWAV(t, path, testRate, 100*time.Millisecond)

	buf, err := LoadSample(path, testRate)
	if err != nil {
		t.Fatalf("Expected sample to load, got %v", err)
	}
	if want := testRate.N(100 * time.Millisecond); buf.Len() != want {
		t.Errorf("Expected %d frames, got %d", want, buf.Len())
	}
}

func TestLoadSampleResamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hit.wav")
	writeWAV(t, path, 22050, 100*time.Millisecond)

	buf, err := LoadSample(path, testRate)
	if err != nil {
		t.Fatalf("Expected sample to load, got %v", err)
	}
	if buf.Format().SampleRate != testRate {
		t.Errorf("Expected buffer at %d Hz, got %d", testRate, buf.Format().SampleRate)
	}
	want := testRate.N(100 * time.Millisecond)
	if diff := buf.Len() - want; diff < -64 || diff > 64 {
		t.Errorf("Expected about %d frames after resample, got %d", want, buf.Len())
	}
}

func TestLoadSamples(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "success.wav"), testRate, 50*time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "hit.wav"), []byte("not a wav"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	samples := LoadSamples(dir, testRate)
	if _, ok := samples[SoundSuccess]; !ok {
		t.Error("Expected success sample loaded")
	}
	if _, ok := samples[SoundHit]; ok {
		t.Error("Expected corrupt hit sample skipped")
	}
	if _, ok := samples[SoundBackground]; ok {
		t.Error("Expected missing background sample skipped")
	}

	if got := LoadSamples("", testRate); len(got) != 0 {
		t.Errorf("Expected no samples without a directory, got %d", len(got))
	}
}
