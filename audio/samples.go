package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is the beep resampler quality for samples at a foreign rate
const resampleQuality = 4

// LoadSample decodes a WAV file into memory at the given rate
func LoadSample(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	out := format
	out.SampleRate = rate
	buf := beep.NewBuffer(out)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}

// LoadSamples reads <sound>.wav overrides from dir
// Missing files are skipped; undecodable files are logged and skipped
func LoadSamples(dir string, rate beep.SampleRate) map[SoundType]*beep.Buffer {
	samples := make(map[SoundType]*beep.Buffer)
	if dir == "" {
		return samples
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		path := filepath.Join(dir, st.String()+".wav")
		buf, err := LoadSample(path, rate)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("Audio: sample %s unusable, using synthesized sound: %v", path, err)
			}
			continue
		}
		samples[st] = buf
		log.Printf("Audio: loaded sample %s (%d frames)", path, buf.Len())
	}
	return samples
}
