// Package config loads game settings from YAML with environment overrides
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/undead/audio"
	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/input"
	"github.com/lixenwraith/undead/vmath"
)

// DefaultPath is read when no --config flag is given
const DefaultPath = "undead.yaml"

// Config is the full set of runtime settings
type Config struct {
	Game  GameConfig          `yaml:"game"`
	Audio AudioConfig         `yaml:"audio"`
	Keys  map[string][]string `yaml:"keys"` // action name → key names
	HUD   HUDConfig           `yaml:"hud"`
	Log   LogConfig           `yaml:"log"`
}

// GameConfig controls the simulation loop
type GameConfig struct {
	Seed          int64         `yaml:"seed"` // 0 seeds from the clock
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// AudioConfig is the file form of audio.AudioConfig
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	Volumes      map[string]float64 `yaml:"volumes"` // sound name → 0.0-1.0
	SampleRate   int                `yaml:"sample_rate"`
	SoundsDir    string             `yaml:"sounds_dir"`
}

// HUDConfig controls the optional HTTP status surface
type HUDConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Addr         string        `yaml:"addr"`
	PushInterval time.Duration `yaml:"push_interval"`
}

// LogConfig controls file logging
type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns settings for a stock game
func Default() *Config {
	return &Config{
		Game: GameConfig{
			FrameInterval: constants.FrameUpdateInterval,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 1.0,
			Volumes: map[string]float64{
				audio.SoundBackground.String(): constants.DefaultBackgroundVolume,
				audio.SoundHit.String():        constants.DefaultHitVolume,
				audio.SoundSuccess.String():    constants.DefaultSuccessVolume,
			},
			SampleRate: constants.AudioSampleRate,
		},
		Keys: map[string][]string{},
		HUD: HUDConfig{
			Addr:         "127.0.0.1:8079",
			PushInterval: constants.HUDPushInterval,
		},
	}
}

// Load reads path over the defaults; a missing file yields the defaults
// Unknown fields are rejected so typos do not pass silently
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Config: %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	log.Printf("Config: loaded %s", path)
	return cfg, nil
}

// ApplyEnv overrides settings from UNDEAD_* environment variables
// Malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("UNDEAD_AUDIO_ENABLED"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume as 0-100
	if v := os.Getenv("UNDEAD_MASTER_VOLUME"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	if v := os.Getenv("UNDEAD_SFX_VOLUMES"); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			if c.Audio.Volumes == nil {
				c.Audio.Volumes = make(map[string]float64)
			}
			for name, vol := range volumes {
				c.Audio.Volumes[name] = vol
			}
		}
	}

	if v := os.Getenv("UNDEAD_SAMPLE_RATE"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			c.Audio.SampleRate = val
		}
	}

	if v := os.Getenv("UNDEAD_SOUNDS_DIR"); v != "" {
		c.Audio.SoundsDir = v
	}

	if v := os.Getenv("UNDEAD_SEED"); v != "" {
		if val, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Game.Seed = val
		}
	}

	if v := os.Getenv("UNDEAD_HUD_ENABLED"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			c.HUD.Enabled = val
		}
	}

	if v := os.Getenv("UNDEAD_HUD_ADDR"); v != "" {
		c.HUD.Addr = v
	}

	if v := os.Getenv("UNDEAD_DEBUG"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = val
		}
	}
}

// Validate clamps volumes and rejects unusable values
func (c *Config) Validate() error {
	if c.Game.FrameInterval <= 0 {
		return fmt.Errorf("game.frame_interval must be positive, got %v", c.Game.FrameInterval)
	}
	if c.HUD.PushInterval <= 0 {
		return fmt.Errorf("hud.push_interval must be positive, got %v", c.HUD.PushInterval)
	}
	if c.HUD.Enabled && c.HUD.Addr == "" {
		return errors.New("hud.addr is required when hud is enabled")
	}
	for name := range c.Audio.Volumes {
		if _, ok := audio.ParseSoundType(name); !ok {
			return fmt.Errorf("audio.volumes: unknown sound %q", name)
		}
	}
	if _, err := input.LoadKeyMap(c.Keys); err != nil {
		return err
	}

	c.Audio.MasterVolume = vmath.Clamp(c.Audio.MasterVolume, 0, 1)
	for name, v := range c.Audio.Volumes {
		c.Audio.Volumes[name] = vmath.Clamp(v, 0, 1)
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = constants.AudioSampleRate
	}
	return nil
}

// AudioSettings converts the audio section for the sound manager
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SetEffectVolumes(c.Audio.Volumes)
	ac.SampleRate = c.Audio.SampleRate
	ac.SoundsDir = c.Audio.SoundsDir
	ac.Clamp()
	return ac
}

// KeyMap builds the key table with configured overrides
func (c *Config) KeyMap() (*input.KeyMap, error) {
	return input.LoadKeyMap(c.Keys)
}
