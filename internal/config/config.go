// Package config loads the YAML config file. Flags override file
// values, file values override defaults; the CLI layer does the merge.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
	Audio  AudioConfig  `yaml:"audio"`
	VAD    VADConfig    `yaml:"vad"`
	Hotkey HotkeyConfig `yaml:"hotkey"`
	Paste  PasteConfig  `yaml:"paste"`
}

type ServerConfig struct {
	// Addr is the listen address for the serve command.
	Addr string `yaml:"addr"`
	// URL is where the client commands send audio.
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

type EngineConfig struct {
	Name     string `yaml:"name"`
	Model    string `yaml:"model"`
	ModelDir string `yaml:"model_dir"`
	Language string `yaml:"language"`
	// Simplify converts transcripts to simplified Chinese.
	Simplify bool `yaml:"simplify"`
	// OpenAI credentials, only used by the openai engine.
	OpenAIKey     string `yaml:"openai_key"`
	OpenAIBaseURL string `yaml:"openai_base_url"`
}

type AudioConfig struct {
	SampleRate uint32 `yaml:"sample_rate"`
	Channels   uint32 `yaml:"channels"`
	Device     string `yaml:"device"`
}

type VADConfig struct {
	// ThresholdDBFS is the RMS level a frame must exceed to count as
	// voice. More negative means more sensitive.
	ThresholdDBFS float64 `yaml:"threshold_dbfs"`
	// SilenceHoldMs of continuous silence closes a segment.
	SilenceHoldMs int `yaml:"silence_hold_ms"`
	// MinSegmentMs discards blips shorter than this.
	MinSegmentMs int `yaml:"min_segment_ms"`
}

type HotkeyConfig struct {
	Keys []string `yaml:"keys"`
	Mode string   `yaml:"mode"`
}

type PasteConfig struct {
	Enabled          bool `yaml:"enabled"`
	RestoreClipboard bool `yaml:"restore_clipboard"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8000",
			URL:  "http://127.0.0.1:8000",
		},
		Engine: EngineConfig{
			Name:     "whisper",
			Language: "zh",
			Simplify: true,
		},
		Audio: AudioConfig{
			SampleRate: 16000,
			Channels:   1,
		},
		VAD: VADConfig{
			ThresholdDBFS: -40,
			SilenceHoldMs: 500,
			MinSegmentMs:  300,
		},
		Hotkey: HotkeyConfig{
			Keys: []string{"ctrl", "shift", "r"},
			Mode: "hold",
		},
		Paste: PasteConfig{
			Enabled:          true,
			RestoreClipboard: true,
		},
	}
}

// Load reads path on top of defaults. A missing file is not an error;
// defaults are returned so the tool works with zero setup.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.Engine.ModelDir = ExpandTilde(cfg.Engine.ModelDir)

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return errors.New("server.url must not be empty")
	}

	if c.Engine.Name == "" {
		return errors.New("engine.name must not be empty")
	}

	if c.Audio.SampleRate == 0 {
		return errors.New("audio.sample_rate must be > 0")
	}
	if c.Audio.Channels == 0 {
		return errors.New("audio.channels must be > 0")
	}

	if c.VAD.SilenceHoldMs <= 0 {
		return errors.New("vad.silence_hold_ms must be > 0")
	}
	if c.VAD.MinSegmentMs < 0 {
		return errors.New("vad.min_segment_ms must be >= 0")
	}
	if c.VAD.ThresholdDBFS > 0 {
		return fmt.Errorf("vad.threshold_dbfs must be negative dBFS, got %v", c.VAD.ThresholdDBFS)
	}

	if len(c.Hotkey.Keys) == 0 {
		return errors.New("hotkey.keys must not be empty")
	}
	switch c.Hotkey.Mode {
	case "hold", "toggle":
	default:
		return fmt.Errorf("hotkey.mode must be \"hold\" or \"toggle\", got %q", c.Hotkey.Mode)
	}

	return nil
}

// ExpandTilde replaces a leading ~ with the user's home directory.
func ExpandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
