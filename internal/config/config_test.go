package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadMergesOverDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  url: http://gpu-box:8000
engine:
  name: paraformer-onnx
vad:
  threshold_dbfs: -35
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://gpu-box:8000", cfg.Server.URL)
	require.Equal(t, "paraformer-onnx", cfg.Engine.Name)
	require.Equal(t, -35.0, cfg.VAD.ThresholdDBFS)

	// untouched fields keep their defaults
	require.Equal(t, uint32(16000), cfg.Audio.SampleRate)
	require.Equal(t, 500, cfg.VAD.SilenceHoldMs)
	require.True(t, cfg.Paste.Enabled)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, "parse config file")
}

func TestLoadExpandsModelDirTilde(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  model_dir: ~/models\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "models"), cfg.Engine.ModelDir)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"empty url", func(c *Config) { c.Server.URL = "" }, "server.url"},
		{"empty engine", func(c *Config) { c.Engine.Name = "" }, "engine.name"},
		{"zero sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, "sample_rate"},
		{"zero channels", func(c *Config) { c.Audio.Channels = 0 }, "channels"},
		{"bad silence hold", func(c *Config) { c.VAD.SilenceHoldMs = 0 }, "silence_hold_ms"},
		{"positive threshold", func(c *Config) { c.VAD.ThresholdDBFS = 5 }, "threshold_dbfs"},
		{"no hotkeys", func(c *Config) { c.Hotkey.Keys = nil }, "hotkey.keys"},
		{"bad hotkey mode", func(c *Config) { c.Hotkey.Mode = "tap" }, "hotkey.mode"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestExpandTilde(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/abs/path", ExpandTilde("/abs/path"))
	require.Equal(t, "relative", ExpandTilde("relative"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "x"), ExpandTilde("~/x"))
}
