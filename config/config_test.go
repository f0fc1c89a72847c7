package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-master/constants"
	"github.com/lixenwraith/maze-master/maze"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, constants.TickInterval, cfg.Tick())
	assert.True(t, cfg.Audio)
	assert.False(t, cfg.Debug)
}

func TestDecode(t *testing.T) {
	cfg := Default()
	data := []byte(`
width = 20
height = 15
seed = 1234
tick_ms = 20
audio = false
keymap = "keys.toml"
`)
	require.NoError(t, cfg.Decode(data))

	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 15, cfg.Height)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 20*time.Millisecond, cfg.Tick())
	assert.False(t, cfg.Audio)
	assert.Equal(t, "keys.toml", cfg.Keymap)
	// Untouched keys keep their defaults
	assert.Equal(t, constants.CellUnits, cfg.CellSize)
}

func TestDecode_Malformed(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Decode([]byte("width = ")))
	assert.Error(t, cfg.Decode([]byte(`width = "wide"`)))
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvWidth:  "30",
		EnvHeight: "10",
		EnvSeed:   "-42",
		EnvDebug:  "true",
		EnvAudio:  "0",
		EnvKeymap: "/tmp/k.toml",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
	assert.Equal(t, int64(-42), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Audio)
	assert.Equal(t, "/tmp/k.toml", cfg.Keymap)
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		EnvWidth: "wide",
		EnvSeed:  "1.5",
		EnvDebug: "maybe",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			cfg := Default()
			err := cfg.applyEnv(func(k string) (string, bool) {
				if k == key {
					return val, true
				}
				return "", false
			})
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"width too small", func(c *Config) { c.Width = 1 }},
		{"height too large", func(c *Config) { c.Height = maze.MaxDimension + 1 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"zero speed", func(c *Config) { c.Speed = 0 }},
		{"speed above cell size", func(c *Config) { c.Speed = c.CellSize + 1 }},
		{"tick too fast", func(c *Config) { c.TickMillis = 1 }},
		{"no par time", func(c *Config) { c.SecondsPerCell = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), maze.ErrInvalidArgument)
		})
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 9\nheight = 9\nseed = 5\n"), 0644))

	t.Setenv(EnvHeight, "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Width)
	assert.Equal(t, 7, cfg.Height, "environment overrides file")
	assert.Equal(t, int64(5), cfg.Seed)

	level := cfg.Level()
	assert.Equal(t, 9, level.Width)
	assert.Equal(t, 7, level.Height)
	assert.Equal(t, int64(5), level.Seed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidResult(t *testing.T) {
	t.Setenv(EnvWidth, "1")
	_, err := Load("")
	assert.ErrorIs(t, err, maze.ErrInvalidArgument)
}
