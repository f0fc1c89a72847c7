package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/maze-master/constants"
	"github.com/lixenwraith/maze-master/game"
	"github.com/lixenwraith/maze-master/maze"
)

// Environment variable names
const (
	EnvWidth  = "MAZE_WIDTH"
	EnvHeight = "MAZE_HEIGHT"
	EnvSeed   = "MAZE_SEED"
	EnvDebug  = "MAZE_DEBUG"
	EnvAudio  = "MAZE_AUDIO"
	EnvKeymap = "MAZE_KEYMAP"
)

// Config holds runtime settings.
// Precedence, lowest first: Default, TOML file, environment (.env included), flags.
type Config struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	Seed           int64   `toml:"seed"`             // 0 = time based
	CellSize       int     `toml:"cell_size"`        // Presentation units per cell
	Speed          int     `toml:"speed"`            // Units per tick
	TickMillis     int     `toml:"tick_ms"`          // Logic tick interval
	SecondsPerCell float64 `toml:"seconds_per_cell"` // Par time allowance
	Audio          bool    `toml:"audio"`
	Debug          bool    `toml:"debug"`
	Keymap         string  `toml:"keymap"` // Optional key binding TOML file
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Width:          constants.DefaultWidth,
		Height:         constants.DefaultHeight,
		CellSize:       constants.CellUnits,
		Speed:          constants.AgentSpeed,
		TickMillis:     int(constants.TickInterval / time.Millisecond),
		SecondsPerCell: constants.SecondsPerCell,
		Audio:          true,
	}
}

// Load builds a Config from defaults, the optional TOML file at path and the
// environment. A missing .env file is not an error; a missing TOML file named
// explicitly is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[config] .env not loaded: %v", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg
func (c *Config) Decode(data []byte) error {
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config decode: %w", err)
	}
	return nil
}

// applyEnv overlays environment variables using lookup
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("env %s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("env %s: %w", EnvSeed, err)
		}
		c.Seed = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvDebug, &c.Debug},
		{EnvAudio, &c.Audio},
	}
	for _, e := range bools {
		if v, ok := lookup(e.key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("env %s: %w", e.key, err)
			}
			*e.dst = b
		}
	}

	if v, ok := lookup(EnvKeymap); ok {
		c.Keymap = v
	}
	return nil
}

// Validate checks ranges. A playable maze needs at least two cells per side
// so start and goal differ.
func (c *Config) Validate() error {
	if c.Width < 2 || c.Height < 2 || c.Width > maze.MaxDimension || c.Height > maze.MaxDimension {
		return fmt.Errorf("maze size %dx%d outside 2..%d: %w", c.Width, c.Height, maze.MaxDimension, maze.ErrInvalidArgument)
	}
	if c.CellSize < 1 || c.Speed < 1 {
		return fmt.Errorf("cell_size %d speed %d must be positive: %w", c.CellSize, c.Speed, maze.ErrInvalidArgument)
	}
	if c.Speed > c.CellSize {
		return fmt.Errorf("speed %d exceeds cell_size %d: %w", c.Speed, c.CellSize, maze.ErrInvalidArgument)
	}
	if c.Tick() < constants.MinTickInterval {
		return fmt.Errorf("tick_ms %d below %s: %w", c.TickMillis, constants.MinTickInterval, maze.ErrInvalidArgument)
	}
	if c.SecondsPerCell <= 0 {
		return fmt.Errorf("seconds_per_cell %v must be positive: %w", c.SecondsPerCell, maze.ErrInvalidArgument)
	}
	return nil
}

// Tick returns the logic tick interval
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Level returns the level parameters for a new session
func (c *Config) Level() game.LevelConfig {
	return game.LevelConfig{
		Width:          c.Width,
		Height:         c.Height,
		Seed:           c.Seed,
		CellSize:       c.CellSize,
		Speed:          c.Speed,
		SecondsPerCell: c.SecondsPerCell,
	}
}
