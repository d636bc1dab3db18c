package config

import (
	"fmt"
	"os"

	"abalone/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds all settings of a local game
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Game GameConfig `yaml:"game"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // zerolog level name
	Pretty bool   `yaml:"pretty"` // human readable console output instead of JSON
}

// GameConfig holds rule and engine settings
type GameConfig struct {
	VictoryRemovals int `yaml:"victory_removals"`
	MaxSelection    int `yaml:"max_selection"`
	MaxTurns        int `yaml:"max_turns"`
}

// Default returns the standard rules with info level console logging
func Default() *Config {
	cfg := &Config{Log: LogConfig{Pretty: true}}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Set defaults if not provided
func (c *Config) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = zerolog.InfoLevel.String()
	}
	if c.Game.VictoryRemovals == 0 {
		c.Game.VictoryRemovals = meta.VICTORY_REMOVALS
	}
	if c.Game.MaxSelection == 0 {
		c.Game.MaxSelection = meta.MAX_SELECTION
	}
	if c.Game.MaxTurns == 0 {
		c.Game.MaxTurns = meta.MAX_TURNS
	}
}

// Validate checks that the values can be used to start a game
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	if c.Game.VictoryRemovals < 1 || c.Game.VictoryRemovals > meta.MARBLES_PER_SIDE {
		return fmt.Errorf("victory_removals must be between 1 and %d, got %d", meta.MARBLES_PER_SIDE, c.Game.VictoryRemovals)
	}
	if c.Game.MaxSelection < 1 || c.Game.MaxSelection > meta.MAX_SELECTION {
		return fmt.Errorf("max_selection must be between 1 and %d, got %d", meta.MAX_SELECTION, c.Game.MaxSelection)
	}
	if c.Game.MaxTurns < 1 {
		return fmt.Errorf("max_turns must be positive, got %d", c.Game.MaxTurns)
	}
	return nil
}

// LogLevel returns the parsed log level. Validate must have succeeded.
func (c *Config) LogLevel() zerolog.Level {
	level, _ := zerolog.ParseLevel(c.Log.Level)
	return level
}
