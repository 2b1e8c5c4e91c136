// Package config loads CLI and server settings from an optional YAML file.
// Command-line flags override file values; file values override defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr     string `yaml:"addr"`      // HTTP listen address
	DataDir  string `yaml:"data-dir"`  // puzzle store root
	LogLevel string `yaml:"log-level"` // debug, info, warn, error
	Engine   string `yaml:"engine"`    // backtrack or dlx
	Cheat    bool   `yaml:"cheat"`     // enable the oracle strategy
	MinClues int    `yaml:"min-clues"` // overrides the difficulty clue floor when > 0
}

// Default is the configuration used when no file and no flags are given.
func Default() Config {
	return Config{
		Addr:     ":8080",
		DataDir:  "./puzzles",
		LogLevel: "info",
		Engine:   "backtrack",
	}
}

// Load reads path over the defaults. A missing file is not an error when the
// path is the conventional one; an explicit path must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Engine {
	case "backtrack", "dlx":
	default:
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.MinClues < 0 || c.MinClues > 80 {
		return fmt.Errorf("min-clues %d out of range", c.MinClues)
	}
	return nil
}
