package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// config is the only persisted config file schema for owl-demo. It
// mirrors the shape of Options so a config file can set every default
// the --flags on the command also set, following the precedence a
// teacher CLI in this pack establishes: flags override a file, which
// overrides hardcoded defaults.
type config struct {
	RefreshMillis int    `toml:"refresh_ms"`
	Width         int    `toml:"width"`
	Scenario      string `toml:"scenario"`
	Source        string `toml:"-"`
}

func defaultConfig() config {
	return config{RefreshMillis: 100, Width: 0, Scenario: "status"}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".owl", "demo.toml")
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c config) refresh() time.Duration {
	if c.RefreshMillis <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.RefreshMillis) * time.Millisecond
}
