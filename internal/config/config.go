// Package config loads the optional configuration file for the luca
// command. The engine itself takes no configuration; everything here only
// shapes the interactive front ends.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the luca command's settings.
type Config struct {
	// Prompt is the REPL prompt.
	Prompt string `yaml:"prompt"`
	// HistoryFile is where the REPL stores its line history.
	HistoryFile string `yaml:"history_file"`
	// PluralFallback lets an unknown variable ending in "s" resolve
	// through its singular form.
	PluralFallback bool `yaml:"plural_fallback"`
	// Variables are expressions evaluated into the starting environment,
	// e.g. tva: "1.2".
	Variables map[string]string `yaml:"variables"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Prompt:      ">> ",
		HistoryFile: filepath.Join(os.TempDir(), ".luca_history"),
	}
}

// DefaultPath returns the conventional config file location, or the empty
// string if the user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "luca", "config.yaml")
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = ">> "
	}
	return cfg, nil
}
