// SPDX-License-Identifier: MIT

// Package config loads the strnum CLI settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/strnum/anagram"
	"github.com/katalvlaran/strnum/lcp"
	"github.com/katalvlaran/strnum/permute"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ResolvePath and Load.
const (
	EnvConfigPath = "STRNUM_CONFIG"
	EnvLogLevel   = "STRNUM_LOG_LEVEL"
	EnvStrategy   = "STRNUM_LCP_STRATEGY"
	EnvMaxLength  = "STRNUM_PERMUTE_MAX_LENGTH"
)

// DefaultPath is used when neither a flag nor EnvConfigPath names a file.
const DefaultPath = "strnum.yaml"

// Config holds all strnum settings.
type Config struct {
	Permute PermuteConfig `yaml:"permute"`
	Anagram AnagramConfig `yaml:"anagram"`
	LCP     LCPConfig     `yaml:"lcp"`
	Log     LogConfig     `yaml:"log"`
}

// PermuteConfig bounds permutation output.
type PermuteConfig struct {
	MaxLength int `yaml:"max_length"`
}

// AnagramConfig selects the normalisation applied before comparison.
type AnagramConfig struct {
	CaseFold        bool `yaml:"case_fold"`
	StripWhitespace bool `yaml:"strip_whitespace"`
	NFC             bool `yaml:"nfc"`
}

// LCPConfig picks the default prefix strategy.
type LCPConfig struct {
	Strategy string `yaml:"strategy"` // horizontal, vertical, divide, binary, sorted
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Permute: PermuteConfig{MaxLength: permute.DefaultMaxLength},
		LCP:     LCPConfig{Strategy: lcp.DefaultStrategy.String()},
		Log:     LogConfig{Level: "info", Format: "console"},
	}
}

// ResolvePath returns path if set, else $STRNUM_CONFIG, else DefaultPath.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}

	return DefaultPath
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last, then the result is
// validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		c.LCP.Strategy = v
	}
	if v := os.Getenv(EnvMaxLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxLength, v, err)
		}
		c.Permute.MaxLength = n
	}

	return nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Permute.MaxLength <= 0 {
		return fmt.Errorf("invalid permute.max_length: %d (must be > 0)", c.Permute.MaxLength)
	}
	if _, err := lcp.ParseStrategy(c.LCP.Strategy); err != nil {
		return fmt.Errorf("invalid lcp.strategy: %w", err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level: %q (valid: debug, info, warn, error)", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log.format: %q (valid: console, json)", c.Log.Format)
	}

	return nil
}

// AnagramOptions converts the anagram section into library options.
func (c *Config) AnagramOptions() []anagram.Option {
	var opts []anagram.Option
	if c.Anagram.NFC {
		opts = append(opts, anagram.WithNFC())
	}
	if c.Anagram.CaseFold {
		opts = append(opts, anagram.WithCaseFold())
	}
	if c.Anagram.StripWhitespace {
		opts = append(opts, anagram.WithStripWhitespace())
	}

	return opts
}

// Strategy returns the configured LCP strategy. Call after Validate.
func (c *Config) Strategy() lcp.Strategy {
	s, err := lcp.ParseStrategy(c.LCP.Strategy)
	if err != nil {
		return lcp.DefaultStrategy
	}

	return s
}
