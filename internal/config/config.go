// Package config loads the driver configuration from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete driver configuration
type Config struct {
	Trials      TrialPolicy
	Workers     int
	Accelerator AcceleratorConfig
	LogLevel    string
}

// fileConfig mirrors Config with optional blocks for decoding.
type fileConfig struct {
	Trials      *TrialPolicy       `hcl:"trials,block"`
	Workers     int                `hcl:"workers,optional"`
	Accelerator *AcceleratorConfig `hcl:"accelerator,block"`
	LogLevel    string             `hcl:"log_level,optional"`
}

// TrialPolicy sets how many Monte Carlo trials to run for each street.
type TrialPolicy struct {
	Preflop int `hcl:"preflop,optional"`
	Flop    int `hcl:"flop,optional"`
	Turn    int `hcl:"turn,optional"`
	River   int `hcl:"river,optional"`
}

// AcceleratorConfig points at an optional external equity binary.
type AcceleratorConfig struct {
	Path string `hcl:"path,optional"`
	// Timeout is in seconds.
	Timeout int `hcl:"timeout,optional"`
}

// TimeoutDuration returns the accelerator timeout as a duration.
func (a AcceleratorConfig) TimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Trials: TrialPolicy{
			Preflop: 10000,
			Flop:    20000,
			Turn:    50000,
			River:   50000,
		},
		Workers: 0,
		Accelerator: AcceleratorConfig{
			Path:    "",
			Timeout: 10,
		},
		LogLevel: "warn",
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Config{Workers: raw.Workers, LogLevel: raw.LogLevel}
	if raw.Trials != nil {
		config.Trials = *raw.Trials
	}
	if raw.Accelerator != nil {
		config.Accelerator = *raw.Accelerator
	}

	config.backfill(Default())

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// backfill replaces zero values with defaults.
func (c *Config) backfill(defaults *Config) {
	if c.Trials.Preflop == 0 {
		c.Trials.Preflop = defaults.Trials.Preflop
	}
	if c.Trials.Flop == 0 {
		c.Trials.Flop = defaults.Trials.Flop
	}
	if c.Trials.Turn == 0 {
		c.Trials.Turn = defaults.Trials.Turn
	}
	if c.Trials.River == 0 {
		c.Trials.River = defaults.Trials.River
	}
	if c.Accelerator.Timeout == 0 {
		c.Accelerator.Timeout = defaults.Accelerator.Timeout
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Trials.Preflop < 0 || c.Trials.Flop < 0 || c.Trials.Turn < 0 || c.Trials.River < 0 {
		return fmt.Errorf("trial counts cannot be negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}
	if c.Accelerator.Timeout < 0 {
		return fmt.Errorf("accelerator timeout cannot be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// TrialsFor returns the trial count for a board with the given number of cards.
func (c *Config) TrialsFor(boardLen int) int {
	switch {
	case boardLen < 3:
		return c.Trials.Preflop
	case boardLen == 3:
		return c.Trials.Flop
	case boardLen == 4:
		return c.Trials.Turn
	default:
		return c.Trials.River
	}
}
