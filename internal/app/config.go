package app

import (
	"errors"
	"fmt"

	"github.com/vk/pqbench/internal/export"
	"github.com/vk/pqbench/internal/synth"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Experiment string // empty selects every experiment
	List       bool   // print names only
	Format     string

	ExperimentsPath string // hcl files declaring additional experiments
	NoBuiltin       bool

	// Template overrides; zero values keep the built-in baseline.
	ServerPath string
	Users      int
	Duration   int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = string(export.Text)
	}
	if _, err := export.ParseFormat(cfg.Format); err != nil {
		return nil, err
	}
	if cfg.Users < 0 || cfg.Duration < 0 {
		return nil, errors.New("users and duration must not be negative")
	}
	if cfg.NoBuiltin && cfg.ExperimentsPath == "" {
		return nil, errors.New("ExperimentsPath is required when built-in experiments are disabled")
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level '%s'", cfg.LogLevel)
	}
	return &cfg, nil
}

// Template returns the synthesis baseline with the configured overrides
// applied.
func (c *Config) Template() synth.Template {
	tmpl := synth.DefaultTemplate()
	if c.ServerPath != "" {
		tmpl.ServerPath = c.ServerPath
	}
	if c.Users > 0 {
		tmpl.Users = c.Users
	}
	if c.Duration > 0 {
		tmpl.Duration = c.Duration
	}
	return tmpl
}
