// Package config loads and validates the run configuration for the evolution
// engine from YAML files.
package config

import (
	"github.com/XiaoConstantine/evo-go/pkg/evolution"
	"github.com/XiaoConstantine/evo-go/pkg/logging"
)

// Config represents the complete configuration for an evolutionary run.
type Config struct {
	// Engine configuration
	Engine evolution.Config `yaml:"engine" validate:"required"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging,omitempty" validate:"omitempty"`
}

// LoggingConfig holds configuration for the logging system.
type LoggingConfig struct {
	// Level is the minimum severity to emit (DEBUG, INFO, WARN, ERROR, FATAL)
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=DEBUG INFO WARN ERROR FATAL"`

	// UseStderr routes console output to stderr instead of stdout
	UseStderr bool `yaml:"use_stderr,omitempty"`

	// Color toggles ANSI colors on console output
	Color bool `yaml:"color,omitempty"`
}

// Default returns the default run configuration.
func Default() *Config {
	return &Config{
		Engine: *evolution.DefaultConfig(),
		Logging: LoggingConfig{
			Level: "INFO",
			Color: true,
		},
	}
}

// BuildLogger constructs a logger from the logging section.
func (c *Config) BuildLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{
		Severity: logging.ParseSeverity(c.Logging.Level),
		Outputs: []logging.Output{
			logging.NewConsoleOutput(c.Logging.UseStderr, logging.WithColor(c.Logging.Color)),
		},
	})
}
