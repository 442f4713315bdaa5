// Package config provides configuration for the chess rules engine.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Grouped settings
	Rules   *RulesConfig
	Display *DisplayConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Rules:      NewRulesConfig(),
		Display:    NewDisplayConfig(),
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration and its sub-configs.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d outside 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Rules != nil {
		if err := c.Rules.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Logf writes to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
