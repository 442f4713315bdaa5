package config

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithFiftyMoveMode sets how the fifty-move rule is counted.
func (b *ConfigBuilder) WithFiftyMoveMode(mode FiftyMoveMode) *ConfigBuilder {
	b.cfg.Rules.FiftyMoveMode = mode
	return b
}

// WithFiftyMoveLimit sets the ply limit for the halfmove clock.
func (b *ConfigBuilder) WithFiftyMoveLimit(plies int) *ConfigBuilder {
	b.cfg.Rules.FiftyMoveLimit = plies
	return b
}

// WithRepetitionLimit sets how many occurrences of a position draw.
func (b *ConfigBuilder) WithRepetitionLimit(n int) *ConfigBuilder {
	b.cfg.Rules.RepetitionLimit = n
	return b
}

// WithDefaultPromotion sets the piece used when no promotion choice is given.
func (b *ConfigBuilder) WithDefaultPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Rules.DefaultPromotion = kind
	return b
}

// WithCoordinates controls rank and file labels in board diagrams.
func (b *ConfigBuilder) WithCoordinates(show bool) *ConfigBuilder {
	b.cfg.Display.ShowCoordinates = show
	return b
}

// WithEmptySquare sets the character drawn for empty squares.
func (b *ConfigBuilder) WithEmptySquare(c byte) *ConfigBuilder {
	b.cfg.Display.EmptySquare = c
	return b
}
