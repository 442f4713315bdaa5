package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// FiftyMoveMode selects how the fifty-move draw is counted.
type FiftyMoveMode int

const (
	// FiftyMoveHalfmoveClock draws once FiftyMoveLimit plies pass without
	// a capture or pawn move.
	FiftyMoveHalfmoveClock FiftyMoveMode = iota
	// FiftyMoveTotal draws once 50 moves have been played in total.
	FiftyMoveTotal
)

// String returns the flag spelling of the mode.
func (m FiftyMoveMode) String() string {
	switch m {
	case FiftyMoveHalfmoveClock:
		return "halfmove"
	case FiftyMoveTotal:
		return "total"
	}
	return fmt.Sprintf("FiftyMoveMode(%d)", int(m))
}

// ParseFiftyMoveMode parses "halfmove" or "total".
func ParseFiftyMoveMode(s string) (FiftyMoveMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "halfmove", "clock", "":
		return FiftyMoveHalfmoveClock, nil
	case "total", "legacy":
		return FiftyMoveTotal, nil
	}
	return 0, fmt.Errorf("fifty-move mode %q: %w", s, errors.ErrInvalidConfig)
}

// TotalMoveLimit is the move count at which FiftyMoveTotal declares a draw.
const TotalMoveLimit = 50

// RulesConfig holds the tunable draw and promotion rules.
type RulesConfig struct {
	// FiftyMoveMode selects the fifty-move counting method
	FiftyMoveMode FiftyMoveMode

	// FiftyMoveLimit is the number of plies without capture or pawn move
	// that draws under FiftyMoveHalfmoveClock
	FiftyMoveLimit int

	// RepetitionLimit is how many occurrences of a position draw
	RepetitionLimit int

	// DefaultPromotion is used when no valid promotion choice is given
	DefaultPromotion chess.Kind
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		FiftyMoveMode:    FiftyMoveHalfmoveClock,
		FiftyMoveLimit:   100,
		RepetitionLimit:  3,
		DefaultPromotion: chess.Queen,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.FiftyMoveMode != FiftyMoveHalfmoveClock && r.FiftyMoveMode != FiftyMoveTotal {
		return fmt.Errorf("unknown fifty-move mode %d: %w", int(r.FiftyMoveMode), errors.ErrInvalidConfig)
	}
	if r.FiftyMoveLimit < 1 {
		return fmt.Errorf("fifty-move limit %d must be positive: %w", r.FiftyMoveLimit, errors.ErrInvalidConfig)
	}
	if r.RepetitionLimit < 2 {
		return fmt.Errorf("repetition limit %d must be at least 2: %w", r.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if !r.DefaultPromotion.IsPromotionTarget() {
		return fmt.Errorf("cannot promote to %v: %w", r.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
