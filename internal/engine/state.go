package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// GameState is the status of the side to move.
type GameState int

const (
	Ongoing GameState = iota
	Check
	Checkmate
	Stalemate
	Draw
)

var gameStateNames = [...]string{"ongoing", "check", "checkmate", "stalemate", "draw"}

// String returns a lower-case status name.
func (s GameState) String() string {
	if s >= 0 && int(s) < len(gameStateNames) {
		return gameStateNames[s]
	}
	return "unknown"
}

// IsTerminal reports whether no further moves can be played.
func (s GameState) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// DrawReason explains why a position is drawn.
type DrawReason int

const (
	NoDraw DrawReason = iota
	DrawByStalemate
	DrawByInsufficientMaterial
	DrawByRepetition
	DrawByFiftyMoves
)

var drawReasonNames = [...]string{"none", "stalemate", "insufficient material", "repetition", "fifty-move rule"}

// String returns a lower-case description of the reason.
func (r DrawReason) String() string {
	if r >= 0 && int(r) < len(drawReasonNames) {
		return drawReasonNames[r]
	}
	return "unknown"
}

// GameStateChecker derives the game status from the board, the validator
// and the history. Nothing is cached; every query recomputes.
type GameStateChecker struct {
	board     *chess.Board
	validator *MoveValidator
	rules     *config.RulesConfig
}

// NewGameStateChecker creates a checker. A nil rules config uses defaults.
func NewGameStateChecker(board *chess.Board, validator *MoveValidator, rules *config.RulesConfig) *GameStateChecker {
	if rules == nil {
		rules = config.NewRulesConfig()
	}
	return &GameStateChecker{
		board:     board,
		validator: validator,
		rules:     rules,
	}
}

// IsInCheck reports whether the side to move is in check.
func (c *GameStateChecker) IsInCheck() bool {
	return c.board.IsInCheck(c.board.CurrentPlayer())
}

// HasValidMoves reports whether the side to move has a legal move.
func (c *GameStateChecker) HasValidMoves() bool {
	return c.validator.HasValidMoves(c.board.CurrentPlayer())
}

// IsCheckmate reports whether the side to move is in check with no legal move.
func (c *GameStateChecker) IsCheckmate() bool {
	return c.IsInCheck() && !c.HasValidMoves()
}

// IsStalemate reports whether the side to move is not in check but has no
// legal move.
func (c *GameStateChecker) IsStalemate() bool {
	return !c.IsInCheck() && !c.HasValidMoves()
}

// HasInsufficientMaterial reports king against king, or king and a single
// bishop or knight against a lone king.
func (c *GameStateChecker) HasInsufficientMaterial() bool {
	var others []*chess.Piece
	for _, color := range []chess.Color{chess.White, chess.Black} {
		for _, p := range c.board.Pieces(color) {
			if p.Kind() != chess.King {
				others = append(others, p)
			}
		}
	}

	switch len(others) {
	case 0:
		return true
	case 1:
		k := others[0].Kind()
		return k == chess.Bishop || k == chess.Knight
	}
	return false
}

// IsFiftyMoveDraw applies the configured fifty-move rule.
func (c *GameStateChecker) IsFiftyMoveDraw(history *MoveHistory) bool {
	if history == nil {
		return false
	}
	if c.rules.FiftyMoveMode == config.FiftyMoveTotal {
		return history.MoveCount() >= config.TotalMoveLimit
	}
	return history.HalfmoveClock() >= c.rules.FiftyMoveLimit
}

// IsRepetitionDraw reports whether the current position has occurred
// RepetitionLimit times.
func (c *GameStateChecker) IsRepetitionDraw(history *MoveHistory) bool {
	return history != nil && history.IsRepetition(c.rules.RepetitionLimit)
}

// DrawReason returns the first draw condition that holds.
func (c *GameStateChecker) DrawReason(history *MoveHistory) DrawReason {
	switch {
	case c.IsStalemate():
		return DrawByStalemate
	case c.HasInsufficientMaterial():
		return DrawByInsufficientMaterial
	case c.IsRepetitionDraw(history):
		return DrawByRepetition
	case c.IsFiftyMoveDraw(history):
		return DrawByFiftyMoves
	}
	return NoDraw
}

// IsDraw reports whether any draw condition holds, stalemate included.
func (c *GameStateChecker) IsDraw(history *MoveHistory) bool {
	return c.DrawReason(history) != NoDraw
}

// Status evaluates checkmate, stalemate, check and draw in that order.
func (c *GameStateChecker) Status(history *MoveHistory) GameState {
	inCheck := c.IsInCheck()
	hasMoves := c.HasValidMoves()

	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	case c.HasInsufficientMaterial(), c.IsRepetitionDraw(history), c.IsFiftyMoveDraw(history):
		return Draw
	}
	return Ongoing
}
