package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveResult reports the outcome of ApplyMove.
type MoveResult struct {
	Accepted  bool
	Captured  *chess.Piece
	Kind      MoveKind
	Promotion chess.Kind
	Status    GameState
}

// Game wires one board to its history, validator, special-move handler and
// status checker. It is the only component that mutates the board and
// switches the turn.
type Game struct {
	id  uuid.UUID
	cfg *config.Config

	board     *chess.Board
	history   *MoveHistory
	special   *SpecialMovesHandler
	validator *MoveValidator
	checker   *GameStateChecker
}

// NewGame starts a game from the initial position.
func NewGame(cfg *config.Config) *Game {
	return NewGameFromBoard(chess.NewStandardBoard(), cfg)
}

// NewGameFromBoard starts a game from a prepared board. The game takes
// ownership of board. A nil cfg uses defaults.
func NewGameFromBoard(board *chess.Board, cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	rules := cfg.Rules
	if rules == nil {
		rules = config.NewRulesConfig()
	}

	g := &Game{
		id:    uuid.New(),
		cfg:   cfg,
		board: board,
	}
	g.history = NewMoveHistory(board)
	g.special = NewSpecialMovesHandler(board, g.history, rules.DefaultPromotion)
	g.validator = NewMoveValidator(board, g.history, g.special)
	g.checker = NewGameStateChecker(board, g.validator, rules)

	cfg.Logf(2, "game %s: started, %v to move\n", g.id, board.CurrentPlayer())
	return g
}

// ApplyMove plays from-to for the side to move. choice is the promotion
// piece and may be nil. A rejected move changes nothing.
func (g *Game) ApplyMove(from, to chess.Position, choice *chess.Kind) MoveResult {
	if !g.validator.IsValidMove(from, to) {
		g.cfg.Logf(2, "game %s: rejected %v %s-%s\n", g.id, g.board.CurrentPlayer(), from.Algebraic(), to.Algebraic())
		return MoveResult{Status: g.Status()}
	}

	mover := g.board.PieceAt(from)
	before := mover.Snapshot()
	kind := g.special.Classify(from, to)

	var captured *chess.Piece
	var promotion chess.Kind
	if kind.IsSpecial() {
		out, ok := g.special.Execute(from, to, choice)
		if !ok {
			return MoveResult{Status: g.Status()}
		}
		captured = out.Captured
		promotion = out.Promotion
	} else {
		victim := g.board.PieceAt(to)
		if !g.board.ApplyPlainMove(from, to) {
			return MoveResult{Status: g.Status()}
		}
		captured = victim
	}

	var capturedSnap *chess.Piece
	if captured != nil {
		s := captured.Snapshot()
		capturedSnap = &s
	}
	g.history.RecordSpecial(from, to, before, capturedSnap, kind, promotion, g.board)
	g.board.SwitchPlayer()

	status := g.Status()
	g.logMove(before, from, to, kind, promotion, captured, status)

	return MoveResult{
		Accepted:  true,
		Captured:  captured,
		Kind:      kind,
		Promotion: promotion,
		Status:    status,
	}
}

func (g *Game) logMove(before chess.Piece, from, to chess.Position, kind MoveKind, promotion chess.Kind,
	captured *chess.Piece, status GameState) {
	if g.cfg.Verbosity < 2 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "game %s: ply %d %s %s-%s", g.id, g.history.MoveCount(), before.FullName(), from.Algebraic(), to.Algebraic())
	if kind.IsSpecial() {
		fmt.Fprintf(&sb, " (%v)", kind)
	}
	if kind == PromotionMove {
		fmt.Fprintf(&sb, " =%c", promotion.Symbol())
	}
	if captured != nil {
		fmt.Fprintf(&sb, " x %s", captured.FullName())
	}
	if status != Ongoing {
		fmt.Fprintf(&sb, " [%v]", status)
	}
	sb.WriteByte('\n')
	g.cfg.Logf(2, "%s", sb.String())

	if status.IsTerminal() {
		g.cfg.Logf(2, "game %s: over, %v\n", g.id, g.describeStatus(status))
	}
}

func (g *Game) describeStatus(status GameState) string {
	if status == Draw {
		return fmt.Sprintf("draw by %v", g.checker.DrawReason(g.history))
	}
	return status.String()
}

// ParseMove parses coordinate notation such as "e7e5" or "a2a1n". The
// promotion letter is optional; an empty choice is returned as nil.
func ParseMove(text string) (from, to chess.Position, choice *chess.Kind, err error) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "-", "")
	if len(s) != 4 && len(s) != 5 {
		return from, to, nil, fmt.Errorf("move %q: %w", text, errors.ErrInvalidNotation)
	}

	if from, err = chess.FromAlgebraic(s[0:2]); err != nil {
		return from, to, nil, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrInvalidNotation)
	}
	if to, err = chess.FromAlgebraic(s[2:4]); err != nil {
		return from, to, nil, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrInvalidNotation)
	}
	if len(s) == 5 {
		k, ok := chess.ParseKind(s[4:])
		if !ok {
			return from, to, nil, fmt.Errorf("move %q: unknown promotion piece: %w", text, errors.ErrInvalidNotation)
		}
		choice = &k
	}
	return from, to, choice, nil
}

// ApplyAlgebraic parses and applies a move in coordinate notation. A
// rejected move returns a *errors.MoveError wrapping ErrIllegalMove.
func (g *Game) ApplyAlgebraic(text string) (MoveResult, error) {
	from, to, choice, err := ParseMove(text)
	if err != nil {
		return MoveResult{Status: g.Status()}, &errors.MoveError{
			Err:      err,
			Ply:      g.history.MoveCount() + 1,
			MoveText: text,
			GameID:   g.id.String(),
		}
	}

	res := g.ApplyMove(from, to, choice)
	if !res.Accepted {
		return res, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			Ply:      g.history.MoveCount() + 1,
			MoveText: text,
			GameID:   g.id.String(),
		}
	}
	return res, nil
}

// IsLegal reports whether from-to is legal for the side to move.
func (g *Game) IsLegal(from, to chess.Position) bool {
	return g.validator.IsValidMove(from, to)
}

// IsPromotion reports whether from-to is a legal promotion, so a caller
// can ask for the piece before applying it.
func (g *Game) IsPromotion(from, to chess.Position) bool {
	return g.special.Classify(from, to) == PromotionMove && g.validator.IsValidMove(from, to)
}

// LegalDestinations returns the legal destinations of the piece on pos.
func (g *Game) LegalDestinations(pos chess.Position) []chess.Position {
	return g.validator.ValidMoves(pos)
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []MovePair {
	return g.validator.AllValidMoves(g.board.CurrentPlayer())
}

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() chess.Color {
	return g.board.CurrentPlayer()
}

// Status returns the status of the side to move.
func (g *Game) Status() GameState {
	return g.checker.Status(g.history)
}

// DrawReason returns why the game is drawn, or NoDraw.
func (g *Game) DrawReason() DrawReason {
	return g.checker.DrawReason(g.history)
}

// RenderSnapshot returns a read-only view of the grid.
func (g *Game) RenderSnapshot() chess.Snapshot {
	return g.board.Render()
}

// CapturedPieces returns the captured pieces in capture order.
func (g *Game) CapturedPieces() []*chess.Piece {
	return g.board.CapturedPieces()
}

// History returns the move history.
func (g *Game) History() *MoveHistory {
	return g.history
}

// Board returns the game's board. Callers must not mutate it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Validator returns the game's move validator.
func (g *Game) Validator() *MoveValidator {
	return g.validator
}

// Checker returns the game's status checker.
func (g *Game) Checker() *GameStateChecker {
	return g.checker
}

// ID returns the game's identifier, used to correlate log lines.
func (g *Game) ID() uuid.UUID {
	return g.id
}
