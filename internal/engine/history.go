// Package engine provides move validation, special moves, game status and
// the game orchestrator on top of the board model.
package engine

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// MoveKind classifies an executed move.
type MoveKind int

const (
	NormalMove MoveKind = iota
	CastlingMove
	EnPassantMove
	PromotionMove
)

var moveKindNames = [...]string{"normal", "castling", "en passant", "promotion"}

// String returns a lower-case description of the kind.
func (k MoveKind) String() string {
	if k >= 0 && int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return "unknown"
}

// IsSpecial reports whether the kind is castling, en passant or promotion.
func (k MoveKind) IsSpecial() bool {
	return k != NormalMove
}

// Move is one executed move.
type Move struct {
	From, To chess.Position

	// Piece is the mover as it stood before the move.
	Piece chess.Piece

	// Captured is the captured piece, or nil.
	Captured *chess.Piece

	Mover chess.Color
	Kind  MoveKind

	// Promotion is the new piece kind; only meaningful for PromotionMove.
	Promotion chess.Kind

	// Key identifies the position after the move.
	Key hashing.Key
}

// DoubleStep is the most recent two-square pawn advance.
type DoubleStep struct {
	PawnID  uuid.UUID
	Color   chess.Color
	Landing chess.Position
}

// MoveHistory is the append-only log of executed moves. It also holds the
// en-passant window, the halfmove clock and the repetition counts.
type MoveHistory struct {
	moves         []Move
	doubleStep    *DoubleStep
	halfmoveClock int
	startKey      hashing.Key
	repetitions   *hashing.RepetitionTracker
}

// NewMoveHistory creates an empty history whose start position is board.
func NewMoveHistory(board *chess.Board) *MoveHistory {
	h := &MoveHistory{
		repetitions: hashing.NewRepetitionTracker(),
	}
	h.startKey = hashing.PositionKey(board, board.CurrentPlayer(), hashing.NoEnPassant)
	h.repetitions.Add(h.startKey)
	return h
}

// Record appends a normal move. piece is the mover's state before the move
// and boardAfter the board once the move has been applied.
func (h *MoveHistory) Record(from, to chess.Position, piece chess.Piece, captured *chess.Piece, boardAfter *chess.Board) {
	h.RecordSpecial(from, to, piece, captured, NormalMove, 0, boardAfter)
}

// RecordSpecial appends a move of the given kind. promotion is only read
// for PromotionMove.
func (h *MoveHistory) RecordSpecial(from, to chess.Position, piece chess.Piece, captured *chess.Piece,
	kind MoveKind, promotion chess.Kind, boardAfter *chess.Board) {
	mover := piece.Color()

	// The window opens only on the pawn's own two-square advance
	h.doubleStep = nil
	if piece.Kind() == chess.Pawn && from.SameCol(to) && to.Row()-from.Row() == 2*mover.PawnDirection() {
		h.doubleStep = &DoubleStep{PawnID: piece.ID(), Color: mover, Landing: to}
	}

	if piece.Kind() == chess.Pawn || captured != nil {
		h.halfmoveClock = 0
	} else {
		h.halfmoveClock++
	}

	m := Move{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: captured,
		Mover:    mover,
		Kind:     kind,
		Key:      hashing.PositionKey(boardAfter, mover.Opposite(), h.openEnPassantCol(boardAfter)),
	}
	if kind == PromotionMove {
		m.Promotion = promotion
	}
	h.moves = append(h.moves, m)
	h.repetitions.Add(m.Key)
}

// openEnPassantCol returns the double-step column when an enemy pawn beside
// the landing square can legally capture en passant, otherwise
// hashing.NoEnPassant. A pinned capturer leaves the column closed.
func (h *MoveHistory) openEnPassantCol(board *chess.Board) int {
	if h.doubleStep == nil {
		return hashing.NoEnPassant
	}
	landing := h.doubleStep.Landing
	for _, dc := range []int{-1, 1} {
		side, ok := landing.Offset(0, dc)
		if !ok {
			continue
		}
		p := board.PieceAt(side)
		if p == nil || p.Kind() != chess.Pawn || p.Color() == h.doubleStep.Color {
			continue
		}
		target, ok := landing.Offset(p.Color().PawnDirection(), 0)
		if !ok {
			continue
		}
		if !board.WouldBeInCheckAfterEnPassant(side, target, landing, p.Color()) {
			return landing.Col()
		}
	}
	return hashing.NoEnPassant
}

// LastDoubleStep returns the en-passant window, if open.
func (h *MoveHistory) LastDoubleStep() (DoubleStep, bool) {
	if h.doubleStep == nil {
		return DoubleStep{}, false
	}
	return *h.doubleStep, true
}

// CanEnPassant reports whether a pawn on attacker may capture en passant by
// moving to target: a double step was just played, the attacker stands
// beside the landing square and target is the square behind it as seen
// from the attacker.
func (h *MoveHistory) CanEnPassant(attacker, target chess.Position) bool {
	ds := h.doubleStep
	if ds == nil {
		return false
	}
	if !attacker.SameRow(ds.Landing) || attacker.ColDistance(ds.Landing) != 1 {
		return false
	}
	dir := ds.Color.Opposite().PawnDirection()
	return target.Col() == ds.Landing.Col() && target.Row() == attacker.Row()+dir
}

// EnPassantVictim returns the square of the pawn an en-passant move to
// target would capture.
func (h *MoveHistory) EnPassantVictim(target chess.Position) (chess.Position, bool) {
	ds := h.doubleStep
	if ds == nil || target.Col() != ds.Landing.Col() {
		return chess.Position{}, false
	}
	return ds.Landing, true
}

// Moves returns a copy of the recorded moves.
func (h *MoveHistory) Moves() []Move {
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// MoveCount returns the number of recorded moves (plies).
func (h *MoveHistory) MoveCount() int {
	return len(h.moves)
}

// Last returns the most recent move.
func (h *MoveHistory) Last() (Move, bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	return h.moves[len(h.moves)-1], true
}

// HalfmoveClock returns the plies since the last capture or pawn move.
func (h *MoveHistory) HalfmoveClock() int {
	return h.halfmoveClock
}

// CurrentKey returns the key of the position after the last move.
func (h *MoveHistory) CurrentKey() hashing.Key {
	if m, ok := h.Last(); ok {
		return m.Key
	}
	return h.startKey
}

// RepetitionCount returns how often the current position has occurred,
// the start position included.
func (h *MoveHistory) RepetitionCount() int {
	return h.repetitions.Count(h.CurrentKey())
}

// IsRepetition reports whether the current position has occurred at least
// limit times.
func (h *MoveHistory) IsRepetition(limit int) bool {
	return h.repetitions.Reached(h.CurrentKey(), limit)
}

// IsThreefoldRepetition reports whether the current position has occurred
// three times.
func (h *MoveHistory) IsThreefoldRepetition() bool {
	return h.IsRepetition(3)
}
