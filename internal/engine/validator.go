package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MovePair is a (from, to) move candidate.
type MovePair struct {
	From, To chess.Position
}

// MoveValidator answers whether a move is legal for the side to move and
// enumerates legal moves. It never mutates the board.
type MoveValidator struct {
	board   *chess.Board
	history *MoveHistory
	special *SpecialMovesHandler
}

// NewMoveValidator creates a validator over the shared board and history.
func NewMoveValidator(board *chess.Board, history *MoveHistory, special *SpecialMovesHandler) *MoveValidator {
	return &MoveValidator{
		board:   board,
		history: history,
		special: special,
	}
}

// IsValidMove reports whether moving the piece on from to to is legal.
func (v *MoveValidator) IsValidMove(from, to chess.Position) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}

	piece := v.board.PieceAt(from)
	if piece == nil || piece.Color() != v.board.CurrentPlayer() {
		return false
	}
	if v.board.HasColor(to, piece.Color()) {
		return false
	}

	// Castling and en passant fall outside the raw rule, so their shapes
	// are recognised first.
	kind := v.special.Classify(from, to)
	if kind == CastlingMove || kind == EnPassantMove {
		return v.special.IsValidSpecialMove(from, to)
	}

	if !chess.CanMove(v.board, piece, to) {
		return false
	}
	if kind == PromotionMove {
		return v.special.IsValidSpecialMove(from, to)
	}

	return !v.board.WouldBeInCheckAfter(from, to, piece.Color())
}

// ValidMoves returns the legal destinations of the piece on pos. Pieces
// of the side not to move have none.
func (v *MoveValidator) ValidMoves(pos chess.Position) []chess.Position {
	piece := v.board.PieceAt(pos)
	if piece == nil || piece.Color() != v.board.CurrentPlayer() {
		return nil
	}

	var out []chess.Position
	seen := make(map[chess.Position]bool)
	for _, to := range chess.Candidates(v.board, piece) {
		if !seen[to] && v.IsValidMove(pos, to) {
			seen[to] = true
			out = append(out, to)
		}
	}
	for _, to := range v.special.SpecialMoves(pos) {
		if !seen[to] {
			seen[to] = true
			out = append(out, to)
		}
	}
	return out
}

// AllValidMoves returns every legal move of color, piece by piece in
// row-major order.
func (v *MoveValidator) AllValidMoves(color chess.Color) []MovePair {
	if color != v.board.CurrentPlayer() {
		return nil
	}

	var out []MovePair
	for _, piece := range v.board.Pieces(color) {
		from := piece.Position()
		for _, to := range v.ValidMoves(from) {
			out = append(out, MovePair{From: from, To: to})
		}
	}
	return out
}

// HasValidMoves reports whether color has at least one legal move.
func (v *MoveValidator) HasValidMoves(color chess.Color) bool {
	if color != v.board.CurrentPlayer() {
		return false
	}

	for _, piece := range v.board.Pieces(color) {
		from := piece.Position()
		for _, to := range chess.Candidates(v.board, piece) {
			if v.IsValidMove(from, to) {
				return true
			}
		}
		if len(v.special.SpecialMoves(from)) > 0 {
			return true
		}
	}
	return false
}
