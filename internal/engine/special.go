package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Outcome describes an executed special move.
type Outcome struct {
	Kind MoveKind

	// Piece is the piece standing on the destination afterwards; for a
	// promotion it is the new piece.
	Piece *chess.Piece

	// Captured is the removed piece, or nil.
	Captured *chess.Piece

	// Promotion is the kind promoted to.
	Promotion chess.Kind
}

// SpecialMovesHandler recognises, validates and executes castling, en
// passant and promotion.
type SpecialMovesHandler struct {
	board            *chess.Board
	history          *MoveHistory
	defaultPromotion chess.Kind
}

// NewSpecialMovesHandler creates a handler over the shared board and
// history. An invalid defaultPromotion falls back to Queen.
func NewSpecialMovesHandler(board *chess.Board, history *MoveHistory, defaultPromotion chess.Kind) *SpecialMovesHandler {
	if !defaultPromotion.IsPromotionTarget() {
		defaultPromotion = chess.Queen
	}
	return &SpecialMovesHandler{
		board:            board,
		history:          history,
		defaultPromotion: defaultPromotion,
	}
}

// Classify returns the shape of the move without judging its legality.
func (s *SpecialMovesHandler) Classify(from, to chess.Position) MoveKind {
	piece := s.board.PieceAt(from)
	if piece == nil {
		return NormalMove
	}

	switch piece.Kind() {
	case chess.King:
		if from.SameRow(to) && from.ColDistance(to) == 2 {
			return CastlingMove
		}
	case chess.Pawn:
		if s.isEnPassantShape(piece, from, to) {
			return EnPassantMove
		}
		if s.board.IsPromotionMove(from, to) {
			return PromotionMove
		}
	}
	return NormalMove
}

// isEnPassantShape matches a diagonal pawn step onto an empty square that
// the double-step window allows.
func (s *SpecialMovesHandler) isEnPassantShape(pawn *chess.Piece, from, to chess.Position) bool {
	if to.Row()-from.Row() != pawn.Color().PawnDirection() || from.ColDistance(to) != 1 {
		return false
	}
	return s.board.IsEmpty(to) && s.history.CanEnPassant(from, to)
}

// IsSpecialMove reports whether the move has a special shape.
func (s *SpecialMovesHandler) IsSpecialMove(from, to chess.Position) bool {
	return s.Classify(from, to) != NormalMove
}

// IsValidSpecialMove reports whether a special-shaped move is legal for
// the side to move. Normal moves are never valid here.
func (s *SpecialMovesHandler) IsValidSpecialMove(from, to chess.Position) bool {
	piece := s.board.PieceAt(from)
	if piece == nil || piece.Color() != s.board.CurrentPlayer() {
		return false
	}

	switch s.Classify(from, to) {
	case CastlingMove:
		return s.board.CanCastle(piece, castleSide(from, to))

	case EnPassantMove:
		victim, ok := s.enPassantVictim(piece, to)
		if !ok {
			return false
		}
		return !s.board.WouldBeInCheckAfterEnPassant(from, to, victim, piece.Color())

	case PromotionMove:
		return chess.CanMove(s.board, piece, to) && !s.board.WouldBeInCheckAfter(from, to, piece.Color())
	}
	return false
}

// enPassantVictim returns the square of the pawn that double-stepped, as
// long as that same pawn is still standing there.
func (s *SpecialMovesHandler) enPassantVictim(attacker *chess.Piece, to chess.Position) (chess.Position, bool) {
	ds, ok := s.history.LastDoubleStep()
	if !ok || ds.Color == attacker.Color() {
		return chess.Position{}, false
	}
	pos, ok := s.history.EnPassantVictim(to)
	if !ok {
		return chess.Position{}, false
	}
	victim := s.board.PieceAt(pos)
	if victim == nil || victim.ID() != ds.PawnID {
		return chess.Position{}, false
	}
	return pos, true
}

func castleSide(from, to chess.Position) chess.CastleSide {
	if to.Col() > from.Col() {
		return chess.Kingside
	}
	return chess.Queenside
}

// Execute validates and performs a special move. choice selects the
// promotion piece; nil or an invalid kind uses the default.
func (s *SpecialMovesHandler) Execute(from, to chess.Position, choice *chess.Kind) (Outcome, bool) {
	if !s.IsValidSpecialMove(from, to) {
		return Outcome{}, false
	}

	switch kind := s.Classify(from, to); kind {
	case CastlingMove:
		color := s.board.PieceAt(from).Color()
		kingTo, rookFrom, rookTo := chess.CastleSquares(color, castleSide(from, to))
		king := s.board.Relocate(from, kingTo)
		s.board.Relocate(rookFrom, rookTo)
		return Outcome{Kind: kind, Piece: king}, true

	case EnPassantMove:
		victimPos, _ := s.enPassantVictim(s.board.PieceAt(from), to)
		pawn := s.board.Relocate(from, to)
		victim := s.board.Remove(victimPos)
		s.board.Capture(victim)
		return Outcome{Kind: kind, Piece: pawn, Captured: victim}, true

	case PromotionMove:
		promoted := s.PromotionKind(choice)
		captured := s.board.Remove(to)
		s.board.Capture(captured)
		pawn := s.board.Remove(from)

		piece := chess.NewPiece(promoted, pawn.Color(), to)
		piece.MarkMoved()
		s.board.Place(to, piece)
		return Outcome{Kind: kind, Piece: piece, Captured: captured, Promotion: promoted}, true
	}
	return Outcome{}, false
}

// PromotionKind resolves a promotion choice against the default.
func (s *SpecialMovesHandler) PromotionKind(choice *chess.Kind) chess.Kind {
	if choice == nil || !choice.IsPromotionTarget() {
		return s.defaultPromotion
	}
	return *choice
}

// SpecialMoves lists the legal castling and en-passant destinations of the
// piece on pos.
func (s *SpecialMovesHandler) SpecialMoves(pos chess.Position) []chess.Position {
	piece := s.board.PieceAt(pos)
	if piece == nil || piece.Color() != s.board.CurrentPlayer() {
		return nil
	}

	var out []chess.Position
	switch piece.Kind() {
	case chess.King:
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			kingTo, _, _ := chess.CastleSquares(piece.Color(), side)
			if pos.SameRow(kingTo) && pos.ColDistance(kingTo) == 2 && s.IsValidSpecialMove(pos, kingTo) {
				out = append(out, kingTo)
			}
		}

	case chess.Pawn:
		ds, ok := s.history.LastDoubleStep()
		if !ok {
			break
		}
		target, err := chess.NewPosition(pos.Row()+piece.Color().PawnDirection(), ds.Landing.Col())
		if err == nil && s.Classify(pos, target) == EnPassantMove && s.IsValidSpecialMove(pos, target) {
			out = append(out, target)
		}
	}
	return out
}
