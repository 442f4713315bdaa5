package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Key is a Zobrist hash of a position: piece placement, side to move,
// castling rights and the en-passant file.
type Key uint64

// NoEnPassant is passed to PositionKey when no en-passant capture is open.
const NoEnPassant = -1

// Castling right bits.
const (
	whiteKingside = 1 << iota
	whiteQueenside
	blackKingside
	blackQueenside
)

var (
	zobristPiece      [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	zobristEnPassant  [chess.BoardSize]uint64
	zobristCastling   [16]uint64
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// prng is a xorshift64* generator; a fixed seed keeps keys stable across runs.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x6C62272E07BB0142}

	for c := range zobristPiece {
		for k := range zobristPiece[c] {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// PositionKey hashes the board with toMove as the side to move. epCol is
// the column of an open en-passant capture, or NoEnPassant.
func PositionKey(b *chess.Board, toMove chess.Color, epCol int) Key {
	var h uint64

	for _, pos := range chess.AllPositions() {
		if p := b.PieceAt(pos); p != nil {
			h ^= zobristPiece[p.Color()][p.Kind()][pos.Index()]
		}
	}

	if toMove == chess.Black {
		h ^= zobristSideToMove
	}

	h ^= zobristCastling[CastlingRights(b)]

	if epCol >= 0 && epCol < chess.BoardSize {
		h ^= zobristEnPassant[epCol]
	}

	return Key(h)
}

// CastlingRights derives the castling rights bitmask from the board: a
// right survives while the king and that rook are unmoved on their home
// squares. Whether castling is playable right now does not matter.
func CastlingRights(b *chess.Board) int {
	rights := 0
	for _, color := range []chess.Color{chess.White, chess.Black} {
		row := color.BackRank()
		king := b.PieceAt(chess.MustPosition(row, chess.KingHomeCol))
		if !unmovedOf(king, chess.King, color) {
			continue
		}

		ks, qs := whiteKingside, whiteQueenside
		if color == chess.Black {
			ks, qs = blackKingside, blackQueenside
		}
		if unmovedOf(b.PieceAt(chess.MustPosition(row, chess.KingsideRookCol)), chess.Rook, color) {
			rights |= ks
		}
		if unmovedOf(b.PieceAt(chess.MustPosition(row, chess.QueensideRookCol)), chess.Rook, color) {
			rights |= qs
		}
	}
	return rights
}

func unmovedOf(p *chess.Piece, kind chess.Kind, color chess.Color) bool {
	return p != nil && p.Kind() == kind && p.Color() == color && !p.HasMoved()
}
