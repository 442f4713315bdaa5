package chess_test

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestCandidatesPawn(t *testing.T) {
	b := chess.NewStandardBoard()
	pawn := b.PieceAt(pos(1, 4))

	got := chess.Candidates(b, pawn)
	testutil.AssertPositions(t, got, []chess.Position{pos(2, 4), pos(3, 4)})

	testutil.AssertTrue(t, b.ApplyPlainMove(pos(1, 4), pos(2, 4)))
	got = chess.Candidates(b, pawn)
	testutil.AssertEqual(t, got, []chess.Position{pos(3, 4)}, "moved pawn may not double-step")
}

func TestCandidatesPawnCaptures(t *testing.T) {
	tests := []struct {
		name string
		row4 string
		want []chess.Position
	}{
		{"push and enemy diagonal, own knight on the other", "..N.p...", []chess.Position{pos(4, 3), pos(4, 4)}},
		{"blocked ahead, own knight and empty diagonal", "..Np....", nil},
		{"blocked ahead, enemy on one diagonal", "..Nnp...", []chess.Position{pos(4, 4)}},
		{"enemies on both diagonals", "..p.p...", []chess.Position{pos(4, 2), pos(4, 3), pos(4, 4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t,
				"K.......",
				"........",
				"........",
				"...P....",
				tt.row4,
				"........",
				"........",
				"k.......",
			)
			testutil.AssertPositions(t, chess.Candidates(b, b.PieceAt(pos(3, 3))), tt.want)
		})
	}
}

func TestCandidatesPawnDoubleStepBlocked(t *testing.T) {
	b := testutil.MustBoard(t,
		"K.......",
		"P.P.....",
		"n.......",
		"..n.....",
		"........",
		"........",
		"........",
		"k.......",
	)

	testutil.AssertEqual(t, len(chess.Candidates(b, b.PieceAt(pos(1, 0)))), 0, "intermediate square occupied")
	testutil.AssertEqual(t, chess.Candidates(b, b.PieceAt(pos(1, 2))), []chess.Position{pos(2, 2)}, "destination occupied")
}

func TestCandidatesKnight(t *testing.T) {
	b := chess.NewStandardBoard()
	got := chess.Candidates(b, b.PieceAt(pos(0, 1)))
	testutil.AssertPositions(t, got, []chess.Position{pos(2, 0), pos(2, 2)})
}

func TestCandidatesRook(t *testing.T) {
	b := testutil.MustBoard(t,
		"........",
		"........",
		"........",
		"...R.P..",
		"........",
		"...p....",
		"........",
		"K.....k.",
	)
	rook := b.PieceAt(pos(3, 3))

	want := []chess.Position{
		pos(2, 3), pos(1, 3), pos(0, 3),
		pos(4, 3), pos(5, 3),
		pos(3, 2), pos(3, 1), pos(3, 0),
		pos(3, 4),
	}
	testutil.AssertPositions(t, chess.Candidates(b, rook), want)
}

func TestCandidatesQueenAndBishop(t *testing.T) {
	b := testutil.MustBoard(t,
		"K.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"Q......k",
	)

	testutil.AssertEqual(t, len(chess.Candidates(b, b.PieceAt(pos(7, 0)))), 6+7+7)

	b.Remove(pos(7, 0))
	bishop := chess.NewPiece(chess.Bishop, chess.White, pos(3, 3))
	b.Place(pos(3, 3), bishop)
	testutil.AssertEqual(t, len(chess.Candidates(b, bishop)), 12)
}

func TestCandidatesKing(t *testing.T) {
	b := testutil.MustBoard(t,
		"........",
		"........",
		"........",
		"...K....",
		"........",
		"........",
		"........",
		"k.......",
	)
	testutil.AssertEqual(t, len(chess.Candidates(b, b.PieceAt(pos(3, 3)))), 8)

	corner := testutil.MustBoard(t,
		"K.......",
		"P.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"k.......",
	)
	testutil.AssertPositions(t, chess.Candidates(corner, corner.PieceAt(pos(0, 0))),
		[]chess.Position{pos(0, 1), pos(1, 1)})
}

func TestCanMoveMatchesCandidates(t *testing.T) {
	b := chess.NewStandardBoard()
	b.ApplyPlainMove(pos(1, 4), pos(3, 4))
	b.ApplyPlainMove(pos(0, 6), pos(2, 5))

	for _, piece := range append(b.Pieces(chess.White), b.Pieces(chess.Black)...) {
		cands := testutil.PositionSet(chess.Candidates(b, piece))
		for _, target := range chess.AllPositions() {
			if got := chess.CanMove(b, piece, target); got != cands[target] {
				t.Errorf("CanMove(%v, %v) = %v, candidate = %v", piece, target, got, cands[target])
			}
		}
	}
}

func TestCanMoveRejections(t *testing.T) {
	b := chess.NewStandardBoard()
	rook := b.PieceAt(pos(0, 0))

	testutil.AssertFalse(t, chess.CanMove(b, rook, pos(0, 0)), "own square")
	testutil.AssertFalse(t, chess.CanMove(b, rook, pos(1, 0)), "own piece")
	testutil.AssertFalse(t, chess.CanMove(b, rook, pos(4, 0)), "blocked path")
	testutil.AssertFalse(t, chess.CanMove(b, nil, pos(4, 0)), "nil piece")

	king := b.PieceAt(pos(0, 4))
	b.Remove(pos(0, 5))
	b.Remove(pos(0, 6))
	testutil.AssertFalse(t, chess.CanMove(b, king, pos(0, 6)), "castling is not a raw king move")
}
