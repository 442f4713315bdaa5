// Package testutil provides shared test utilities for the chessrules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// BoardFromRows builds a board from eight text rows, row 0 first. Each row
// holds eight squares: a piece letter (upper case White, lower case Black)
// or '.' for empty. Spaces are ignored. Pawns placed off their start row
// are marked as moved; every other piece starts unmoved. White is to move.
func BoardFromRows(rows ...string) (*chess.Board, error) {
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("got %d rows, want %d", len(rows), chess.BoardSize)
	}

	b := chess.NewBoard()
	for r, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != chess.BoardSize {
			return nil, fmt.Errorf("row %d: %q has %d squares, want %d", r, line, len(line), chess.BoardSize)
		}
		for c := 0; c < chess.BoardSize; c++ {
			ch := line[c]
			if ch == '.' {
				continue
			}
			kind, ok := chess.ParseKind(string(ch))
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown piece %q", r, c, ch)
			}
			color := chess.White
			if ch >= 'a' && ch <= 'z' {
				color = chess.Black
			}
			pos := chess.MustPosition(r, c)
			piece := chess.NewPiece(kind, color, pos)
			if kind == chess.Pawn && r != color.PawnStartRow() {
				piece.MarkMoved()
			}
			b.Place(pos, piece)
		}
	}
	return b, nil
}

// MustBoard is BoardFromRows for test setup; it calls t.Fatal on error.
func MustBoard(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	b, err := BoardFromRows(rows...)
	if err != nil {
		t.Fatalf("BoardFromRows() error: %v", err)
	}
	return b
}

// Pos is shorthand for chess.MustPosition.
func Pos(row, col int) chess.Position {
	return chess.MustPosition(row, col)
}
