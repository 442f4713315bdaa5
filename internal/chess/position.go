package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Position is a square on the board. Row 0 is White's back rank; column 0
// is the a-file. The zero value is the square (0, 0).
type Position struct {
	row int
	col int
}

// NewPosition returns the square at row, col. Out-of-range coordinates
// fail with ErrInvalidPosition.
func NewPosition(row, col int) (Position, error) {
	if !IsValidCoord(row, col) {
		return Position{}, fmt.Errorf("(%d, %d): %w", row, col, errors.ErrInvalidPosition)
	}
	return Position{row: row, col: col}, nil
}

// MustPosition is like NewPosition but panics on invalid coordinates.
// It is intended for constant tables and tests.
func MustPosition(row, col int) Position {
	p, err := NewPosition(row, col)
	if err != nil {
		panic(err)
	}
	return p
}

// IsValidCoord reports whether row, col lies on the 8x8 board.
func IsValidCoord(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Row returns the row (0-7).
func (p Position) Row() int { return p.row }

// Col returns the column (0-7).
func (p Position) Col() int { return p.col }

// IsValid reports whether the position lies on the board.
func (p Position) IsValid() bool {
	return IsValidCoord(p.row, p.col)
}

// RowDistance returns the absolute row difference to other.
func (p Position) RowDistance(other Position) int {
	return abs(p.row - other.row)
}

// ColDistance returns the absolute column difference to other.
func (p Position) ColDistance(other Position) int {
	return abs(p.col - other.col)
}

// SameRow reports whether both squares share a row.
func (p Position) SameRow(other Position) bool {
	return p.row == other.row
}

// SameCol reports whether both squares share a column.
func (p Position) SameCol(other Position) bool {
	return p.col == other.col
}

// SameDiagonal reports whether both squares lie on a common diagonal.
func (p Position) SameDiagonal(other Position) bool {
	return p.RowDistance(other) == p.ColDistance(other)
}

// Offset returns the square dr rows and dc columns away. The second result
// is false when that square is off the board; offsets never wrap.
func (p Position) Offset(dr, dc int) (Position, bool) {
	r, c := p.row+dr, p.col+dc
	if !IsValidCoord(r, c) {
		return Position{}, false
	}
	return Position{row: r, col: c}, true
}

// Index returns row*8+col, a dense key in [0, 64).
func (p Position) Index() int {
	return p.row*BoardSize + p.col
}

// String returns the coordinate form "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.row, p.col)
}

// Algebraic returns the square name. Column c is file 'a'+c and row r is
// rank 8-r, so (7, 0) is "a1" and (0, 7) is "h8".
func (p Position) Algebraic() string {
	return string([]byte{byte(ColBase + p.col), byte(RankBase + BoardSize - 1 - p.row)})
}

// FromAlgebraic parses a square name produced by Algebraic.
func FromAlgebraic(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidPosition)
	}
	file, rank := s[0], s[1]
	if file < ColBase || file >= ColBase+BoardSize || rank < RankBase || rank >= RankBase+BoardSize {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidPosition)
	}
	return NewPosition(BoardSize-1-int(rank-RankBase), int(file-ColBase))
}

// AllPositions returns the 64 squares in row-major order.
func AllPositions() []Position {
	out := make([]Position, 0, BoardSize*BoardSize)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			out = append(out, Position{row: r, col: c})
		}
	}
	return out
}

// Equal reports whether both values name the same square.
func (p Position) Equal(other Position) bool {
	return p == other
}
