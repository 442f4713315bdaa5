// Package chess provides core chess types and operations.
package chess

import "strings"

// Color represents the colour of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black (row delta of a pawn push).
func (c Color) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnStartRow returns the row the colour's pawns start on.
func (c Color) PawnStartRow() int {
	if c == White {
		return 1
	}
	return 6
}

// BackRank returns the row the colour's pieces start on.
func (c Color) BackRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PromotionRow returns the row on which the colour's pawns promote.
func (c Color) PromotionRow() int {
	return c.Opposite().BackRank()
}

// Kind represents a chess piece type.
type Kind int

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumKinds
)

var kindNames = [...]string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Symbol returns the single letter representation of a kind (uppercase).
func (k Kind) Symbol() byte {
	letters := []byte{'K', 'Q', 'R', 'B', 'N', 'P'}
	if k >= 0 && k < NumKinds {
		return letters[k]
	}
	return '?'
}

// Value returns the material value of the kind. The king is not counted.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// IsPromotionTarget reports whether a pawn may promote to this kind.
func (k Kind) IsPromotionTarget() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// IsSlider reports whether the kind moves along rays.
func (k Kind) IsSlider() bool {
	return k == Queen || k == Rook || k == Bishop
}

// ParseKind converts a letter ("n", "Q") or a name ("knight") into a Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		switch strings.ToUpper(s)[0] {
		case 'K':
			return King, true
		case 'Q':
			return Queen, true
		case 'R':
			return Rook, true
		case 'B':
			return Bishop, true
		case 'N':
			return Knight, true
		case 'P':
			return Pawn, true
		}
		return 0, false
	}
	for k := King; k < NumKinds; k++ {
		if strings.EqualFold(s, kindNames[k]) {
			return k, true
		}
	}
	return 0, false
}

// Board dimensions.
const (
	BoardSize = 8

	ColBase  = 'a'
	RankBase = '1'

	// Columns of the pieces involved in castling.
	KingHomeCol      = 4
	KingsideRookCol  = 7
	QueensideRookCol = 0
	KingsideKingCol  = 6
	KingsideRookTo   = 5
	QueensideKingCol = 2
	QueensideRookTo  = 3
)

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
