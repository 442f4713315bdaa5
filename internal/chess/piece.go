package chess

import (
	"strings"

	"github.com/google/uuid"
)

// Piece is a chess piece on (or captured from) a board. Pieces are
// identified by ID for the lifetime of a game; value copies taken with
// Snapshot keep that ID after the piece leaves the board.
type Piece struct {
	id       uuid.UUID
	kind     Kind
	color    Color
	position Position
	hasMoved bool
}

// NewPiece creates an unmoved piece with a fresh identity.
func NewPiece(kind Kind, color Color, pos Position) *Piece {
	return &Piece{
		id:       uuid.New(),
		kind:     kind,
		color:    color,
		position: pos,
	}
}

// ID returns the piece's identity.
func (p *Piece) ID() uuid.UUID { return p.id }

// Kind returns the piece type.
func (p *Piece) Kind() Kind { return p.kind }

// Color returns the piece colour.
func (p *Piece) Color() Color { return p.color }

// Position returns the square the piece was last placed on.
func (p *Piece) Position() Position { return p.position }

// HasMoved reports whether the piece has been relocated by any move.
func (p *Piece) HasMoved() bool { return p.hasMoved }

// MarkMoved records that the piece has moved. The flag is never reset.
func (p *Piece) MarkMoved() { p.hasMoved = true }

// Value returns the material value of the piece.
func (p *Piece) Value() int { return p.kind.Value() }

// Snapshot returns a value copy of the piece.
func (p *Piece) Snapshot() Piece { return *p }

// Is reports whether p and other are the same piece.
func (p *Piece) Is(other *Piece) bool {
	return p != nil && other != nil && p.id == other.id
}

// SameColor reports whether both pieces belong to the same side.
func (p *Piece) SameColor(other *Piece) bool {
	return other != nil && p.color == other.color
}

// Symbol returns the kind letter, uppercase for White and lowercase for Black.
func (p *Piece) Symbol() byte {
	s := p.kind.Symbol()
	if p.color == Black {
		return s + ('a' - 'A')
	}
	return s
}

// FullName returns e.g. "White Knight".
func (p *Piece) FullName() string {
	return p.color.String() + " " + p.kind.String()
}

// String returns e.g. "White Knight on c1".
func (p *Piece) String() string {
	var sb strings.Builder
	sb.WriteString(p.FullName())
	sb.WriteString(" on ")
	sb.WriteString(p.position.Algebraic())
	return sb.String()
}

// Equal reports whether p and other describe the same piece in the same
// state. Two nil pieces are equal.
func (p *Piece) Equal(other *Piece) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

// IsOnPromotionRank reports whether a pawn stands on its colour's last row.
func (p *Piece) IsOnPromotionRank() bool {
	return p.kind == Pawn && p.position.row == p.color.PromotionRow()
}

// setPosition updates the cached square; only Board calls it.
func (p *Piece) setPosition(pos Position) { p.position = pos }

// clone returns a copy with the same identity.
func (p *Piece) clone() *Piece {
	c := *p
	return &c
}
