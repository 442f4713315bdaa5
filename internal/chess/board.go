package chess

import (
	"strings"
)

// Board is the 8x8 grid, the side to move and the pieces captured so far.
// The board owns every piece placed on it.
type Board struct {
	squares  [BoardSize][BoardSize]*Piece
	current  Color
	captured []*Piece
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	return &Board{current: White}
}

var backRankOrder = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard creates a board with the initial setup. White occupies
// rows 0 and 1, Black rows 7 and 6.
func NewStandardBoard() *Board {
	b := NewBoard()
	for _, color := range []Color{White, Black} {
		back := color.BackRank()
		pawns := color.PawnStartRow()
		for col := 0; col < BoardSize; col++ {
			b.Place(Position{row: back, col: col}, NewPiece(backRankOrder[col], color, Position{}))
			b.Place(Position{row: pawns, col: col}, NewPiece(Pawn, color, Position{}))
		}
	}
	return b
}

// PieceAt returns the piece on pos, or nil for an empty or off-board square.
func (b *Board) PieceAt(pos Position) *Piece {
	if !pos.IsValid() {
		return nil
	}
	return b.squares[pos.row][pos.col]
}

// IsEmpty reports whether pos holds no piece.
func (b *Board) IsEmpty(pos Position) bool {
	return b.PieceAt(pos) == nil
}

// HasColor reports whether pos holds a piece of the given colour.
func (b *Board) HasColor(pos Position, color Color) bool {
	p := b.PieceAt(pos)
	return p != nil && p.color == color
}

// Place puts piece on pos, overwriting any occupant. A nil piece clears
// the square.
func (b *Board) Place(pos Position, piece *Piece) {
	if !pos.IsValid() {
		return
	}
	b.squares[pos.row][pos.col] = piece
	if piece != nil {
		piece.setPosition(pos)
	}
}

// Remove clears pos and returns its previous occupant.
func (b *Board) Remove(pos Position) *Piece {
	p := b.PieceAt(pos)
	if p != nil {
		b.squares[pos.row][pos.col] = nil
	}
	return p
}

// Capture appends piece to the captured list.
func (b *Board) Capture(piece *Piece) {
	if piece != nil {
		b.captured = append(b.captured, piece)
	}
}

// CurrentPlayer returns the side to move.
func (b *Board) CurrentPlayer() Color { return b.current }

// SwitchPlayer hands the move to the other side.
func (b *Board) SwitchPlayer() { b.current = b.current.Opposite() }

// SetCurrentPlayer sets the side to move. It is meant for setting up
// custom positions before play starts.
func (b *Board) SetCurrentPlayer(color Color) { b.current = color }

// ApplyPlainMove moves the piece on from to to when the square holds a
// piece of the side to move and its raw rule accepts the target. Any
// occupant of to is captured. The turn is not switched.
func (b *Board) ApplyPlainMove(from, to Position) bool {
	piece := b.PieceAt(from)
	if piece == nil || piece.color != b.current {
		return false
	}
	if !canMoveFrom(b, piece, from, to) {
		return false
	}

	if victim := b.Remove(to); victim != nil {
		b.Capture(victim)
	}
	b.relocate(from, to)
	return true
}

// relocate moves whatever stands on from to to and marks it moved. The
// destination must already be clear of anything worth keeping.
func (b *Board) relocate(from, to Position) *Piece {
	piece := b.Remove(from)
	if piece == nil {
		return nil
	}
	b.Place(to, piece)
	piece.MarkMoved()
	return piece
}

// Relocate moves the piece on from to to without rule checks, marking it
// moved. Special moves use it after their own validation.
func (b *Board) Relocate(from, to Position) *Piece {
	return b.relocate(from, to)
}

// FindKing returns the position of color's king.
func (b *Board) FindKing(color Color) (Position, bool) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := b.squares[r][c]
			if p != nil && p.kind == King && p.color == color {
				return Position{row: r, col: c}, true
			}
		}
	}
	return Position{}, false
}

// IsInCheck reports whether color's king is attacked. A board without
// that king is never in check.
func (b *Board) IsInCheck(color Color) bool {
	kingPos, ok := b.FindKing(color)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(kingPos, color.Opposite())
}

// IsSquareAttacked reports whether any piece of colour by attacks pos.
// Pawns attack diagonally forward whether or not pos is occupied.
func (b *Board) IsSquareAttacked(pos Position, by Color) bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := b.squares[r][c]
			if p == nil || p.color != by {
				continue
			}
			from := Position{row: r, col: c}
			if p.kind == Pawn {
				if pos.row-r == by.PawnDirection() && from.ColDistance(pos) == 1 {
					return true
				}
				continue
			}
			if canMoveFrom(b, p, from, pos) {
				return true
			}
		}
	}
	return false
}

// WouldBeInCheckAfter reports whether color's king would be in check once
// the piece on from stood on to. The test runs on a copy of the grid; the
// receiver and its pieces are left untouched.
func (b *Board) WouldBeInCheckAfter(from, to Position, color Color) bool {
	sim := b.shadow()
	sim.squares[to.row][to.col] = sim.squares[from.row][from.col]
	sim.squares[from.row][from.col] = nil
	return sim.IsInCheck(color)
}

// WouldBeInCheckAfterEnPassant is WouldBeInCheckAfter with the captured
// pawn on victim also removed.
func (b *Board) WouldBeInCheckAfterEnPassant(from, to, victim Position, color Color) bool {
	sim := b.shadow()
	sim.squares[to.row][to.col] = sim.squares[from.row][from.col]
	sim.squares[from.row][from.col] = nil
	sim.squares[victim.row][victim.col] = nil
	return sim.IsInCheck(color)
}

// shadow returns a board sharing the receiver's pieces over a copied grid.
func (b *Board) shadow() *Board {
	return &Board{squares: b.squares, current: b.current}
}

// Pieces returns color's pieces in row-major order.
func (b *Board) Pieces(color Color) []*Piece {
	var out []*Piece
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if p := b.squares[r][c]; p != nil && p.color == color {
				out = append(out, p)
			}
		}
	}
	return out
}

// CapturedPieces returns the captured pieces in capture order.
func (b *Board) CapturedPieces() []*Piece {
	out := make([]*Piece, len(b.captured))
	copy(out, b.captured)
	return out
}

// Clone returns a deep copy. Pieces keep their identities.
func (b *Board) Clone() *Board {
	nb := &Board{current: b.current}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if p := b.squares[r][c]; p != nil {
				nb.squares[r][c] = p.clone()
			}
		}
	}
	if len(b.captured) > 0 {
		nb.captured = make([]*Piece, len(b.captured))
		for i, p := range b.captured {
			nb.captured[i] = p.clone()
		}
	}
	return nb
}

// SquareView describes one square for presentation.
type SquareView struct {
	Occupied bool
	Kind     Kind
	Color    Color
	Symbol   byte
}

// Snapshot is a read-only view of the grid, indexed [row][col].
type Snapshot [BoardSize][BoardSize]SquareView

// Render returns a snapshot of the grid.
func (b *Board) Render() Snapshot {
	var s Snapshot
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if p := b.squares[r][c]; p != nil {
				s[r][c] = SquareView{Occupied: true, Kind: p.kind, Color: p.color, Symbol: p.Symbol()}
			}
		}
	}
	return s
}

// String renders the board with coordinates and '.' for empty squares.
func (b *Board) String() string {
	return b.Format(true, '.')
}

// Format renders the board one row per line, row 0 first. With coords set
// each line is prefixed by its rank and a file line closes the diagram.
func (b *Board) Format(coords bool, empty byte) string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		if coords {
			sb.WriteByte(byte(RankBase + BoardSize - 1 - r))
			sb.WriteByte(' ')
		}
		for c := 0; c < BoardSize; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if p := b.squares[r][c]; p != nil {
				sb.WriteByte(p.Symbol())
			} else {
				sb.WriteByte(empty)
			}
		}
		sb.WriteByte('\n')
	}
	if coords {
		sb.WriteString("  ")
		for c := 0; c < BoardSize; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(ColBase + c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
