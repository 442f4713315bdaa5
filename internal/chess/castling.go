package chess

// CastleSide names the wing a king castles towards.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns "O-O" or "O-O-O".
func (s CastleSide) String() string {
	if s == Kingside {
		return "O-O"
	}
	return "O-O-O"
}

// castleGeometry lists the columns a castle involves.
type castleGeometry struct {
	rookFrom int
	kingTo   int
	rookTo   int
	between  []int // must be empty
	transit  []int // must not be attacked, destination included
}

var castleTable = [2]castleGeometry{
	Kingside: {
		rookFrom: KingsideRookCol,
		kingTo:   KingsideKingCol,
		rookTo:   KingsideRookTo,
		between:  []int{5, 6},
		transit:  []int{5, 6},
	},
	Queenside: {
		rookFrom: QueensideRookCol,
		kingTo:   QueensideKingCol,
		rookTo:   QueensideRookTo,
		between:  []int{1, 2, 3},
		transit:  []int{3, 2},
	},
}

// CastleSquares returns the king and rook destinations for side on
// color's back rank, plus the rook's starting square.
func CastleSquares(color Color, side CastleSide) (kingTo, rookFrom, rookTo Position) {
	g := castleTable[side]
	row := color.BackRank()
	return Position{row: row, col: g.kingTo}, Position{row: row, col: g.rookFrom}, Position{row: row, col: g.rookTo}
}

// CanCastleKingside reports whether king may castle towards column 7.
func (b *Board) CanCastleKingside(king *Piece) bool {
	return b.CanCastle(king, Kingside)
}

// CanCastleQueenside reports whether king may castle towards column 0.
func (b *Board) CanCastleQueenside(king *Piece) bool {
	return b.CanCastle(king, Queenside)
}

// CanCastle checks castling eligibility: the king is unmoved on its home
// square and not in check, the rook is unmoved on its home square, the
// squares between them are empty and no square the king crosses or lands
// on is attacked.
func (b *Board) CanCastle(king *Piece, side CastleSide) bool {
	if king == nil || king.kind != King || king.hasMoved {
		return false
	}
	row := king.color.BackRank()
	home := Position{row: row, col: KingHomeCol}
	if b.PieceAt(home) != king {
		return false
	}
	if b.IsInCheck(king.color) {
		return false
	}

	g := castleTable[side]
	rook := b.squares[row][g.rookFrom]
	if rook == nil || rook.kind != Rook || rook.color != king.color || rook.hasMoved {
		return false
	}

	for _, c := range g.between {
		if b.squares[row][c] != nil {
			return false
		}
	}

	// Put the king on each transit square in turn
	for _, c := range g.transit {
		if b.WouldBeInCheckAfter(home, Position{row: row, col: c}, king.color) {
			return false
		}
	}
	return true
}

// IsPromotionMove reports whether the piece on from is a pawn that reaches
// its last row by moving to to under its raw rule.
func (b *Board) IsPromotionMove(from, to Position) bool {
	p := b.PieceAt(from)
	if p == nil || p.kind != Pawn {
		return false
	}
	last := p.color.PromotionRow()
	if to.row != last || from.row != last-p.color.PawnDirection() {
		return false
	}
	return canMoveFrom(b, p, from, to)
}
