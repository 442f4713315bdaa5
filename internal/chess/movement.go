package chess

// offset is a (row, column) step.
type offset struct {
	dr, dc int
}

var (
	diagonalDirs = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs    = append(append([]offset{}, diagonalDirs...), straightDirs...)
	knightMoves  = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingMoves    = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// CanMove reports whether piece may move to target by its raw movement
// rule: geometry, path blocking and same-colour occupancy are checked, but
// not whether the move exposes the mover's own king. Castling is never a
// raw king move.
func CanMove(b *Board, piece *Piece, target Position) bool {
	if piece == nil {
		return false
	}
	return canMoveFrom(b, piece, piece.position, target)
}

// canMoveFrom evaluates the raw rule for piece standing on from. The grid,
// not the piece's cached position, is authoritative during simulations.
func canMoveFrom(b *Board, piece *Piece, from, target Position) bool {
	if !target.IsValid() || from == target {
		return false
	}
	occupant := b.PieceAt(target)
	if occupant != nil && occupant.color == piece.color {
		return false
	}

	rowDiff := target.row - from.row
	colDist := from.ColDistance(target)
	rowDist := abs(rowDiff)

	switch piece.kind {
	case Knight:
		return (colDist == 1 && rowDist == 2) || (colDist == 2 && rowDist == 1)

	case King:
		return colDist <= 1 && rowDist <= 1

	case Bishop:
		return from.SameDiagonal(target) && b.isPathClear(from, target)

	case Rook:
		return (from.SameRow(target) || from.SameCol(target)) && b.isPathClear(from, target)

	case Queen:
		if from.SameDiagonal(target) || from.SameRow(target) || from.SameCol(target) {
			return b.isPathClear(from, target)
		}
		return false

	case Pawn:
		return canPawnMove(b, piece, from, target, occupant, rowDiff, colDist)
	}

	return false
}

// canPawnMove evaluates the three independent pawn sub-rules.
func canPawnMove(b *Board, piece *Piece, from, target Position, occupant *Piece, rowDiff, colDist int) bool {
	dir := piece.color.PawnDirection()

	// Single push
	if colDist == 0 && rowDiff == dir {
		return occupant == nil
	}

	// Double push from an unmoved pawn
	if colDist == 0 && rowDiff == 2*dir && !piece.hasMoved {
		mid, ok := from.Offset(dir, 0)
		return ok && occupant == nil && b.PieceAt(mid) == nil
	}

	// Diagonal capture
	if colDist == 1 && rowDiff == dir {
		return occupant != nil && occupant.color != piece.color
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. The squares must share a row, column or diagonal.
func (b *Board) isPathClear(from, to Position) bool {
	dr := sign(to.row - from.row)
	dc := sign(to.col - from.col)

	r, c := from.row+dr, from.col+dc
	for r != to.row || c != to.col {
		if b.squares[r][c] != nil {
			return false
		}
		r += dr
		c += dc
	}
	return true
}

// Candidates returns every square the piece may reach by its raw movement
// rule, in a fixed order per kind.
func Candidates(b *Board, piece *Piece) []Position {
	if piece == nil {
		return nil
	}
	from := piece.position

	switch piece.kind {
	case Bishop:
		return b.slide(piece, from, diagonalDirs)
	case Rook:
		return b.slide(piece, from, straightDirs)
	case Queen:
		return b.slide(piece, from, queenDirs)
	case Knight:
		return b.step(piece, from, knightMoves)
	case King:
		return b.step(piece, from, kingMoves)
	case Pawn:
		return b.pawnCandidates(piece, from)
	}
	return nil
}

// slide walks each direction until the first occupied square, which is
// included only when it holds an enemy piece.
func (b *Board) slide(piece *Piece, from Position, dirs []offset) []Position {
	var out []Position
	for _, d := range dirs {
		pos, ok := from.Offset(d.dr, d.dc)
		for ok {
			occupant := b.PieceAt(pos)
			if occupant != nil {
				if occupant.color != piece.color {
					out = append(out, pos)
				}
				break // Blocked
			}
			out = append(out, pos)
			pos, ok = pos.Offset(d.dr, d.dc)
		}
	}
	return out
}

// step checks a fixed set of offsets.
func (b *Board) step(piece *Piece, from Position, moves []offset) []Position {
	var out []Position
	for _, m := range moves {
		pos, ok := from.Offset(m.dr, m.dc)
		if !ok {
			continue
		}
		if occupant := b.PieceAt(pos); occupant == nil || occupant.color != piece.color {
			out = append(out, pos)
		}
	}
	return out
}

func (b *Board) pawnCandidates(piece *Piece, from Position) []Position {
	var out []Position
	dir := piece.color.PawnDirection()

	for _, o := range []offset{{dir, 0}, {2 * dir, 0}, {dir, -1}, {dir, 1}} {
		pos, ok := from.Offset(o.dr, o.dc)
		if ok && canMoveFrom(b, piece, from, pos) {
			out = append(out, pos)
		}
	}
	return out
}
