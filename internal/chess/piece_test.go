package chess

import "testing"

func TestPieceDescriptions(t *testing.T) {
	tests := []struct {
		kind     Kind
		color    Color
		pos      Position
		symbol   byte
		fullName string
		str      string
	}{
		{Knight, White, Position{row: 0, col: 1}, 'N', "White Knight", "White Knight on b8"},
		{Queen, Black, Position{row: 7, col: 3}, 'q', "Black Queen", "Black Queen on d1"},
		{Pawn, Black, Position{row: 6, col: 4}, 'p', "Black Pawn", "Black Pawn on e2"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			p := NewPiece(tt.kind, tt.color, tt.pos)
			if got := p.Symbol(); got != tt.symbol {
				t.Errorf("Symbol() = %c, want %c", got, tt.symbol)
			}
			if got := p.FullName(); got != tt.fullName {
				t.Errorf("FullName() = %q, want %q", got, tt.fullName)
			}
			if got := p.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := p.Value(); got != tt.kind.Value() {
				t.Errorf("Value() = %d, want %d", got, tt.kind.Value())
			}
		})
	}
}

func TestPieceIdentity(t *testing.T) {
	a := NewPiece(Rook, White, Position{})
	b := NewPiece(Rook, White, Position{})

	if a.ID() == b.ID() {
		t.Fatal("NewPiece() returned two pieces with the same ID")
	}
	if !a.Is(a.clone()) {
		t.Error("clone lost the identity")
	}
	if a.Is(b) || a.Is(nil) {
		t.Error("Is() matched a different piece")
	}
	if !a.SameColor(b) || a.SameColor(NewPiece(Rook, Black, Position{})) {
		t.Error("SameColor() mismatch")
	}
}

func TestPieceSnapshot(t *testing.T) {
	p := NewPiece(Pawn, White, Position{row: 1, col: 0})
	snap := p.Snapshot()

	p.MarkMoved()
	if snap.HasMoved() {
		t.Error("snapshot follows later changes")
	}
	moved := p.Snapshot()
	if snap.Equal(&moved) {
		t.Error("Equal() ignores the moved flag")
	}
	if !snap.Equal(&snap) || !p.Equal(&moved) {
		t.Error("Equal() is not reflexive")
	}

	var none *Piece
	if !none.Equal(nil) || none.Equal(&snap) || snap.Equal(nil) {
		t.Error("Equal() mishandles nil pieces")
	}
}

func TestPieceIsOnPromotionRank(t *testing.T) {
	tests := []struct {
		name  string
		piece *Piece
		want  bool
	}{
		{"white pawn on row 7", NewPiece(Pawn, White, Position{row: 7, col: 2}), true},
		{"white pawn on row 6", NewPiece(Pawn, White, Position{row: 6, col: 2}), false},
		{"black pawn on row 0", NewPiece(Pawn, Black, Position{row: 0, col: 2}), true},
		{"rook on row 7", NewPiece(Rook, White, Position{row: 7, col: 2}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.piece.IsOnPromotionRank(); got != tt.want {
				t.Errorf("IsOnPromotionRank() = %v, want %v", got, tt.want)
			}
		})
	}
}
