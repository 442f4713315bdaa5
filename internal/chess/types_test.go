package chess

import "testing"

func TestColor(t *testing.T) {
	tests := []struct {
		color     Color
		opposite  Color
		dir       int
		startRow  int
		backRank  int
		promotion int
		name      string
	}{
		{White, Black, 1, 1, 0, 7, "White"},
		{Black, White, -1, 6, 7, 0, "Black"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Opposite(); got != tt.opposite {
				t.Errorf("Opposite() = %v, want %v", got, tt.opposite)
			}
			if got := tt.color.PawnDirection(); got != tt.dir {
				t.Errorf("PawnDirection() = %d, want %d", got, tt.dir)
			}
			if got := tt.color.PawnStartRow(); got != tt.startRow {
				t.Errorf("PawnStartRow() = %d, want %d", got, tt.startRow)
			}
			if got := tt.color.BackRank(); got != tt.backRank {
				t.Errorf("BackRank() = %d, want %d", got, tt.backRank)
			}
			if got := tt.color.PromotionRow(); got != tt.promotion {
				t.Errorf("PromotionRow() = %d, want %d", got, tt.promotion)
			}
			if got := tt.color.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind      Kind
		symbol    byte
		value     int
		promotion bool
		slider    bool
	}{
		{King, 'K', 0, false, false},
		{Queen, 'Q', 9, true, true},
		{Rook, 'R', 5, true, true},
		{Bishop, 'B', 3, true, true},
		{Knight, 'N', 3, true, false},
		{Pawn, 'P', 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Symbol(); got != tt.symbol {
				t.Errorf("Symbol() = %c, want %c", got, tt.symbol)
			}
			if got := tt.kind.Value(); got != tt.value {
				t.Errorf("Value() = %d, want %d", got, tt.value)
			}
			if got := tt.kind.IsPromotionTarget(); got != tt.promotion {
				t.Errorf("IsPromotionTarget() = %v, want %v", got, tt.promotion)
			}
			if got := tt.kind.IsSlider(); got != tt.slider {
				t.Errorf("IsSlider() = %v, want %v", got, tt.slider)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"Q", Queen, true},
		{"n", Knight, true},
		{"rook", Rook, true},
		{" Bishop ", Bishop, true},
		{"PAWN", Pawn, true},
		{"x", 0, false},
		{"", 0, false},
		{"dragon", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
