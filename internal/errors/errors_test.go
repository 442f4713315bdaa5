package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidPosition", ErrInvalidPosition, ErrInvalidPosition},
		{"ErrInvalidNotation", ErrInvalidNotation, ErrInvalidNotation},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidPosition, ErrInvalidNotation) {
		t.Error("errors.Is(ErrInvalidPosition, ErrInvalidNotation) = true, want false")
	}
	if errors.Is(ErrIllegalMove, ErrInvalidPosition) {
		t.Error("errors.Is(ErrIllegalMove, ErrInvalidPosition) = true, want false")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				Ply:      12,
				MoveText: "e1g1",
				GameID:   "abc",
			},
			contains: []string{"game abc", "ply 12", "e1g1", "illegal move"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrInvalidNotation,
			},
			contains: []string{"invalid notation"},
		},
		{
			name:     "no underlying error",
			err:      &MoveError{Ply: 3},
			contains: []string{"ply 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err: ErrIllegalMove,
		Ply: 1,
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrIllegalMove) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrIllegalMove)
	}

	if !errors.Is(moveErr, ErrIllegalMove) {
		t.Error("errors.Is(moveErr, ErrIllegalMove) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		Ply:      24,
		MoveText: "e1c1",
	}

	wrapped := fmt.Errorf("replay failed: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.Ply != 24 {
		t.Errorf("extractedErr.Ply = %d, want 24", extractedErr.Ply)
	}
	if extractedErr.MoveText != "e1c1" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "e1c1")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidPosition, "parsing square")

	if !errors.Is(wrapped, ErrInvalidPosition) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing square") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidPosition, "(%d, %d)", 9, -1)

	if !errors.Is(wrapped, ErrInvalidPosition) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "(9, -1)") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
