package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrInvalidPieceKind", ErrInvalidPieceKind, ErrInvalidPieceKind},
		{"ErrMissingLookupArgument", ErrMissingLookupArgument, ErrMissingLookupArgument},
		{"ErrUnknownPiece", ErrUnknownPiece, ErrUnknownPiece},
		{"ErrDuplicatePiece", ErrDuplicatePiece, ErrDuplicatePiece},
		{"ErrSquareOccupied", ErrSquareOccupied, ErrSquareOccupied},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrUnexpectedResult", ErrUnexpectedResult, ErrUnexpectedResult},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrMatchNotFound", ErrMatchNotFound, ErrMatchNotFound},
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
	if errors.Is(ErrOutOfBounds, ErrUnknownPiece) {
		t.Error("ErrOutOfBounds must not match ErrUnknownPiece")
	}
}

// TestMatchError_Error verifies the error message format
func TestMatchError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MatchError
		contains []string
	}{
		{
			name: "full context",
			err: &MatchError{
				Err:   ErrIllegalMove,
				Match: "fools-mate",
				Ply:   3,
				Move:  "(6,4)->(3,4)",
			},
			contains: []string{"fools-mate", "ply 3", "(6,4)->(3,4)", "illegal move"},
		},
		{
			name:     "index only",
			err:      &MatchError{Err: ErrGameOver, Index: 2},
			contains: []string{"match 2", "game over"},
		},
		{
			name:     "no context",
			err:      &MatchError{Err: ErrIllegalMove},
			contains: []string{"illegal move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(strings.ToLower(msg), strings.ToLower(s)) {
					t.Errorf("MatchError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMatchError_As verifies that errors.As works through further wrapping
func TestMatchError_As(t *testing.T) {
	wrapped := fmt.Errorf("replay failed: %w", &MatchError{Err: ErrIllegalMove, Match: "m", Ply: 7})

	var matchErr *MatchError
	if !errors.As(wrapped, &matchErr) {
		t.Fatal("errors.As() could not extract MatchError")
	}
	if matchErr.Ply != 7 {
		t.Errorf("matchErr.Ply = %d, want 7", matchErr.Ply)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	wrapped := Wrapf(ErrInvalidPieceKind, "promote %s", "white_pawn3")
	if !errors.Is(wrapped, ErrInvalidPieceKind) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "white_pawn3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}
