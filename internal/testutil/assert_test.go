package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Failure paths cannot be exercised without mocking *testing.T, so these
// tests cover the success cases and the formatMessage helper.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Sq(1, 2), chess.Sq(1, 2), "square %d", 1)
}

func TestAssertSameIDs_Success(t *testing.T) {
	AssertSameIDs(t, []string{"b", "a"}, []string{"a", "b"})
	AssertSameIDs(t, nil, []string{})
}

func TestAssertSquares_Success(t *testing.T) {
	AssertSquares(t, chess.NewSquareSet(chess.Sq(5, 4), chess.Sq(4, 4)), []chess.Square{chess.Sq(4, 4), chess.Sq(5, 4)})
	AssertSquares(t, nil, nil)
}

func TestAssertErrorIs_Success(t *testing.T) {
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", errors.ErrOutOfBounds), errors.ErrOutOfBounds)
	AssertNoError(t, nil)
	AssertTrue(t, true)
	AssertFalse(t, false)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"non-string format", []interface{}{42, "x"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q; want %q", got, tt.want)
			}
		})
	}
}
