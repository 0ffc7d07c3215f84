// Package testutil provides shared test helpers for the chessrules-go
// project: cmp-based assertions and board fixtures.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, formatMessage(msgAndArgs...), fmt.Sprintf("mismatch (-want +got):\n%s", diff))
	}
}

// AssertSameIDs compares two id lists ignoring order.
func AssertSameIDs(t *testing.T, got, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b }), cmpopts.EquateEmpty()); diff != "" {
		fail(t, formatMessage(msgAndArgs...), fmt.Sprintf("ids mismatch (-want +got):\n%s", diff))
	}
}

// AssertSquares fails unless got holds exactly the want squares.
func AssertSquares(t *testing.T, got chess.SquareSet, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	wantSet := chess.NewSquareSet(want...)
	if diff := cmp.Diff(wantSet.Sorted(), got.Sorted(), cmpopts.EquateEmpty()); diff != "" {
		fail(t, formatMessage(msgAndArgs...), fmt.Sprintf("squares mismatch (-want +got):\n%s", diff))
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, formatMessage(msgAndArgs...), fmt.Sprintf("unexpected error: %v", err))
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		fail(t, formatMessage(msgAndArgs...), fmt.Sprintf("error %v is not %v", err, target))
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, formatMessage(msgAndArgs...), "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		fail(t, formatMessage(msgAndArgs...), "expected false but got true")
	}
}

func fail(t *testing.T, msg, detail string) {
	t.Helper()
	if msg != "" {
		t.Errorf("%s: %s", msg, detail)
		return
	}
	t.Error(detail)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
