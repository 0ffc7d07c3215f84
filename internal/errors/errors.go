// Package errors provides sentinel errors and error types for the chess rules engine.
// It separates caller-contract violations (bad coordinates, unknown piece kinds,
// malformed lookups) from the expected "not legal" outcomes, which the turn
// controller reports as no-ops rather than errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the board. Lookups return it
	// as a value; ray tracing probes off-board squares routinely.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidPieceKind indicates a piece factory request for an unknown kind.
	ErrInvalidPieceKind = errors.New("invalid piece kind")

	// ErrMissingLookupArgument indicates a piece lookup with neither an id nor a square.
	ErrMissingLookupArgument = errors.New("piece lookup needs an id or a square")

	// ErrUnknownPiece indicates an id that is not in the board registry.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrDuplicatePiece indicates an id that is already registered.
	ErrDuplicatePiece = errors.New("duplicate piece id")

	// ErrSquareOccupied indicates a placement onto a square held by another piece.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrIllegalMove indicates a scripted move the rules reject.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnexpectedResult indicates a replayed match that ended differently
	// from its script's expectation.
	ErrUnexpectedResult = errors.New("unexpected match result")

	// ErrGameOver indicates input received after the match ended.
	ErrGameOver = errors.New("game over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMatchNotFound indicates an archive lookup for an unknown match.
	ErrMatchNotFound = errors.New("match not found")
)

// MatchError wraps errors with match context: the match name, the ply at which
// the failure happened and the squares involved. It supports errors.Is() and
// errors.As() through Unwrap.
type MatchError struct {
	Err   error  // The underlying error
	Match string // Match name (if known)
	Index int    // 1-based match index in a batch (0 if not applicable)
	Ply   int    // 1-based ply (0 if not applicable)
	Move  string // Squares involved, e.g. "(6,4)->(4,4)"
}

// Error returns a formatted error message including all available context.
func (e *MatchError) Error() string {
	var parts []string

	if e.Match != "" {
		parts = append(parts, fmt.Sprintf("match %q", e.Match))
	} else if e.Index > 0 {
		parts = append(parts, fmt.Sprintf("match %d", e.Index))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, "move "+e.Move)
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *MatchError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
