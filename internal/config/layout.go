package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LayoutConfig describes the starting position. Both sides use the same back
// rank; black's is placed on rank 0 and white's on the last rank.
type LayoutConfig struct {
	// BackRank lists one entry per file, e.g. "rook_1", "knight_1", "king".
	BackRank []string `yaml:"back_rank"`

	// Pawns fills the rank in front of the back rank with pawns.
	Pawns bool `yaml:"pawns"`
}

// NewLayoutConfig creates a LayoutConfig for the standard starting position.
func NewLayoutConfig() *LayoutConfig {
	std := chess.StandardLayout()
	return &LayoutConfig{BackRank: std.BackRank, Pawns: std.Pawns}
}

// Validate checks that the back rank fills a size-file board with known
// kinds, unique names and exactly one king.
func (l *LayoutConfig) Validate(size int) error {
	if len(l.BackRank) != size {
		return fmt.Errorf("back rank has %d entries, board has %d files: %w",
			len(l.BackRank), size, errors.ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(l.BackRank))
	kings := 0
	for _, name := range l.BackRank {
		kind, _, err := chess.ParseLayoutName(name)
		if err != nil {
			return fmt.Errorf("back rank entry %q: %v: %w", name, err, errors.ErrInvalidConfig)
		}
		if seen[name] {
			return fmt.Errorf("back rank entry %q repeated: %w", name, errors.ErrInvalidConfig)
		}
		seen[name] = true
		if kind == chess.King {
			kings++
		}
	}
	if kings != 1 {
		return fmt.Errorf("back rank has %d kings, want 1: %w", kings, errors.ErrInvalidConfig)
	}
	return nil
}

// ChessLayout converts the configuration into a board layout.
func (l *LayoutConfig) ChessLayout() chess.Layout {
	return chess.Layout{BackRank: append([]string(nil), l.BackRank...), Pawns: l.Pawns}
}
