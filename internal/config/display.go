package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SquareConfig holds the size of one board square in input coordinates:
// pixels for a graphical front end, character cells for the terminal.
type SquareConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NewSquareConfig creates a SquareConfig sized for the terminal renderer.
func NewSquareConfig() *SquareConfig {
	return &SquareConfig{Width: 5, Height: 2}
}

// Validate checks that squares have a positive size.
func (s *SquareConfig) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("square size %dx%d: %w", s.Width, s.Height, errors.ErrInvalidConfig)
	}
	return nil
}
