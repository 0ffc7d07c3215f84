package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ReplayConfig holds settings for batch replay of scripted matches.
type ReplayConfig struct {
	// Workers is the number of matches replayed in parallel (0 = one per CPU).
	Workers int `yaml:"workers"`

	// BufferSize is the capacity of the work and result channels
	// (0 = twice the worker count).
	BufferSize int `yaml:"buffer_size"`
}

// NewReplayConfig creates a ReplayConfig with automatic sizing.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{}
}

// Validate rejects negative sizes.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 0 || r.BufferSize < 0 {
		return fmt.Errorf("replay workers %d, buffer %d: %w", r.Workers, r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
