package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// StorageConfig holds settings for the match archive.
type StorageConfig struct {
	// Enabled archives finished interactive matches.
	Enabled bool `yaml:"enabled"`

	// Dir is the archive directory.
	Dir string `yaml:"dir"`
}

// NewStorageConfig creates a StorageConfig with the archive disabled.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{Dir: "chessrules-data"}
}

// Validate checks that an enabled archive has a directory.
func (s *StorageConfig) Validate() error {
	if s.Enabled && s.Dir == "" {
		return fmt.Errorf("storage enabled without a directory: %w", errors.ErrInvalidConfig)
	}
	return nil
}
