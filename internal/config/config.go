// Package config provides configuration for the chess rules engine and its
// command-line front end.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MinBoardSize is the smallest board a layout of king, rooks and pawns fits on.
const MinBoardSize = 5

// Config holds all program configuration.
// Sub-configs group related settings and can be validated on their own.
type Config struct {
	BoardSize int            `yaml:"board_size"`
	Layout    *LayoutConfig  `yaml:"layout"`
	Square    *SquareConfig  `yaml:"square"`
	Log       *LogConfig     `yaml:"log"`
	Storage   *StorageConfig `yaml:"storage"`
	Replay    *ReplayConfig  `yaml:"replay"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values: a standard 8×8 game.
func NewConfig() *Config {
	return &Config{
		BoardSize:  chess.DefaultBoardSize,
		Layout:     NewLayoutConfig(),
		Square:     NewSquareConfig(),
		Log:        NewLogConfig(),
		Storage:    NewStorageConfig(),
		Replay:     NewReplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML configuration over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every sub-config against the board size.
func (c *Config) Validate() error {
	if c.BoardSize < MinBoardSize {
		return fmt.Errorf("board size %d is below %d: %w", c.BoardSize, MinBoardSize, errors.ErrInvalidConfig)
	}
	if c.Layout == nil || c.Square == nil || c.Log == nil || c.Storage == nil || c.Replay == nil {
		return fmt.Errorf("missing section: %w", errors.ErrInvalidConfig)
	}
	if err := c.Layout.Validate(c.BoardSize); err != nil {
		return err
	}
	if err := c.Square.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return c.Replay.Validate()
}

// SetOutput sets the main output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}
