package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBoardSize sets the board dimension.
func (b *ConfigBuilder) WithBoardSize(n int) *ConfigBuilder {
	b.cfg.BoardSize = n
	return b
}

// WithBackRank sets the starting back rank.
func (b *ConfigBuilder) WithBackRank(names ...string) *ConfigBuilder {
	b.cfg.Layout.BackRank = names
	return b
}

// WithPawns controls whether the pawn rank is filled.
func (b *ConfigBuilder) WithPawns(enabled bool) *ConfigBuilder {
	b.cfg.Layout.Pawns = enabled
	return b
}

// WithSquareSize sets the size of a board square in input coordinates.
func (b *ConfigBuilder) WithSquareSize(width, height int) *ConfigBuilder {
	b.cfg.Square.Width = width
	b.cfg.Square.Height = height
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoding.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithLogWriter sets the log stream.
func (b *ConfigBuilder) WithLogWriter(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithStorage enables the match archive in dir.
func (b *ConfigBuilder) WithStorage(dir string) *ConfigBuilder {
	b.cfg.Storage.Enabled = true
	b.cfg.Storage.Dir = dir
	return b
}

// WithWorkers sets the number of parallel replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}
