package config

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is console or json.
	Format string `yaml:"format"`

	// File, when set, receives the log instead of standard error.
	File string `yaml:"file"`
}

// NewLogConfig creates a LogConfig logging warnings to the console.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "warn", Format: "console"}
}

// Validate checks the level and format names.
func (l *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch l.Format {
	case "console", "json":
		return nil
	}
	return fmt.Errorf("log format %q: %w", l.Format, errors.ErrInvalidConfig)
}

// NewLogger builds a logger writing to cfg.LogFile. A nil LogFile yields a
// no-op logger.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.LogFile == nil {
		return zap.NewNop(), nil
	}
	if err := cfg.Log.Validate(); err != nil {
		return nil, err
	}
	level, _ := zapcore.ParseLevel(cfg.Log.Level)
	return zap.New(zapcore.NewCore(newEncoder(cfg.Log.Format), sink(cfg.LogFile), level)), nil
}

func newEncoder(format string) zapcore.Encoder {
	if format == "json" {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return zapcore.NewConsoleEncoder(ec)
}

func sink(w io.Writer) zapcore.WriteSyncer {
	if ws, ok := w.(zapcore.WriteSyncer); ok {
		return zapcore.Lock(ws)
	}
	return zapcore.Lock(zapcore.AddSync(w))
}
