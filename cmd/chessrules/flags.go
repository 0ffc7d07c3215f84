// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Input options
	configFile = flag.String("config", "", "YAML configuration file")
	replayFile = flag.String("replay", "", "Replay the matches in this YAML script instead of playing")

	// Output options
	jsonOutput = flag.Bool("json", false, "Write replay results in JSON format")
	lineLength = flag.Int("w", 80, "Maximum line length of move lists")

	// Archive options
	dbDir     = flag.String("db", "", "Archive finished matches in this directory")
	showStats = flag.Bool("stats", false, "Print archive statistics and exit")

	// Logging
	logFile = flag.String("log", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Verbose (debug) logging")

	// Performance options
	workers = flag.Int("j", -1, "Number of matches replayed in parallel (0 = one per CPU)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// loadConfig reads the -config file, or returns the defaults.
func loadConfig() (*config.Config, error) {
	if *configFile == "" {
		return config.NewConfig(), nil
	}
	return config.Load(*configFile)
}

// applyFlags applies command-line flags to the configuration. Flags win over
// the configuration file.
func applyFlags(cfg *config.Config) {
	if *dbDir != "" {
		cfg.Storage.Enabled = true
		cfg.Storage.Dir = *dbDir
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *workers >= 0 {
		cfg.Replay.Workers = *workers
	}
}
