// Command chessrules plays two-player chess in the terminal, replays scripted
// matches and reports on the match archive.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	interactive := *replayFile == "" && !*showStats
	closeLog := setupLogFile(cfg, interactive)
	defer closeLog()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	defer logger.Sync() //nolint:errcheck // nothing useful to do on exit

	switch {
	case *showStats:
		err = printStats(cfg)
	case *replayFile != "":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		var failed int
		failed, err = runReplay(ctx, cfg, logger, *replayFile, *jsonOutput)
		stop()
		if err == nil && failed > 0 {
			err = fmt.Errorf("%d match(es) failed", failed)
		}
	default:
		err = runInteractive(cfg, logger)
	}
	if err != nil {
		logger.Error("exiting", zap.Error(err))
		fatalf("%v", err)
	}
}

// setupLogFile points cfg.LogFile at the configured log file. Without one,
// the interactive session logs nowhere so the screen stays clean. The
// returned function closes the file.
func setupLogFile(cfg *config.Config, interactive bool) func() {
	if cfg.Log.File == "" {
		if interactive {
			cfg.LogFile = nil
		}
		return func() {}
	}

	file, err := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fatalf("opening log file %s: %v", cfg.Log.File, err)
	}
	cfg.LogFile = file
	return func() { _ = file.Close() }
}

// openArchive opens the match archive when storage is enabled. It returns
// nil without error when it is not.
func openArchive(cfg *config.Config) (*storage.Storage, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}
	return storage.Open(cfg.Storage.Dir)
}

// printStats writes the archive totals and one line per archived match.
func printStats(cfg *config.Config) error {
	if !cfg.Storage.Enabled {
		return fmt.Errorf("-stats needs an archive (-db or storage.enabled): %w", errors.ErrInvalidConfig)
	}
	store, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return writeStats(cfg.OutputFile, store)
}

func writeStats(w io.Writer, store *storage.Storage) error {
	stats, err := store.LoadStats()
	if err != nil {
		return err
	}
	matches, err := store.ListMatches()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d match(es): white %d, black %d, unfinished %d\n",
		stats.Played, stats.WhiteWins, stats.BlackWins, stats.Unfinished)
	for _, m := range matches {
		result := "unfinished"
		if m.GameOver {
			result = m.Winner + " wins"
		}
		name := m.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s  %s  %-20s %3d plies  %s\n",
			m.ID, m.FinishedAt.Format("2006-01-02 15:04"), name, len(m.Moves), result)
	}
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "chessrules: "+format+"\n", args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two-player chess in the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nKeys:\n")
	fmt.Fprintf(os.Stderr, "  click  select a piece, then its destination\n")
	fmt.Fprintf(os.Stderr, "  Esc    pause / resume\n")
	fmt.Fprintf(os.Stderr, "  r      restart\n")
	fmt.Fprintf(os.Stderr, "  q      quit\n")
}
