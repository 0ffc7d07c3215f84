package main

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/replay"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

// runReplay replays a script, writes every result and archives the
// successful ones. It returns the number of failed matches.
func runReplay(ctx context.Context, cfg *config.Config, logger *zap.Logger, path string, asJSON bool) (int, error) {
	script, err := replay.LoadScript(path)
	if err != nil {
		return 0, err
	}

	store, err := openArchive(cfg)
	if err != nil {
		return 0, err
	}
	if store != nil {
		defer store.Close()
	}

	runner := replay.NewRunner(
		replay.WithLogger(logger),
		replay.WithWorkers(cfg.Replay.Workers),
		replay.WithBufferSize(cfg.Replay.BufferSize),
		replay.WithGameOptions(
			game.WithBoardSize(cfg.BoardSize),
			game.WithLayout(cfg.Layout.ChessLayout()),
		),
	)
	started := time.Now()
	results := runner.Run(ctx, script.Matches)

	return writeResults(cfg.OutputFile, results, asJSON, store, started, logger)
}

func writeResults(w io.Writer, results []replay.Result, asJSON bool, store *storage.Storage, started time.Time, logger *zap.Logger) (int, error) {
	var rw output.ResultWriter = output.NewTextWriter(w, *lineLength)
	if asJSON {
		rw = output.NewJSONWriter(w, true)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		} else if store != nil {
			id, err := store.SaveMatch(resultRecord(res, started))
			if err != nil {
				return failed, err
			}
			logger.Debug("match archived", zap.String("match", res.Name), zap.String("id", id))
		}
		if err := rw.WriteResult(res); err != nil {
			return failed, err
		}
	}
	return failed, rw.Close()
}

func resultRecord(res replay.Result, started time.Time) *storage.MatchRecord {
	return &storage.MatchRecord{
		Name:       res.Name,
		BoardSize:  res.Snapshot.BoardSize,
		StartedAt:  started,
		FinishedAt: time.Now(),
		GameOver:   res.GameOver,
		Winner:     res.Winner,
		Moves:      res.History,
	}
}
