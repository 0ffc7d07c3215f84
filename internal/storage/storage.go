// Package storage archives finished matches and keeps win statistics in a
// BadgerDB database. Values are stored as JSON.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Storage keys
const (
	matchPrefix = "match/"
	keyStats    = "stats"
)

// MatchRecord is one archived match.
type MatchRecord struct {
	ID         string            `json:"id"`
	Name       string            `json:"name,omitempty"`
	BoardSize  int               `json:"board_size"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	GameOver   bool              `json:"game_over"`
	Winner     string            `json:"winner,omitempty"`
	Moves      []game.MoveRecord `json:"moves"`
}

// NewMatchRecord captures the result and move history of g.
func NewMatchRecord(g *game.Game, name string, started time.Time) *MatchRecord {
	rec := &MatchRecord{
		Name:       name,
		BoardSize:  g.Board().Size(),
		StartedAt:  started,
		FinishedAt: time.Now(),
		Moves:      g.History(),
	}
	if winner, over := g.Winner(); over {
		rec.GameOver = true
		rec.Winner = winner.String()
	}
	return rec
}

// Stats counts archived results.
type Stats struct {
	Played     int `json:"played"`
	WhiteWins  int `json:"white_wins"`
	BlackWins  int `json:"black_wins"`
	Unfinished int `json:"unfinished"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens or creates an archive in dir.
func Open(dir string) (*Storage, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens an archive that is discarded on Close.
func OpenInMemory() (*Storage, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Storage, error) {
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening match archive")
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch stores a match under a fresh id and counts its result. It
// returns the id.
func (s *Storage) SaveMatch(rec *MatchRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(matchPrefix+rec.ID), data); err != nil {
			return err
		}
		return recordResult(txn, rec.GameOver, rec.Winner)
	})
	if err != nil {
		return "", errors.Wrapf(err, "saving match %s", rec.ID)
	}
	return rec.ID, nil
}

// LoadMatch returns the match stored under id.
func (s *Storage) LoadMatch(id string) (*MatchRecord, error) {
	rec := &MatchRecord{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(matchPrefix + id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("match %s: %w", id, errors.ErrMatchNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListMatches returns every archived match, oldest first.
func (s *Storage) ListMatches() ([]*MatchRecord, error) {
	var out []*MatchRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(matchPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rec := &MatchRecord{}
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].FinishedAt.Equal(out[j].FinishedAt) {
			return out[i].FinishedAt.Before(out[j].FinishedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadStats loads result statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*Stats, error) {
	var stats *Stats
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = loadStats(txn)
		return err
	})
	return stats, err
}

// RecordResult counts a result without archiving the match.
func (s *Storage) RecordResult(over bool, winner string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return recordResult(txn, over, winner)
	})
}

func loadStats(txn *badger.Txn) (*Stats, error) {
	stats := &Stats{}
	item, err := txn.Get([]byte(keyStats))
	if err == badger.ErrKeyNotFound {
		return stats, nil // Use empty stats
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	return stats, err
}

func recordResult(txn *badger.Txn, over bool, winner string) error {
	stats, err := loadStats(txn)
	if err != nil {
		return err
	}

	stats.Played++
	switch {
	case !over:
		stats.Unfinished++
	case winner == "white":
		stats.WhiteWins++
	case winner == "black":
		stats.BlackWins++
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return txn.Set([]byte(keyStats), data)
}
