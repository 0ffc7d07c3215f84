package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/replay"
)

// JSONMatch represents a replayed match in JSON format.
type JSONMatch struct {
	Name        string            `json:"name"`
	Index       int               `json:"index"`
	Plies       int               `json:"plies"`
	GameOver    bool              `json:"gameOver"`
	Winner      string            `json:"winner,omitempty"`
	Error       string            `json:"error,omitempty"`
	DuplicateOf int               `json:"duplicateOf,omitempty"` // earlier match ending in the same position
	Moves       []game.MoveRecord `json:"moves,omitempty"`
	Final       *game.Snapshot    `json:"final,omitempty"`
}

// JSONOutput holds multiple matches for array output.
type JSONOutput struct {
	Matches []*JSONMatch `json:"matches"`
}

// ResultToJSON converts a replay result to JSON form. The final position is
// included only when withPosition is set.
func ResultToJSON(res replay.Result, withPosition bool) *JSONMatch {
	jm := &JSONMatch{
		Name:        res.Name,
		Index:       res.Index,
		Plies:       res.Plies,
		GameOver:    res.GameOver,
		Winner:      res.Winner,
		DuplicateOf: res.DuplicateOf,
		Moves:       res.History,
	}
	if res.Err != nil {
		jm.Error = res.Err.Error()
	}
	if withPosition && res.Snapshot.BoardSize > 0 {
		snap := res.Snapshot
		jm.Final = &snap
	}
	return jm
}

// WriteSnapshotJSON writes a snapshot as indented JSON.
func WriteSnapshotJSON(w io.Writer, snap game.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
