package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveRecord is one completed move. Squares are recorded as coordinates;
// there is no move notation.
type MoveRecord struct {
	Ply        int          `json:"ply"`
	PieceID    string       `json:"piece"`
	Kind       string       `json:"kind"`
	Colour     string       `json:"colour"`
	From       chess.Square `json:"from"`
	To         chess.Square `json:"to"`
	Captured   string       `json:"captured,omitempty"`
	CastleRook string       `json:"castle_rook,omitempty"`
	Promoted   string       `json:"promoted,omitempty"`
}

func (m MoveRecord) String() string {
	s := fmt.Sprintf("%d. %s %s->%s", m.Ply, m.PieceID, m.From, m.To)
	if m.Captured != "" {
		s += " x" + m.Captured
	}
	if m.CastleRook != "" {
		s += " castle " + m.CastleRook
	}
	if m.Promoted != "" {
		s += " =" + m.Promoted
	}
	return s
}
