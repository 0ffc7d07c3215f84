package game

import (
	"slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Player is one side of the match. It refers to its pieces by id; the board
// owns the pieces themselves.
type Player struct {
	Colour     chess.Colour
	Pieces     []string
	KingID     string
	Selected   bool
	SelectedID string

	// PlayableMovesInCheck is the number of legal destinations found at turn
	// start. Zero while checked means checkmate.
	PlayableMovesInCheck int
	TurnComplete         bool
}

func newPlayer(b *chess.Board, colour chess.Colour, ids []string) *Player {
	p := &Player{Colour: colour, Pieces: ids}
	for _, id := range ids {
		if piece, ok := b.Piece(id); ok && piece.IsKing() {
			p.KingID = id
			break
		}
	}
	return p
}

// Owns reports whether id is one of the player's pieces.
func (p *Player) Owns(id string) bool {
	return id != "" && slices.Contains(p.Pieces, id)
}

func (p *Player) removePiece(id string) {
	if i := slices.Index(p.Pieces, id); i >= 0 {
		p.Pieces = slices.Delete(p.Pieces, i, i+1)
	}
}

func (p *Player) clearSelection() {
	p.Selected = false
	p.SelectedID = ""
}
