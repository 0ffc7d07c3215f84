package game

import "github.com/lgbarn/chessrules-go/internal/chess"

// PieceView is the read-only view of one piece handed to renderers.
type PieceView struct {
	ID       string       `json:"id"`
	Kind     string       `json:"kind"`
	Colour   string       `json:"colour"`
	Square   chess.Square `json:"square"`
	Selected bool         `json:"selected,omitempty"`
	Checked  bool         `json:"checked,omitempty"`
}

// Snapshot is a copy of the state a renderer needs. It shares nothing with
// the game.
type Snapshot struct {
	BoardSize  int            `json:"board_size"`
	ToMove     string         `json:"to_move"`
	GameOver   bool           `json:"game_over"`
	Winner     string         `json:"winner,omitempty"`
	Checked    bool           `json:"checked"`
	Pieces     []PieceView    `json:"pieces"`
	Highlights []chess.Square `json:"highlights"`
}

// Snapshot captures the current position in registry order.
func (g *Game) Snapshot() Snapshot {
	pl := g.Current()
	s := Snapshot{
		BoardSize:  g.board.Size(),
		ToMove:     pl.Colour.String(),
		GameOver:   g.over,
		Checked:    g.status.Checked,
		Pieces:     make([]PieceView, 0, g.board.Len()),
		Highlights: g.highlight.Sorted(),
	}
	if g.over {
		s.Winner = g.winner.String()
	}
	for p := range g.board.All() {
		s.Pieces = append(s.Pieces, PieceView{
			ID:       p.ID,
			Kind:     p.Kind.String(),
			Colour:   p.Colour.String(),
			Square:   p.Square,
			Selected: pl.Selected && pl.SelectedID == p.ID,
			Checked:  p.IsKing() && p.Checked,
		})
	}
	return s
}
