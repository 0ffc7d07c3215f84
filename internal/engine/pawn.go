package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnDirections splits a pawn descriptor into its forward direction and its
// two capture diagonals.
func pawnDirections(p *chess.Piece) (chess.Direction, []chess.Direction) {
	dirs := p.Moves.Directions
	return dirs[0], dirs[1:]
}

// pawnMoves generates pushes into empty squares (two from the starting square)
// and diagonal captures onto enemies. A pin keeps only the moves along its line:
// pushes for a vertical pin, the matching capture for a diagonal one.
func pawnMoves(b *chess.Board, p *chess.Piece) chess.SquareSet {
	moves := chess.SquareSet{}
	forward, captures := pawnDirections(p)

	if p.Pin.Allows(forward) {
		one := p.Square.Add(forward.Vector())
		if id, err := b.OccupantID(one); err == nil && id == "" {
			moves.Add(one)
			if !p.HasMoved {
				two := one.Add(forward.Vector())
				if id, err := b.OccupantID(two); err == nil && id == "" {
					moves.Add(two)
				}
			}
		}
	}

	for _, d := range captures {
		if !p.Pin.Allows(d) {
			continue
		}
		sq := p.Square.Add(d.Vector())
		if target, ok := b.PieceAt(sq); ok && target.Colour != p.Colour {
			moves.Add(sq)
		}
	}
	return moves
}

// pawnThreats reports both forward diagonals whatever occupies them.
func pawnThreats(b *chess.Board, p *chess.Piece) Threat {
	th := Threat{Squares: chess.SquareSet{}}
	_, captures := pawnDirections(p)
	for _, d := range captures {
		sq := p.Square.Add(d.Vector())
		if !b.InBounds(sq) {
			continue
		}
		th.Squares.Add(sq)
		if target, ok := b.PieceAt(sq); ok && target.Colour != p.Colour && target.IsKing() {
			th.Checks = true
		}
	}
	return th
}
