package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DetectPins looks along every compass line from the king for an allied piece
// followed by an enemy slider that moves back along the same line. Such a
// piece is pinned to that line. It returns the ids of the pinned pieces.
func (r *Rules) DetectPins(b *chess.Board, king *chess.Piece) []string {
	var pinned []string
	for _, d := range chess.Compass {
		seen := LineOfPieces(b, king.Square, d, 2)
		if len(seen) != 2 {
			continue
		}

		near, _ := b.Piece(seen[0])
		attacker, _ := b.Piece(seen[1])
		if near.Colour != king.Colour || near.IsKing() || attacker.Colour == king.Colour {
			continue
		}
		if !attacker.Kind.Sliding() || !attacker.Moves.Has(d.Reverse()) {
			continue
		}

		near.SetPin(d)
		pinned = append(pinned, near.ID)
		r.log.Debug("piece pinned",
			zap.String("piece", near.ID),
			zap.String("by", attacker.ID),
			zap.Stringer("along", d))
	}
	return pinned
}
