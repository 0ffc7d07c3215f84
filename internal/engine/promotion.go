package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// PromotionKind is the only piece a pawn promotes to.
const PromotionKind = chess.Queen

// NeedsPromotion reports whether p is a pawn standing on the first or last rank.
func NeedsPromotion(b *chess.Board, p *chess.Piece) bool {
	return p.Kind == chess.Pawn && (p.Square.Rank == 0 || p.Square.Rank == b.Size()-1)
}

// Promote replaces a pawn on the first or last rank with a queen of the same
// colour on the same square. It returns nil when no promotion applies.
func (r *Rules) Promote(b *chess.Board, pawn *chess.Piece) (*chess.Piece, error) {
	if !NeedsPromotion(b, pawn) {
		return nil, nil
	}

	index := pawn.Index
	for {
		if _, taken := b.Piece(chess.PieceID(pawn.Colour, PromotionKind, index)); !taken {
			break
		}
		index += "p"
	}

	sq := pawn.Square
	b.Remove(pawn.ID)
	queen, err := b.CreatePiece(PromotionKind, sq, pawn.Colour, index)
	if err != nil {
		return nil, err
	}
	queen.HasMoved = true

	r.log.Info("promoted",
		zap.String("pawn", pawn.ID),
		zap.String("piece", queen.ID),
		zap.Stringer("square", sq))
	return queen, nil
}
