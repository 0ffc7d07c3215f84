package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// castleCandidates returns the on-board squares two files either side of the king.
func castleCandidates(b *chess.Board, king *chess.Piece) chess.SquareSet {
	out := chess.SquareSet{}
	for _, df := range []int{-2, 2} {
		sq := chess.Sq(king.Square.Rank, king.Square.File+df)
		if b.InBounds(sq) {
			out.Add(sq)
		}
	}
	return out
}

// castleMoves keeps the safe candidates the king may castle to: king unmoved
// and not in check, the first piece towards the candidate an unmoved allied
// rook beyond it, and the square the king crosses among its safe moves.
func (r *Rules) castleMoves(b *chess.Board, king *chess.Piece, candidates, safe chess.SquareSet, checked bool) chess.SquareSet {
	out := chess.SquareSet{}
	if checked || king.HasMoved {
		return out
	}
	for _, sq := range candidates.Sorted() {
		d := chess.Right
		if sq.File < king.Square.File {
			d = chess.Left
		}
		seen := LineOfPieces(b, king.Square, d, 1)
		if len(seen) == 0 {
			continue
		}
		rook, _ := b.Piece(seen[0])
		if rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved {
			continue
		}
		if abs(rook.Square.File-king.Square.File) <= 2 {
			continue
		}
		crossed := chess.Sq(king.Square.Rank, sq.File-d.Vector().DFile)
		if !safe.Has(crossed) {
			continue
		}
		out.Add(sq)
	}
	return out
}

// CastleResult describes the rook half of a castle.
type CastleResult struct {
	RookID string
	From   chess.Square
	To     chess.Square
}

// ExecuteCastle moves the rook after the king has landed on a castle square.
// The rook move is forced and bypasses the check-defense filter.
func (r *Rules) ExecuteCastle(b *chess.Board, king *chess.Piece, kingFrom chess.Square) (CastleResult, error) {
	d := chess.Right
	if king.Square.File < kingFrom.File {
		d = chess.Left
	}
	seen := LineOfPieces(b, king.Square, d, 1)
	if len(seen) == 0 {
		return CastleResult{}, fmt.Errorf("castle %s: no rook %s of %s", king.ID, d, king.Square)
	}
	rook, _ := b.Piece(seen[0])
	res := CastleResult{
		RookID: rook.ID,
		From:   rook.Square,
		To:     chess.Sq(king.Square.Rank, king.Square.File-d.Vector().DFile),
	}
	if err := b.Relocate(rook.ID, res.To); err != nil {
		return CastleResult{}, err
	}
	rook.HasMoved = true
	rook.Invalidate()

	r.log.Info("castled",
		zap.String("king", king.ID),
		zap.String("rook", rook.ID),
		zap.Stringer("rook_to", res.To))
	return res, nil
}
