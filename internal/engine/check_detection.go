package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// kingSafety computes the king's safe destinations. Normal steps and the two
// castle candidates are checked against the union of every enemy piece's
// threatened squares; castle candidates that survive go through the castling
// rules. It also returns the ids of the enemy pieces giving check.
func (r *Rules) kingSafety(b *chess.Board, king *chess.Piece) (moves, castles chess.SquareSet, checkers []string) {
	moves = rayMoves(b, king)
	candidates := castleCandidates(b, king)
	probe := moves.Union(candidates)

	unsafe := chess.SquareSet{}
	for enemy := range b.All() {
		if enemy.Colour == king.Colour {
			continue
		}
		th := r.ThreatenedSquares(b, enemy)
		unsafe.AddAll(probe.Intersect(th.Squares))
		if th.Checks {
			checkers = append(checkers, enemy.ID)
		}
	}

	moves = moves.Minus(unsafe)
	candidates = candidates.Minus(unsafe)
	castles = r.castleMoves(b, king, candidates, moves, len(checkers) > 0)
	moves.AddAll(castles)
	return moves, castles, checkers
}

// IsSquareAttacked reports whether any piece of colour byColour threatens sq.
func (r *Rules) IsSquareAttacked(b *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for p := range b.All() {
		if p.Colour == byColour && r.ThreatenedSquares(b, p).Squares.Has(sq) {
			return true
		}
	}
	return false
}

// ComputeSafeKingMoves fills the king's move cache with its safe destinations,
// records who gives check and returns the number of king moves.
func (r *Rules) ComputeSafeKingMoves(b *chess.Board, king *chess.Piece) int {
	moves, castles, checkers := r.kingSafety(b, king)
	for _, id := range checkers {
		king.RegisterCheck(id)
	}
	king.CastleMoves = castles
	king.SetMoves(moves)

	r.log.Debug("safe king moves",
		zap.String("king", king.ID),
		zap.Stringer("moves", moves),
		zap.Strings("checking", king.CheckingIDs))
	return moves.Len()
}

// ComputeCheckDefenses restricts the allies of a checked king to moves that
// capture the single checking piece or block its line. Under double check no
// ally other than the king may move. It returns the number of legal
// destinations left across the non-king allies.
func (r *Rules) ComputeCheckDefenses(b *chess.Board, king *chess.Piece, allies []string) int {
	if !king.Checked {
		return 0
	}

	if n := len(king.CheckingIDs); n >= 2 {
		r.log.Debug("double check, only the king may move",
			zap.String("king", king.ID), zap.Int("attackers", n))
		for _, id := range allies {
			if p, ok := b.Piece(id); ok && !p.IsKing() {
				p.SetMoves(chess.SquareSet{})
			}
		}
		return 0
	}

	attacker, ok := b.Piece(king.CheckingIDs[0])
	if !ok {
		return 0
	}
	defense := chess.NewSquareSet(attacker.Square)
	if attacker.Kind.Sliding() {
		defense.AddAll(BlockPath(attacker.Square, king.Square))
	}
	r.log.Debug("check defenses",
		zap.String("attacker", attacker.ID),
		zap.Stringer("defense", defense))

	total := 0
	for _, id := range allies {
		p, ok := b.Piece(id)
		if !ok || p.IsKing() {
			continue
		}
		moves := r.LegalMoves(b, p).Intersect(defense)
		p.SetMoves(moves)
		total += moves.Len()
	}
	return total
}
