package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// TurnStatus summarises the side to move after the turn-start computations.
type TurnStatus struct {
	Checked  bool
	Checkers []string
	Pinned   []string
	// Playable counts the king's safe moves plus, when in check, every
	// ally's remaining defensive moves. Outside check it only holds the
	// king's moves, so a zero here does not mean stalemate.
	Playable int
}

// Checkmate returns true if the king is checked with no playable move left.
func (s TurnStatus) Checkmate() bool {
	return s.Checked && s.Playable == 0
}

// StartTurn runs the turn-start rules for the side owning king: pins first so
// that check defenses respect them, then king safety, then check defenses.
func (r *Rules) StartTurn(b *chess.Board, king *chess.Piece, allies []string) TurnStatus {
	king.ClearCheck()
	status := TurnStatus{Pinned: r.DetectPins(b, king)}
	status.Playable = r.ComputeSafeKingMoves(b, king)
	status.Playable += r.ComputeCheckDefenses(b, king, allies)
	status.Checked = king.Checked
	status.Checkers = king.CheckingIDs

	if status.Checkmate() {
		r.log.Info("checkmate", zap.String("king", king.ID), zap.Strings("checking", status.Checkers))
	}
	return status
}

// RevokeTurn clears the per-turn state of a side: move caches, pins and the
// king's castle candidates.
func RevokeTurn(b *chess.Board, ids []string) {
	for _, id := range ids {
		p, ok := b.Piece(id)
		if !ok {
			continue
		}
		p.Invalidate()
		p.ClearPin()
		p.CastleMoves = nil
	}
}
