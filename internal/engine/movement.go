// Package engine implements the chess rules on top of the chess board: the
// movement model, pin detection, king safety, check defenses, castling and
// promotion.
package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Rules evaluates moves on a board. It holds no position state; every call
// receives the board and the pieces it works on.
type Rules struct {
	log *zap.Logger
}

// New creates a Rules value. A nil logger disables logging.
func New(logger *zap.Logger) *Rules {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rules{log: logger}
}

// TraceResult is the outcome of walking one ray.
type TraceResult struct {
	Moves       chess.SquareSet // empty squares and the enemy square that ended the ray
	Blocks      chess.SquareSet // ally squares, and the square behind a spotted king
	KingSpotted bool
}

// Trace walks from `from` along v for up to limit steps on behalf of a piece of
// the given colour. An enemy king does not stop the ray at once: the square
// behind it is recorded as a block so the king cannot retreat along the line.
func Trace(b *chess.Board, from chess.Square, colour chess.Colour, v chess.Vector, limit int) TraceResult {
	res := TraceResult{Moves: chess.SquareSet{}, Blocks: chess.SquareSet{}}
	sq := from
	for step := 0; step < limit; step++ {
		sq = sq.Add(v)
		if !b.InBounds(sq) {
			break
		}
		if res.KingSpotted {
			res.Blocks.Add(sq)
			break
		}
		p, occupied := b.PieceAt(sq)
		if !occupied {
			res.Moves.Add(sq)
			continue
		}
		if p.Colour == colour {
			res.Blocks.Add(sq)
			break
		}
		res.Moves.Add(sq)
		if p.Kind != chess.King {
			break
		}
		res.KingSpotted = true
	}
	return res
}

// LineOfPieces returns up to n piece ids met along direction d from sq.
func LineOfPieces(b *chess.Board, sq chess.Square, d chess.Direction, n int) []string {
	var found []string
	v := d.Vector()
	for cur := sq.Add(v); b.InBounds(cur); cur = cur.Add(v) {
		if p, ok := b.PieceAt(cur); ok {
			found = append(found, p.ID)
			if len(found) >= n {
				break
			}
		}
	}
	return found
}

// Threat is what a piece attacks with the rules unenforced: every square it
// covers, defended allies and x-ray squares behind a king included.
type Threat struct {
	Squares chess.SquareSet
	Checks  bool // the piece attacks the enemy king
}

// strategy is the kind-specific movement behaviour.
type strategy struct {
	legal  func(b *chess.Board, p *chess.Piece) chess.SquareSet
	threat func(b *chess.Board, p *chess.Piece) Threat
}

var strategies = map[chess.Kind]strategy{
	chess.Pawn:   {legal: pawnMoves, threat: pawnThreats},
	chess.Knight: {legal: leapMoves, threat: leapThreats},
	chess.Bishop: {legal: rayMoves, threat: rayThreats},
	chess.Rook:   {legal: rayMoves, threat: rayThreats},
	chess.Queen:  {legal: rayMoves, threat: rayThreats},
	chess.King:   {legal: rayMoves, threat: rayThreats},
}

// PseudoLegalMoves returns the pin-aware destinations of a piece without
// touching its cache and without regard to check.
func PseudoLegalMoves(b *chess.Board, p *chess.Piece) chess.SquareSet {
	s, ok := strategies[p.Kind]
	if !ok {
		return chess.SquareSet{}
	}
	return s.legal(b, p)
}

// ThreatenedSquares returns the squares a piece attacks, ignoring pins. It never
// reads or writes the piece's move cache.
func (r *Rules) ThreatenedSquares(b *chess.Board, p *chess.Piece) Threat {
	s, ok := strategies[p.Kind]
	if !ok {
		return Threat{Squares: chess.SquareSet{}}
	}
	return s.threat(b, p)
}

// LegalMoves returns the legal destinations of a piece for the current turn,
// computing and caching them on first use. Check restrictions are applied by
// ComputeCheckDefenses at turn start, which fills the cache ahead of this call.
func (r *Rules) LegalMoves(b *chess.Board, p *chess.Piece) chess.SquareSet {
	if moves, ok := p.CachedMoves(); ok {
		return moves
	}
	var moves chess.SquareSet
	if p.IsKing() {
		var castles chess.SquareSet
		moves, castles, _ = r.kingSafety(b, p)
		p.CastleMoves = castles
	} else {
		moves = PseudoLegalMoves(b, p)
	}
	p.SetMoves(moves)
	return moves
}

func rayMoves(b *chess.Board, p *chess.Piece) chess.SquareSet {
	moves := chess.SquareSet{}
	for _, d := range p.Moves.Directions {
		if !p.Pin.Allows(d) {
			continue
		}
		moves.AddAll(Trace(b, p.Square, p.Colour, d.Vector(), p.Moves.Limit).Moves)
	}
	return moves
}

func rayThreats(b *chess.Board, p *chess.Piece) Threat {
	th := Threat{Squares: chess.SquareSet{}}
	for _, d := range p.Moves.Directions {
		res := Trace(b, p.Square, p.Colour, d.Vector(), p.Moves.Limit)
		th.Squares.AddAll(res.Moves)
		th.Squares.AddAll(res.Blocks)
		if res.KingSpotted {
			th.Checks = true
		}
	}
	return th
}

// A pinned knight can never stay on its pin line.
func leapMoves(b *chess.Board, p *chess.Piece) chess.SquareSet {
	moves := chess.SquareSet{}
	if p.Pin.Pinned {
		return moves
	}
	for _, v := range p.Moves.Leaps {
		sq := p.Square.Add(v)
		if !b.InBounds(sq) {
			continue
		}
		if target, ok := b.PieceAt(sq); ok && target.Colour == p.Colour {
			continue
		}
		moves.Add(sq)
	}
	return moves
}

func leapThreats(b *chess.Board, p *chess.Piece) Threat {
	th := Threat{Squares: chess.SquareSet{}}
	for _, v := range p.Moves.Leaps {
		sq := p.Square.Add(v)
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
