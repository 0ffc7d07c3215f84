package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// BlockPath returns the squares strictly between from and to when they share a
// rank, file or diagonal. It steps from the attacker towards the king.
func BlockPath(from, to chess.Square) chess.SquareSet {
	path := chess.SquareSet{}
	rankDiff := to.Rank - from.Rank
	fileDiff := to.File - from.File
	if from == to || (rankDiff != 0 && fileDiff != 0 && abs(rankDiff) != abs(fileDiff)) {
		return path
	}

	step := chess.Vector{DRank: sign(rankDiff), DFile: sign(fileDiff)}
	for sq := from.Add(step); sq != to; sq = sq.Add(step) {
		path.Add(sq)
	}
	return path
}
