package game

import "github.com/lgbarn/chessrules-go/internal/chess"

// SquareFromPoint maps a point in a grid of squareW by squareH cells onto a
// board square. Points outside the n by n grid are rejected.
func SquareFromPoint(x, y, squareW, squareH, n int) (chess.Square, bool) {
	if x < 0 || y < 0 || squareW <= 0 || squareH <= 0 {
		return chess.Square{}, false
	}
	sq := chess.Sq(y/squareH, x/squareW)
	if !sq.In(n) {
		return chess.Square{}, false
	}
	return sq, true
}
