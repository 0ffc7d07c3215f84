package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func startingBoard(b *testing.B) *chess.Board {
	b.Helper()
	board := chess.NewBoard(chess.DefaultBoardSize)
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if _, err := board.Setup(chess.StandardLayout(), c); err != nil {
			b.Fatalf("Setup(%s) error = %v", c, err)
		}
	}
	return board
}

func BenchmarkStartTurn(b *testing.B) {
	board := startingBoard(b)
	r := New(nil)
	king, _ := board.Piece("white_king")
	var ids []string
	for p := range board.All() {
		if p.Colour == chess.White {
			ids = append(ids, p.ID)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.StartTurn(board, king, ids)
		RevokeTurn(board, ids)
	}
}

func BenchmarkThreatenedSquares(b *testing.B) {
	board := startingBoard(b)
	r := New(nil)
	queen, _ := board.Piece("black_queen")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.ThreatenedSquares(board, queen)
	}
}
