package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestDetectPins(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		wantPins  []string
		id        string
		wantMoves []chess.Square
	}{
		{
			name: "rook pinned on file moves along it both ways",
			rows: []string{
				"bK . . . . . . .",
				". . . . bR . . .",
				empty, empty, empty,
				". . . . wR . . .",
				empty,
				". . . . wK . . .",
			},
			wantPins:  []string{"white_rook1"},
			id:        "white_rook1",
			wantMoves: []chess.Square{{6, 4}, {4, 4}, {3, 4}, {2, 4}, {1, 4}},
		},
		{
			name: "rook pinned by bishop cannot move",
			rows: []string{
				"bK . . . . . . .",
				empty, empty, empty,
				". . . . . . . bB",
				empty,
				". . . . . wR . .",
				". . . . wK . . .",
			},
			wantPins:  []string{"white_rook1"},
			id:        "white_rook1",
			wantMoves: nil,
		},
		{
			name: "queen pinned on diagonal",
			rows: []string{
				"bK . . . . . . .",
				empty, empty, empty,
				". . . . . . . bB",
				empty,
				". . . . . wQ . .",
				". . . . wK . . .",
			},
			wantPins:  []string{"white_queen"},
			id:        "white_queen",
			wantMoves: []chess.Square{{5, 6}, {4, 7}},
		},
		{
			name: "pinned knight cannot move",
			rows: []string{
				"bK . . . bQ . . .",
				empty, empty, empty, empty, empty,
				". . . . wN . . .",
				". . . . wK . . .",
			},
			wantPins:  []string{"white_knight1"},
			id:        "white_knight1",
			wantMoves: nil,
		},
		{
			name: "pawn pinned on file may push",
			rows: []string{
				"bK . . . . . . .",
				empty,
				". . . . bR . . .",
				empty, empty,
				". . . bN . . . .",
				". . . . wP . . .",
				". . . . wK . . .",
			},
			wantPins:  []string{"white_pawn4"},
			id:        "white_pawn4",
			wantMoves: []chess.Square{{5, 4}, {4, 4}},
		},
		{
			name: "pawn pinned on diagonal may only capture the pinner",
			rows: []string{
				"bK . . . . . . .",
				empty, empty, empty, empty,
				". . . . . . bB .",
				". . . . . wP . .",
				". . . . wK . . .",
			},
			wantPins:  []string{"white_pawn5"},
			id:        "white_pawn5",
			wantMoves: []chess.Square{{5, 6}},
		},
		{
			name: "pawn pinned on rank cannot move",
			rows: []string{
				"bK . . . . . . .",
				empty, empty, empty, empty, empty,
				"wK . wP . bR . . .",
				empty,
			},
			wantPins:  []string{"white_pawn2"},
			id:        "white_pawn2",
			wantMoves: nil,
		},
		{
			name: "two allies in line are not pinned",
			rows: []string{
				"bK . . . bR . . .",
				empty, empty, empty, empty,
				". . . . wB . . .",
				". . . . wR . . .",
				". . . . wK . . .",
			},
			wantPins:  nil,
			id:        "white_rook1",
			wantMoves: []chess.Square{{6, 0}, {6, 1}, {6, 2}, {6, 3}, {6, 5}, {6, 6}, {6, 7}},
		},
		{
			name: "non-sliding attacker does not pin",
			rows: []string{
				"bK . . . . . . .",
				empty, empty, empty, empty,
				". . . . bN . . .",
				". . . . wR . . .",
				". . . . wK . . .",
			},
			wantPins:  nil,
			id:        "white_rook1",
			wantMoves: []chess.Square{{5, 4}, {6, 0}, {6, 1}, {6, 2}, {6, 3}, {6, 5}, {6, 6}, {6, 7}},
		},
		{
			name: "slider off its line does not pin",
			rows: []string{
				"bK . . . bB . . .",
				empty, empty, empty, empty, empty,
				". . . . wR . . .",
				". . . . wK . . .",
			},
			wantPins: nil,
			id:       "white_rook1",
			wantMoves: []chess.Square{
				{5, 4}, {4, 4}, {3, 4}, {2, 4}, {1, 4}, {0, 4},
				{6, 0}, {6, 1}, {6, 2}, {6, 3}, {6, 5}, {6, 6}, {6, 7},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustDiagram(t, tt.rows...)
			r := New(nil)
			king := testutil.MustPiece(t, b, "white_king")

			testutil.AssertSameIDs(t, r.DetectPins(b, king), tt.wantPins)
			p := testutil.MustPiece(t, b, tt.id)
			testutil.AssertSquares(t, r.LegalMoves(b, p), tt.wantMoves)
		})
	}
}

func TestDetectPins_InvalidatesCache(t *testing.T) {
	b := testutil.MustDiagram(t,
		"bK . . . bR . . .",
		empty, empty, empty, empty, empty,
		". . . . wR . . .",
		". . . . wK . . .",
	)
	r := New(nil)
	rook := testutil.MustPiece(t, b, "white_rook1")
	king := testutil.MustPiece(t, b, "white_king")

	before := r.LegalMoves(b, rook)
	testutil.AssertTrue(t, before.Has(chess.Sq(6, 0)), "unpinned rook moves sideways")

	r.DetectPins(b, king)
	if _, ok := rook.CachedMoves(); ok {
		t.Fatal("pin left a stale move cache")
	}
	testutil.AssertFalse(t, r.LegalMoves(b, rook).Has(chess.Sq(6, 0)), "pinned rook cannot leave the file")
}
