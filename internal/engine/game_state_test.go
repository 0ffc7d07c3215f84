package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestStartTurn(t *testing.T) {
	tests := []struct {
		name         string
		rows         []string
		wantChecked  bool
		wantMate     bool
		wantPlayable int
		wantPinned   []string
		wantCheckers []string
	}{
		{
			name: "back rank mate",
			rows: []string{
				"bK . . . . . . .",
				empty, empty, empty, empty, empty,
				". . . . . . wP wP",
				"bR . . . . . . wK",
			},
			wantChecked:  true,
			wantMate:     true,
			wantCheckers: []string{"black_rook1"},
		},
		{
			name: "back rank check with a blocker",
			rows: []string{
				"bK . . . . . . .",
				empty, empty, empty, empty,
				". . . wR . . . .",
				". . . . . . wP wP",
				"bR . . . . . . wK",
			},
			wantChecked:  true,
			wantPlayable: 1,
			wantCheckers: []string{"black_rook1"},
		},
		{
			name: "no moves without check is not mate",
			rows: []string{
				"bK . . . . . . .",
				empty, empty, empty, empty,
				". . . . . . bQ .",
				empty,
				". . . . . . . wK",
			},
		},
		{
			name: "pins reported",
			rows: []string{
				"bK . . . bR . . .",
				empty, empty, empty, empty, empty,
				". . . . wR . . .",
				". . . . wK . . .",
			},
			wantPlayable: 4,
			wantPinned:   []string{"white_rook1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustDiagram(t, tt.rows...)
			r := New(nil)
			king := testutil.MustPiece(t, b, "white_king")

			status := r.StartTurn(b, king, whiteIDs(b))
			testutil.AssertEqual(t, status.Checked, tt.wantChecked, "checked")
			testutil.AssertEqual(t, status.Checkmate(), tt.wantMate, "checkmate")
			testutil.AssertEqual(t, status.Playable, tt.wantPlayable, "playable")
			testutil.AssertSameIDs(t, status.Pinned, tt.wantPinned, "pinned")
			testutil.AssertSameIDs(t, status.Checkers, tt.wantCheckers, "checkers")
		})
	}
}

func TestStartTurn_ClearsPreviousCheck(t *testing.T) {
	b := testutil.MustDiagram(t,
		"bK . . . . . . .",
		empty, empty, empty, empty, empty, empty,
		"bR . . . wK . . .",
	)
	r := New(nil)
	king := testutil.MustPiece(t, b, "white_king")

	testutil.AssertTrue(t, r.StartTurn(b, king, whiteIDs(b)).Checked)
	b.Remove("black_rook1")
	king.Invalidate()
	status := r.StartTurn(b, king, whiteIDs(b))
	testutil.AssertFalse(t, status.Checked)
	testutil.AssertFalse(t, king.Checked)
	if len(king.CheckingIDs) != 0 {
		t.Errorf("CheckingIDs = %v; want none", king.CheckingIDs)
	}
}

func TestRevokeTurn(t *testing.T) {
	b := testutil.MustDiagram(t,
		"bK . . . bR . . .",
		empty, empty, empty, empty, empty,
		". . . . wR . . .",
		"wR . . . wK . . .",
	)
	r := New(nil)
	king := testutil.MustPiece(t, b, "white_king")
	ids := whiteIDs(b)

	r.StartTurn(b, king, ids)
	pinned := testutil.MustPiece(t, b, "white_rook1")
	testutil.AssertTrue(t, pinned.Pin.Pinned)
	testutil.AssertEqual(t, king.CastleMoves.Len(), 1)

	RevokeTurn(b, ids)
	for _, id := range ids {
		p := testutil.MustPiece(t, b, id)
		if _, ok := p.CachedMoves(); ok {
			t.Errorf("%s kept its move cache", id)
		}
		testutil.AssertEqual(t, p.Pin, chess.Pin{}, id)
	}
	testutil.AssertEqual(t, king.CastleMoves.Len(), 0)
}
