package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const empty = ". . . . . . . ."

func TestTrace(t *testing.T) {
	b := testutil.MustDiagram(t,
		empty,
		empty,
		". . . . bP . . .",
		empty,
		". bK . . wR . wP .",
		empty,
		empty,
		empty,
	)
	from := chess.Sq(4, 4)

	tests := []struct {
		name        string
		dir         chess.Direction
		limit       int
		wantMoves   []chess.Square
		wantBlocks  []chess.Square
		wantSpotted bool
	}{
		{"ally stops ray", chess.Right, 8, []chess.Square{{4, 5}}, []chess.Square{{4, 6}}, false},
		{"enemy captured and stops ray", chess.Up, 8, []chess.Square{{3, 4}, {2, 4}}, nil, false},
		{"king seen through", chess.Left, 8, []chess.Square{{4, 3}, {4, 2}, {4, 1}}, []chess.Square{{4, 0}}, true},
		{"board edge", chess.Down, 8, []chess.Square{{5, 4}, {6, 4}, {7, 4}}, nil, false},
		{"limit", chess.Down, 1, []chess.Square{{5, 4}}, nil, false},
		{"king at limit", chess.Left, 3, []chess.Square{{4, 3}, {4, 2}, {4, 1}}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trace(b, from, chess.White, tt.dir.Vector(), tt.limit)
			testutil.AssertSquares(t, got.Moves, tt.wantMoves, "moves")
			testutil.AssertSquares(t, got.Blocks, tt.wantBlocks, "blocks")
			if got.KingSpotted != tt.wantSpotted {
				t.Errorf("Trace().KingSpotted = %v; want %v", got.KingSpotted, tt.wantSpotted)
			}
		})
	}
}

func TestLineOfPieces(t *testing.T) {
	b := testutil.MustDiagram(t,
		"bR . . . . . . .",
		empty,
		empty,
		empty,
		empty,
		"wP . . . . . . .",
		"wB . . . . . . .",
		"wK . . . . . . .",
	)
	king := chess.Sq(7, 0)

	testutil.AssertEqual(t, LineOfPieces(b, king, chess.Up, 2), []string{"white_bishop1", "white_pawn0"})
	testutil.AssertEqual(t, LineOfPieces(b, king, chess.Up, 5), []string{"white_bishop1", "white_pawn0", "black_rook1"})
	if got := LineOfPieces(b, king, chess.Right, 2); len(got) != 0 {
		t.Errorf("LineOfPieces(Right) = %v; want none", got)
	}
}

func TestPseudoLegalMoves_NeverOnAlly(t *testing.T) {
	b := chess.NewBoard(chess.DefaultBoardSize)
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if _, err := b.Setup(chess.StandardLayout(), c); err != nil {
			t.Fatalf("Setup(%s) error = %v", c, err)
		}
	}

	for p := range b.All() {
		for sq := range PseudoLegalMoves(b, p) {
			if other, ok := b.PieceAt(sq); ok && other.Colour == p.Colour {
				t.Errorf("%s may move onto ally %s", p, other)
			}
		}
	}
}

func TestPseudoLegalMoves_StartingPosition(t *testing.T) {
	b := chess.NewBoard(chess.DefaultBoardSize)
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if _, err := b.Setup(chess.StandardLayout(), c); err != nil {
			t.Fatalf("Setup(%s) error = %v", c, err)
		}
	}

	tests := []struct {
		id   string
		want []chess.Square
	}{
		{"white_pawn4", []chess.Square{{5, 4}, {4, 4}}},
		{"black_pawn4", []chess.Square{{2, 4}, {3, 4}}},
		{"white_knight1", []chess.Square{{5, 0}, {5, 2}}},
		{"black_knight2", []chess.Square{{2, 5}, {2, 7}}},
		{"white_rook1", nil},
		{"white_queen", nil},
		{"white_king", nil},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p := testutil.MustPiece(t, b, tt.id)
			testutil.AssertSquares(t, PseudoLegalMoves(b, p), tt.want)
		})
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		id   string
		want []chess.Square
	}{
		{
			name: "double push from home",
			rows: []string{empty, empty, empty, empty, empty, empty, ". . . . wP . . .", empty},
			id:   "white_pawn4",
			want: []chess.Square{{5, 4}, {4, 4}},
		},
		{
			name: "single push once moved",
			rows: []string{empty, empty, empty, empty, ". . . . wP . . .", empty, empty, empty},
			id:   "white_pawn4",
			want: []chess.Square{{3, 4}},
		},
		{
			name: "blocked in front",
			rows: []string{empty, empty, empty, empty, empty, ". . . . bN . . .", ". . . . wP . . .", empty},
			id:   "white_pawn4",
			want: nil,
		},
		{
			name: "blocked two ahead",
			rows: []string{empty, empty, empty, empty, ". . . . bN . . .", empty, ". . . . wP . . .", empty},
			id:   "white_pawn4",
			want: []chess.Square{{5, 4}},
		},
		{
			name: "captures enemies only",
			rows: []string{empty, empty, empty, empty, empty, ". . . bN . wN . .", ". . . . wP . . .", empty},
			id:   "white_pawn4",
			want: []chess.Square{{5, 4}, {4, 4}, {5, 3}},
		},
		{
			name: "black moves down",
			rows: []string{empty, ". . bP . . . . .", ". wB . . . . . .", empty, empty, empty, empty, empty},
			id:   "black_pawn2",
			want: []chess.Square{{2, 2}, {3, 2}, {2, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustDiagram(t, tt.rows...)
			p := testutil.MustPiece(t, b, tt.id)
			testutil.AssertSquares(t, PseudoLegalMoves(b, p), tt.want)
		})
	}
}

func TestPawnThreats(t *testing.T) {
	b := testutil.MustDiagram(t,
		empty,
		empty,
		empty,
		empty,
		empty,
		". . . . . wN . .",
		"wP . . . wP . . .",
		empty,
	)
	r := New(nil)

	th := r.ThreatenedSquares(b, testutil.MustPiece(t, b, "white_pawn4"))
	testutil.AssertSquares(t, th.Squares, []chess.Square{{5, 3}, {5, 5}})
	testutil.AssertFalse(t, th.Checks)

	th = r.ThreatenedSquares(b, testutil.MustPiece(t, b, "white_pawn0"))
	testutil.AssertSquares(t, th.Squares, []chess.Square{{5, 1}})
}

func TestThreatenedSquares(t *testing.T) {
	b := testutil.MustDiagram(t,
		"bK . . . . . . .",
		empty,
		empty,
		empty,
		empty,
		empty,
		"bP . . . . . . .",
		"bR . . wB . . . wK",
	)
	r := New(nil)

	rook := testutil.MustPiece(t, b, "black_rook1")
	th := r.ThreatenedSquares(b, rook)
	testutil.AssertSquares(t, th.Squares, []chess.Square{{7, 1}, {7, 2}, {7, 3}, {6, 0}}, "defended ally and capture included")
	testutil.AssertFalse(t, th.Checks)

	bishop := testutil.MustPiece(t, b, "white_bishop1")
	th = r.ThreatenedSquares(b, bishop)
	testutil.AssertTrue(t, th.Squares.Has(chess.Sq(6, 2)))
	testutil.AssertFalse(t, th.Checks)
}

func TestThreatenedSquares_LeavesCacheAlone(t *testing.T) {
	b := testutil.MustDiagram(t,
		"bK . . . . . . .",
		empty,
		empty,
		". . . wQ . . . .",
		empty,
		empty,
		empty,
		". . . . . . . wK",
	)
	r := New(nil)
	queen := testutil.MustPiece(t, b, "white_queen")
	sentinel := chess.NewSquareSet(chess.Sq(0, 7))
	queen.SetMoves(sentinel)

	th := r.ThreatenedSquares(b, queen)
	testutil.AssertTrue(t, th.Checks, "queen sees the king along the diagonal")
	got, ok := queen.CachedMoves()
	testutil.AssertTrue(t, ok)
	testutil.AssertSquares(t, got, []chess.Square{{0, 7}})
}

func TestLegalMoves_Cache(t *testing.T) {
	b := testutil.MustDiagram(t,
		"bK . . . . . . .",
		empty,
		empty,
		empty,
		". . . . wR . wP .",
		empty,
		empty,
		". . . . . . . wK",
	)
	r := New(nil)
	rook := testutil.MustPiece(t, b, "white_rook1")

	first := r.LegalMoves(b, rook)
	testutil.AssertFalse(t, first.Has(chess.Sq(4, 6)))

	// A stale cache is returned until the piece is invalidated.
	b.Remove("white_pawn6")
	testutil.AssertFalse(t, r.LegalMoves(b, rook).Has(chess.Sq(4, 6)))

	rook.Invalidate()
	testutil.AssertTrue(t, r.LegalMoves(b, rook).Has(chess.Sq(4, 6)))
}

func TestLeapMoves_Edges(t *testing.T) {
	b := testutil.MustDiagram(t,
		"bK . . . . . . .",
		empty,
		empty,
		empty,
		empty,
		empty,
		". . wP . . . . .",
		"wN . . . . . . wK",
	)
	knight := testutil.MustPiece(t, b, "white_knight1")
	testutil.AssertSquares(t, PseudoLegalMoves(b, knight), []chess.Square{{5, 1}})
}
