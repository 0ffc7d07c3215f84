package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New()
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	return g
}

func TestWriteBoardText_Start(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoardText(&buf, newGame(t).Snapshot()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 10)
	testutil.AssertEqual(t, lines[0], " 0  r  n  b  q  k  b  n  r ")
	testutil.AssertEqual(t, lines[1], " 1  p  p  p  p  p  p  p  p ")
	testutil.AssertEqual(t, lines[4], " 4  .  .  .  .  .  .  .  . ")
	testutil.AssertEqual(t, lines[7], " 7  R  N  B  Q  K  B  N  R ")
	testutil.AssertEqual(t, lines[8], "    0  1  2  3  4  5  6  7 ")
	testutil.AssertEqual(t, lines[9], "white to move")
}

func TestWriteBoardText_SelectionAndHighlights(t *testing.T) {
	g := newGame(t)
	testutil.AssertEqual(t, g.HandleSquare(chess.Sq(6, 4)), game.Selected)

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoardText(&buf, g.Snapshot()))
	lines := strings.Split(buf.String(), "\n")

	testutil.AssertEqual(t, lines[4], " 4  .  .  .  .  *  .  .  . ")
	testutil.AssertEqual(t, lines[5], " 5  .  .  .  .  *  .  .  . ")
	testutil.AssertEqual(t, lines[6], " 6  P  P  P  P [P] P  P  P ")
}

func TestWriteBoardText_Checkmate(t *testing.T) {
	g := newGame(t)
	for _, mv := range [][2]chess.Square{
		{chess.Sq(6, 5), chess.Sq(5, 5)},
		{chess.Sq(1, 4), chess.Sq(3, 4)},
		{chess.Sq(6, 6), chess.Sq(4, 6)},
		{chess.Sq(0, 3), chess.Sq(4, 7)},
	} {
		testutil.AssertTrue(t, g.Play(mv[0], mv[1]), "play %s->%s", mv[0], mv[1])
	}

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoardText(&buf, g.Snapshot()))
	out := buf.String()

	testutil.AssertTrue(t, strings.Contains(out, " K+"), "checked king marked:\n%s", out)
	testutil.AssertTrue(t, strings.HasSuffix(out, "checkmate, black wins\n"), "status line:\n%s", out)
}

func TestWriteSnapshotJSON(t *testing.T) {
	g := newGame(t)
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteSnapshotJSON(&buf, g.Snapshot()))
	out := buf.String()

	for _, want := range []string{
		`"board_size": 8`,
		`"to_move": "white"`,
		`"id": "white_king"`,
		`"square": {`,
	} {
		testutil.AssertTrue(t, strings.Contains(out, want), "missing %s in\n%s", want, out)
	}
}

func TestWriteHistory(t *testing.T) {
	history := []game.MoveRecord{
		{Ply: 1, PieceID: "white_pawn4", From: chess.Sq(6, 4), To: chess.Sq(4, 4)},
		{Ply: 2, PieceID: "black_pawn4", From: chess.Sq(1, 4), To: chess.Sq(3, 4)},
	}

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteHistory(&buf, history, 30))
	testutil.AssertEqual(t, buf.String(),
		"1. white_pawn4 (6,4)->(4,4);\n2. black_pawn4 (1,4)->(3,4);\n")

	buf.Reset()
	testutil.AssertNoError(t, WriteHistory(&buf, nil, 30))
	testutil.AssertEqual(t, buf.String(), "")
}

func TestOutputWriter_Wrap(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"abc", "def", "ghij", "k"} {
		ow.Write(s)
	}
	ow.Newline()
	testutil.AssertNoError(t, ow.Err())
	testutil.AssertEqual(t, buf.String(), "abc def\nghij k\n")
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		kind, colour string
		want         byte
	}{
		{"king", "white", 'K'},
		{"knight", "black", 'n'},
		{"queen", "black", 'q'},
		{"dragon", "white", '?'},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, Glyph(tt.kind, tt.colour), tt.want, "%s %s", tt.colour, tt.kind)
	}
}
