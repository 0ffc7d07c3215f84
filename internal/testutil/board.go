package testutil

import (
	"strconv"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var diagramKinds = map[byte]chess.Kind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// ParseDiagram builds a board from one row of space-separated tokens per
// rank, rank 0 first. A token is "." for an empty square or a colour letter
// (w, b) followed by a kind letter, e.g. "wK" or "bR". Kings and the first
// queen of a colour get no index, pawns are indexed by file and other pieces
// count up from 1. Pawns away from their home rank are marked as moved.
func ParseDiagram(rows ...string) (*chess.Board, error) {
	b := chess.NewBoard(len(rows))
	counts := map[string]int{}
	for r, row := range rows {
		for f, tok := range strings.Fields(row) {
			if tok == "." {
				continue
			}
			if len(tok) != 2 {
				return nil, &diagramError{tok: tok, sq: chess.Sq(r, f)}
			}
			colour := chess.White
			switch tok[0] {
			case 'w':
			case 'b':
				colour = chess.Black
			default:
				return nil, &diagramError{tok: tok, sq: chess.Sq(r, f)}
			}
			kind, ok := diagramKinds[tok[1]]
			if !ok {
				return nil, &diagramError{tok: tok, sq: chess.Sq(r, f)}
			}

			key := chess.PieceID(colour, kind, "")
			counts[key]++
			index := strconv.Itoa(counts[key])
			switch {
			case kind == chess.Pawn:
				index = strconv.Itoa(f)
				if _, taken := b.Piece(chess.PieceID(colour, kind, index)); taken {
					index += "x" + strconv.Itoa(r)
				}
			case (kind == chess.King || kind == chess.Queen) && counts[key] == 1:
				index = ""
			}

			p, err := b.CreatePiece(kind, chess.Sq(r, f), colour, index)
			if err != nil {
				return nil, err
			}
			if kind == chess.Pawn {
				home := b.Size() - 2
				if colour == chess.Black {
					home = 1
				}
				p.HasMoved = r != home
			}
		}
	}
	return b, nil
}

// MustDiagram is ParseDiagram that fails the test on error.
func MustDiagram(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	b, err := ParseDiagram(rows...)
	if err != nil {
		t.Fatalf("ParseDiagram() error = %v", err)
	}
	return b
}

// MustPiece returns the piece with id or fails the test.
func MustPiece(t *testing.T, b *chess.Board, id string) *chess.Piece {
	t.Helper()
	p, ok := b.Piece(id)
	if !ok {
		t.Fatalf("piece %s not on board:\n%s", id, b)
	}
	return p
}

type diagramError struct {
	tok string
	sq  chess.Square
}

func (e *diagramError) Error() string {
	return "bad diagram token " + strconv.Quote(e.tok) + " at " + e.sq.String()
}
