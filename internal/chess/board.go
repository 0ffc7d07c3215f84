package chess

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board maps squares to piece ids and owns the piece registry.
// Invariant: a cell (r,f) holds id P exactly when pieces[P].Square == (r,f).
type Board struct {
	size   int
	grid   [][]string // "" is an empty square
	pieces map[string]*Piece
	order  []string // registry insertion order
}

// NewBoard creates an empty n×n board.
func NewBoard(n int) *Board {
	if n <= 0 {
		n = DefaultBoardSize
	}
	b := &Board{size: n}
	b.Clear()
	return b
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.grid = make([][]string, b.size)
	for r := range b.grid {
		b.grid[r] = make([]string, b.size)
	}
	b.pieces = make(map[string]*Piece)
	b.order = nil
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether sq lies on the board.
func (b *Board) InBounds(sq Square) bool {
	return sq.In(b.size)
}

// Place registers a piece and writes it to its square.
func (b *Board) Place(p *Piece) error {
	if !b.InBounds(p.Square) {
		return fmt.Errorf("place %s: %w", p, errors.ErrOutOfBounds)
	}
	if _, exists := b.pieces[p.ID]; exists {
		return fmt.Errorf("place %s: %w", p.ID, errors.ErrDuplicatePiece)
	}
	if occupant := b.grid[p.Square.Rank][p.Square.File]; occupant != "" {
		return fmt.Errorf("place %s on %s held by %s: %w", p.ID, p.Square, occupant, errors.ErrSquareOccupied)
	}
	b.grid[p.Square.Rank][p.Square.File] = p.ID
	b.pieces[p.ID] = p
	b.order = append(b.order, p.ID)
	return nil
}

// Relocate moves a registered piece to an empty destination. Captured pieces
// must be removed first.
func (b *Board) Relocate(id string, dest Square) error {
	p, ok := b.pieces[id]
	if !ok {
		return fmt.Errorf("relocate %s: %w", id, errors.ErrUnknownPiece)
	}
	if !b.InBounds(dest) {
		return fmt.Errorf("relocate %s to %s: %w", id, dest, errors.ErrOutOfBounds)
	}
	if occupant := b.grid[dest.Rank][dest.File]; occupant != "" && occupant != id {
		return fmt.Errorf("relocate %s to %s held by %s: %w", id, dest, occupant, errors.ErrSquareOccupied)
	}
	b.grid[p.Square.Rank][p.Square.File] = ""
	p.Square = dest
	b.grid[dest.Rank][dest.File] = id
	return nil
}

// OccupantID returns the id on sq, "" for an empty square, or ErrOutOfBounds.
func (b *Board) OccupantID(sq Square) (string, error) {
	if !b.InBounds(sq) {
		return "", errors.ErrOutOfBounds
	}
	return b.grid[sq.Rank][sq.File], nil
}

// Piece returns the registered piece with the given id.
func (b *Board) Piece(id string) (*Piece, bool) {
	p, ok := b.pieces[id]
	return p, ok
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (*Piece, bool) {
	id, err := b.OccupantID(sq)
	if err != nil || id == "" {
		return nil, false
	}
	return b.pieces[id], true
}

// Lookup selects a piece by id or by square. ID takes precedence.
type Lookup struct {
	ID     string
	Square *Square
}

// Find resolves a Lookup. A nil result with a nil error means the square is empty.
func (b *Board) Find(q Lookup) (*Piece, error) {
	switch {
	case q.ID != "":
		p, ok := b.pieces[q.ID]
		if !ok {
			return nil, fmt.Errorf("find %s: %w", q.ID, errors.ErrUnknownPiece)
		}
		return p, nil
	case q.Square != nil:
		id, err := b.OccupantID(*q.Square)
		if err != nil {
			return nil, err
		}
		if id == "" {
			return nil, nil
		}
		return b.pieces[id], nil
	}
	return nil, errors.ErrMissingLookupArgument
}

// Remove clears the piece's square and registry entry.
func (b *Board) Remove(id string) bool {
	p, ok := b.pieces[id]
	if !ok {
		return false
	}
	if b.grid[p.Square.Rank][p.Square.File] == id {
		b.grid[p.Square.Rank][p.Square.File] = ""
	}
	delete(b.pieces, id)
	if i := slices.Index(b.order, id); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	return true
}

// CreatePiece builds and places a new piece. It is the factory used by promotion.
func (b *Board) CreatePiece(kind Kind, sq Square, colour Colour, index string) (*Piece, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("create %s piece on %s: %w", kind, sq, errors.ErrInvalidPieceKind)
	}
	p := NewPiece(kind, colour, index, sq, b.size)
	if err := b.Place(p); err != nil {
		return nil, err
	}
	return p, nil
}

// All yields every registered piece in insertion order. The sequence can be
// ranged over repeatedly; it reflects the registry at iteration time.
func (b *Board) All() iter.Seq[*Piece] {
	return func(yield func(*Piece) bool) {
		for _, id := range slices.Clone(b.order) {
			p, ok := b.pieces[id]
			if !ok {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of registered pieces.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Layout describes the starting back rank. Each entry is a kind name with an
// optional index suffix, e.g. "rook_1" or "queen". Pawns fill the adjacent rank.
type Layout struct {
	BackRank []string
	Pawns    bool
}

// StandardLayout is the standard chess back-rank order.
func StandardLayout() Layout {
	return Layout{
		BackRank: []string{"rook_1", "knight_1", "bishop_1", "queen", "king", "bishop_2", "knight_2", "rook_2"},
		Pawns:    true,
	}
}

// Setup places one side's starting pieces and returns their ids in creation
// order. White occupies the two highest ranks, black the two lowest.
func (b *Board) Setup(layout Layout, colour Colour) ([]string, error) {
	if len(layout.BackRank) != b.size {
		return nil, fmt.Errorf("back rank has %d entries for a %d-file board: %w",
			len(layout.BackRank), b.size, errors.ErrInvalidConfig)
	}

	backRank, pawnRank := b.size-1, b.size-2
	if colour == Black {
		backRank, pawnRank = 0, 1
	}

	var ids []string
	placeBack := func() error {
		for file, name := range layout.BackRank {
			kind, index, err := ParseLayoutName(name)
			if err != nil {
				return err
			}
			p, err := b.CreatePiece(kind, Sq(backRank, file), colour, index)
			if err != nil {
				return err
			}
			ids = append(ids, p.ID)
		}
		return nil
	}
	placePawns := func() error {
		if !layout.Pawns {
			return nil
		}
		for file := 0; file < b.size; file++ {
			p, err := b.CreatePiece(Pawn, Sq(pawnRank, file), colour, strconv.Itoa(file))
			if err != nil {
				return err
			}
			ids = append(ids, p.ID)
		}
		return nil
	}

	order := []func() error{placePawns, placeBack}
	if colour == Black {
		order = []func() error{placeBack, placePawns}
	}
	for _, step := range order {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// String renders the grid of ids, one rank per line.
func (b *Board) String() string {
	var out []byte
	for r := range b.grid {
		out = fmt.Appendf(out, "%v\n", b.grid[r])
	}
	return string(out)
}
