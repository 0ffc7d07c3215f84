package chess

import (
	"fmt"
	"strings"
)

// MoveDescriptor declares how a kind moves: an ordered direction set walked up
// to Limit steps. Knights leave Directions empty and use Leaps instead.
type MoveDescriptor struct {
	Directions []Direction
	Leaps      []Vector
	Limit      int
}

// Has reports whether d is one of the descriptor's directions.
func (m MoveDescriptor) Has(d Direction) bool {
	for _, own := range m.Directions {
		if own == d {
			return true
		}
	}
	return false
}

// DescriptorFor returns the movement descriptor of a kind on an n×n board.
// Pawn directions depend on colour: white moves up, black moves down.
func DescriptorFor(kind Kind, colour Colour, n int) MoveDescriptor {
	switch kind {
	case Pawn:
		if colour == White {
			return MoveDescriptor{Directions: []Direction{Up, UpLeft, UpRight}, Limit: 1}
		}
		return MoveDescriptor{Directions: []Direction{Down, DownLeft, DownRight}, Limit: 1}
	case Knight:
		return MoveDescriptor{Leaps: KnightOffsets, Limit: 1}
	case Bishop:
		return MoveDescriptor{Directions: Diagonals, Limit: n}
	case Rook:
		return MoveDescriptor{Directions: Orthogonals, Limit: n}
	case Queen:
		return MoveDescriptor{Directions: Compass, Limit: n}
	case King:
		return MoveDescriptor{Directions: Compass, Limit: 1}
	}
	return MoveDescriptor{}
}

// Pin records that a piece may only move along the line through its king.
type Pin struct {
	Pinned bool
	Along  Direction // direction from the king towards the pinned piece
}

// Allows reports whether moving in d keeps the piece on its pin line.
func (p Pin) Allows(d Direction) bool {
	if !p.Pinned {
		return true
	}
	return d == p.Along || d == p.Along.Reverse()
}

// Piece is a single piece on the board. The Board owns every Piece; other
// components look pieces up by id or square for the duration of a call.
type Piece struct {
	ID       string
	Index    string // disambiguating suffix of the id, e.g. "1" in white_rook1
	Kind     Kind
	Colour   Colour
	Square   Square
	Moves    MoveDescriptor
	HasMoved bool
	Pin      Pin

	// King only.
	Checked     bool
	CheckingIDs []string
	CastleMoves SquareSet

	validMoves SquareSet // nil when absent
}

// PieceID builds the canonical id "<colour>_<kind><index>".
func PieceID(colour Colour, kind Kind, index string) string {
	return fmt.Sprintf("%s_%s%s", colour, kind, index)
}

// NewPiece creates a piece of a known kind for an n×n board.
func NewPiece(kind Kind, colour Colour, index string, sq Square, n int) *Piece {
	return &Piece{
		ID:     PieceID(colour, kind, index),
		Index:  index,
		Kind:   kind,
		Colour: colour,
		Square: sq,
		Moves:  DescriptorFor(kind, colour, n),
	}
}

// CachedMoves returns the cached legal destinations and whether the cache is present.
func (p *Piece) CachedMoves() (SquareSet, bool) {
	return p.validMoves, p.validMoves != nil
}

// SetMoves stores the legal destinations for the current turn.
func (p *Piece) SetMoves(moves SquareSet) {
	if moves == nil {
		moves = SquareSet{}
	}
	p.validMoves = moves
}

// Invalidate drops the cached legal destinations.
func (p *Piece) Invalidate() {
	p.validMoves = nil
}

// SetPin marks the piece pinned along d. The cache is dropped because the
// pin changes which directions may be traced.
func (p *Piece) SetPin(d Direction) {
	p.Pin = Pin{Pinned: true, Along: d}
	p.Invalidate()
}

// ClearPin resets the pin record to unpinned.
func (p *Piece) ClearPin() {
	if p.Pin.Pinned {
		p.Invalidate()
	}
	p.Pin = Pin{}
}

// RegisterCheck records a checking piece on a king.
func (p *Piece) RegisterCheck(id string) {
	if id == "" {
		return
	}
	p.Checked = true
	p.CheckingIDs = append(p.CheckingIDs, id)
}

// ClearCheck resets the king's check flags.
func (p *Piece) ClearCheck() {
	p.Checked = false
	p.CheckingIDs = nil
}

// IsKing reports whether the piece is a king.
func (p *Piece) IsKing() bool {
	return p.Kind == King
}

// String returns the id and square, e.g. "white_rook1@(7,0)".
func (p *Piece) String() string {
	return p.ID + "@" + p.Square.String()
}

// ParseLayoutName splits a layout entry like "rook_1" or "queen" into its kind
// and index.
func ParseLayoutName(name string) (Kind, string, error) {
	kindName, index, _ := strings.Cut(name, "_")
	kind, err := ParseKind(kindName)
	if err != nil {
		return NoKind, "", err
	}
	return kind, index, nil
}
