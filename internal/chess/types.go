// Package chess provides core chess types: colours, piece kinds, compass
// directions, squares and the id-keyed board that owns every piece.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the lowercase colour name used in piece ids.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the lowercase name of a kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Valid reports whether k names a real piece kind.
func (k Kind) Valid() bool {
	return k >= Pawn && k <= King
}

// Sliding reports whether the kind moves until blocked by the board edge or a piece.
func (k Kind) Sliding() bool {
	return k == Bishop || k == Rook || k == Queen
}

// ParseKind converts a kind name ("rook", "Queen") to a Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := Pawn; i <= King; i++ {
		if kindNames[i] == name {
			return i, nil
		}
	}
	return NoKind, fmt.Errorf("%q: %w", name, errors.ErrInvalidPieceKind)
}

// Vector is a (Δrank, Δfile) step.
type Vector struct {
	DRank int
	DFile int
}

// Reverse returns the vector pointing the other way.
func (v Vector) Reverse() Vector {
	return Vector{DRank: -v.DRank, DFile: -v.DFile}
}

// Direction is one of the eight named compass directions. Rank 0 is at the top,
// so Up decreases the rank.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
	NumDirections
)

var directionNames = [NumDirections]string{
	"up", "down", "left", "right", "up_left", "up_right", "down_left", "down_right",
}

var directionVectors = [NumDirections]Vector{
	Up:        {-1, 0},
	Down:      {1, 0},
	Left:      {0, -1},
	Right:     {0, 1},
	UpLeft:    {-1, -1},
	UpRight:   {-1, 1},
	DownLeft:  {1, -1},
	DownRight: {1, 1},
}

// KnightOffsets is the fixed leap set of a knight.
var KnightOffsets = []Vector{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// Compass lists all eight directions in table order.
var Compass = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

// Orthogonals and Diagonals split the compass for rooks and bishops.
var (
	Orthogonals = []Direction{Up, Down, Left, Right}
	Diagonals   = []Direction{UpLeft, UpRight, DownLeft, DownRight}
)

// String returns the direction name, e.g. "up_left".
func (d Direction) String() string {
	if d >= 0 && d < NumDirections {
		return directionNames[d]
	}
	return "none"
}

// Vector returns the unit step of the direction.
func (d Direction) Vector() Vector {
	return directionVectors[d]
}

// Reverse returns the opposite compass direction.
func (d Direction) Reverse() Direction {
	rev := d.Vector().Reverse()
	for i, v := range directionVectors {
		if v == rev {
			return Direction(i)
		}
	}
	return d
}

// Diagonal reports whether the direction changes both rank and file.
func (d Direction) Diagonal() bool {
	v := d.Vector()
	return v.DRank != 0 && v.DFile != 0
}

// Vertical reports whether the direction only changes rank.
func (d Direction) Vertical() bool {
	return d.Vector().DFile == 0
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return NumDirections, false
}

// DirectionTable returns the named direction vectors, as exposed to configuration.
func DirectionTable() map[string]Vector {
	table := make(map[string]Vector, NumDirections)
	for i, name := range directionNames {
		table[name] = directionVectors[i]
	}
	return table
}

// DefaultBoardSize is the standard board dimension.
const DefaultBoardSize = 8
