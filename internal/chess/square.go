package chess

import (
	"fmt"
	"sort"
)

// Square is a (rank, file) pair. Rank 0 is the top row.
type Square struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

// Sq is shorthand for Square{rank, file}.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Add returns the square one step along v.
func (s Square) Add(v Vector) Square {
	return Square{Rank: s.Rank + v.DRank, File: s.File + v.DFile}
}

// In reports whether the square lies on an n×n board.
func (s Square) In(n int) bool {
	return s.Rank >= 0 && s.Rank < n && s.File >= 0 && s.File < n
}

// String returns "(rank,file)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
}

// SquareSet is an unordered set of squares.
type SquareSet map[Square]struct{}

// NewSquareSet returns a set holding the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	set := make(SquareSet, len(squares))
	for _, sq := range squares {
		set[sq] = struct{}{}
	}
	return set
}

// Add inserts a square.
func (s SquareSet) Add(sq Square) {
	s[sq] = struct{}{}
}

// AddAll inserts every square of other.
func (s SquareSet) AddAll(other SquareSet) {
	for sq := range other {
		s[sq] = struct{}{}
	}
}

// Has reports membership.
func (s SquareSet) Has(sq Square) bool {
	_, ok := s[sq]
	return ok
}

// Len returns the number of squares.
func (s SquareSet) Len() int {
	return len(s)
}

// Union returns a new set with the squares of both sets.
func (s SquareSet) Union(other SquareSet) SquareSet {
	out := make(SquareSet, len(s)+len(other))
	out.AddAll(s)
	out.AddAll(other)
	return out
}

// Intersect returns a new set with the squares present in both sets.
func (s SquareSet) Intersect(other SquareSet) SquareSet {
	out := make(SquareSet)
	for sq := range s {
		if other.Has(sq) {
			out.Add(sq)
		}
	}
	return out
}

// Minus returns a new set with the squares of s not present in other.
func (s SquareSet) Minus(other SquareSet) SquareSet {
	out := make(SquareSet, len(s))
	for sq := range s {
		if !other.Has(sq) {
			out.Add(sq)
		}
	}
	return out
}

// Clone returns a copy of the set.
func (s SquareSet) Clone() SquareSet {
	return s.Union(nil)
}

// Sorted returns the squares ordered by rank, then file.
func (s SquareSet) Sorted() []Square {
	out := make([]Square, 0, len(s))
	for sq := range s {
		out = append(out, sq)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].File < out[j].File
	})
	return out
}

// String lists the squares in sorted order, e.g. "{(4,4) (5,4)}".
func (s SquareSet) String() string {
	out := []byte{'{'}
	for i, sq := range s.Sorted() {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, sq.String()...)
	}
	return string(append(out, '}'))
}
