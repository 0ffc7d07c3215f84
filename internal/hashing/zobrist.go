package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// blackToMove is mixed into the hash when black is to move.
const blackToMove uint64 = 0xF8D626AAAF278509

// GenerateZobristHash hashes the piece placement and the side to move. The
// key of each (colour, kind, square) is derived rather than tabled, so any
// board size works. Piece ids are ignored: a promoted queen hashes like any
// other queen.
func GenerateZobristHash(b *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for p := range b.All() {
		hash ^= pieceKey(p.Colour, p.Kind, p.Square)
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash sums the occupied square numbers weighted by kind.
func WeakHash(b *chess.Board) uint32 {
	var hash uint32
	n := uint32(b.Size())
	for p := range b.All() {
		sq := uint32(p.Square.Rank)*n + uint32(p.Square.File) + 1
		hash += sq * (uint32(p.Kind) + 7*uint32(p.Colour))
	}
	return hash
}

func pieceKey(c chess.Colour, k chess.Kind, sq chess.Square) uint64 {
	return splitmix64(uint64(c)<<56 | uint64(k)<<48 | uint64(sq.Rank)<<24 | uint64(sq.File))
}

// splitmix64 is the SplitMix64 finalizer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}
