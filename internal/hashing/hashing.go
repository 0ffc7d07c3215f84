// Package hashing provides duplicate detection for final positions.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DuplicateDetector tracks seen positions for duplicate match detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal move counts
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a match.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// MoveCount is the number of half-moves played
	MoveCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// Index identifies the match within its batch
	Index int
}

// NewSignature fingerprints the final position of a match.
func NewSignature(b *chess.Board, toMove chess.Colour, moveCount, index int) GameSignature {
	return GameSignature{
		Hash:      GenerateZobristHash(b, toMove),
		MoveCount: moveCount,
		WeakHash:  WeakHash(b),
		Index:     index,
	}
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd checks whether sig matches an earlier signature and records it
// otherwise. On a match it returns the earlier signature's index and true.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) (int, bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Index, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return 0, false
}

// signaturesMatch checks if two signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
