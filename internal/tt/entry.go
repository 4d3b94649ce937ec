// Package tt implements the transposition table: a fixed-size,
// open-addressed cache keyed by Zobrist hash, grounded on the teacher's
// internal/engine/transposition.go but extended to the four-condition
// replacement policy and explicit generation aging this spec calls for.
package tt

// Score-domain constants shared with the search driver. They live here
// (rather than in internal/search) because mate-score encode/decode is a
// property of the table's wire format, and internal/search imports this
// package anyway.
const (
	Infinity = 30000
	Mate     = 29000
	MaxPly   = 128
	MateIn   = Mate - MaxPly
)

// Bound records the relation the stored score has to the true minimax
// value at the time of storage.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is one transposition table slot.
type Entry struct {
	Key      uint16
	Move     uint16 // packed board.Move, or 0 (board.NoMove) if none
	Score    int16
	Depth    uint8
	age      uint8 // 6-bit generation
	Bound    Bound
}

// EncodeScore converts a search-local (ply-relative) score into the
// distance-from-root form stored in the table, so the cached bound reads
// back correctly from any subtree root (§4.2).
func EncodeScore(raw, ply int) int16 {
	switch {
	case raw >= MateIn:
		return int16(raw + ply)
	case raw <= -MateIn:
		return int16(raw - ply)
	default:
		return int16(raw)
	}
}

// DecodeScore is the inverse of EncodeScore, applied on probe.
func DecodeScore(stored int16, ply int) int {
	raw := int(stored)
	switch {
	case raw >= MateIn:
		return raw - ply
	case raw <= -MateIn:
		return raw + ply
	default:
		return raw
	}
}
