package search

import "github.com/corvidchess/corvid/internal/board"

// BoardOracle documents the external, read-only contract the search driver
// consumes from the rules-of-chess collaborator (§6.1): move generation,
// legality, check detection, and position status are all board.Position's
// responsibility, not the search driver's.
//
// *board.Position satisfies this interface through the AsOracle wrapper
// below, not on its own. The driver itself (driver.go)
// binds directly to *board.Position rather than routing every call through
// this interface — exactly as the teacher's internal/engine/worker.go
// never indirects through an interface in its search loop, because a
// dynamic dispatch per node/per move is wasted cost when there is only one
// concrete board implementation. BoardOracle exists so the contract is
// written down and so tests can substitute a minimal fake when they want
// to drive the search driver without a full legal-move generator.
type BoardOracle interface {
	Hash() uint64
	SideToMove() board.Color
	Status() board.Status
	Checkers() board.Bitboard
	HalfmoveClock() int
	PieceOn(sq board.Square) board.Piece
	ColorOn(sq board.Square) board.Color
	LegalMoves() []board.Move
	LegalCaptures() []board.Move
}

// Hash, SideToMove, Checkers, and HalfmoveClock are plain field reads on
// board.Position; the thin wrappers below let *board.Position satisfy
// BoardOracle without exposing its fields directly to callers that only
// hold the interface.

type positionOracle struct{ *board.Position }

func (p positionOracle) Hash() uint64              { return p.Position.Hash }
func (p positionOracle) SideToMove() board.Color    { return p.Position.SideToMove }
func (p positionOracle) Checkers() board.Bitboard   { return p.Position.Checkers }
func (p positionOracle) HalfmoveClock() int         { return p.Position.HalfMoveClock }
func (p positionOracle) PieceOn(sq board.Square) board.Piece {
	return p.Position.PieceAt(sq)
}

// AsOracle adapts a concrete position to the BoardOracle interface.
func AsOracle(pos *board.Position) BoardOracle {
	return positionOracle{pos}
}
