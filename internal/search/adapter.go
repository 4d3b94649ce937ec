package search

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/nnue"
)

// MakeMove is the position adapter (§4.8): it pushes a new accumulator,
// applies every feature toggle the move implies, and returns the resulting
// board clone. The accumulator and the board are always advanced together
// so the invariant "accumulator at current == refresh of current board"
// (§4.1) never has a window where it doesn't hold.
//
// Unlike the teacher's internal/engine package — which keeps one mutable
// board and unwinds moves with UnmakeMove — this adapter leans on
// board.Position.Play cloning cheaply (it is a flat value type) and on
// UnmakeMove here being nothing but an accumulator pop, per §4.8's note
// that the engine clones the board before playing and so never needs
// reversible board moves.
func MakeMove(pos *board.Position, acc *nnue.AccumulatorStack, m board.Move) *board.Position {
	acc.Push()

	us := pos.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	moving := pos.PieceAt(from)
	pt := moving.Type()

	acc.Update(int(us), int(pt), int(from), false)

	switch {
	case m.IsEnPassant():
		capSq := to - 8
		if us == board.Black {
			capSq = to + 8
		}
		acc.Update(int(them), int(board.Pawn), int(capSq), false)
	default:
		if captured := pos.PieceAt(to); captured != board.NoPiece {
			acc.Update(int(them), int(captured.Type()), int(to), false)
		}
	}

	if m.IsPromotion() {
		acc.Update(int(us), int(m.Promotion()), int(to), true)
	} else {
		acc.Update(int(us), int(pt), int(to), true)
	}

	if m.IsCastling() {
		var rookFrom, rookTo board.Square
		if to > from {
			rookFrom = board.NewSquare(7, from.Rank())
			rookTo = board.NewSquare(5, from.Rank())
		} else {
			rookFrom = board.NewSquare(0, from.Rank())
			rookTo = board.NewSquare(3, from.Rank())
		}
		acc.Update(int(us), int(board.Rook), int(rookFrom), false)
		acc.Update(int(us), int(board.Rook), int(rookTo), true)
	}

	return pos.Play(m)
}

// UnmakeMove pops the accumulator pushed by the matching MakeMove. The
// board side of the unmake is implicit: the caller simply resumes using
// the parent *board.Position it already held.
func UnmakeMove(acc *nnue.AccumulatorStack) {
	acc.Pop()
}

// RefreshOccupants builds the Occupant list nnue.AccumulatorStack.Refresh
// needs from a live position — the "activate every occupied square's
// feature" half of refresh(board) (§4.1).
func RefreshOccupants(pos *board.Position) []nnue.Occupant {
	occ := pos.AllOccupied
	out := make([]nnue.Occupant, 0, occ.PopCount())
	for occ != 0 {
		sq := occ.PopLSB()
		p := pos.PieceAt(sq)
		out = append(out, nnue.Occupant{
			Color:     int(p.Color()),
			PieceType: int(p.Type()),
			Square:    int(sq),
		})
	}
	return out
}
