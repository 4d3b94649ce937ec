package search

import "github.com/corvidchess/corvid/internal/board"

// PVTable is the triangular table accumulating the principal variation
// discovered at each ply (§4.5).
type PVTable struct {
	table  [MaxPly][MaxPly]board.Move
	length [MaxPly]int
}

// Clear resets the line length at ply; called at the start of every node
// (§4.6 preamble step 4).
func (pv *PVTable) Clear(ply int) {
	pv.length[ply] = 0
}

// Update records mv as the best move at ply and appends the child line
// discovered at ply+1.
func (pv *PVTable) Update(ply int, mv board.Move) {
	pv.table[ply][ply] = mv
	for i := ply + 1; i < pv.length[ply+1]; i++ {
		pv.table[ply][i] = pv.table[ply+1][i]
	}
	pv.length[ply] = pv.length[ply+1]
	if pv.length[ply] <= ply {
		pv.length[ply] = ply + 1
	}
}

// Line returns the principal variation from ply downward.
func (pv *PVTable) Line(ply int) []board.Move {
	if pv.length[ply] <= ply {
		return nil
	}
	return append([]board.Move(nil), pv.table[ply][ply:pv.length[ply]]...)
}

// Root returns the full root principal variation.
func (pv *PVTable) Root() []board.Move {
	return pv.Line(0)
}
