package search

import (
	"math"

	"github.com/corvidchess/corvid/internal/board"
)

// MaxHistory bounds the saturating history score (§4.3).
const MaxHistory = 16384

// Killers holds two quiet beta-cutoff moves per ply.
type Killers struct {
	moves [MaxPly][2]board.Move
}

// Update shifts slot 0 into slot 1 and inserts mv at slot 0, unless mv is
// already the top killer at this ply.
func (k *Killers) Update(ply int, mv board.Move) {
	if k.moves[ply][0] == mv {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = mv
}

func (k *Killers) Get(ply int) (first, second board.Move) {
	return k.moves[ply][0], k.moves[ply][1]
}

func (k *Killers) Clear() {
	k.moves = [MaxPly][2]board.Move{}
}

// History is the butterfly history table, indexed by (side to move, from,
// to square).
type History struct {
	score [2][64][64]int16
}

// Bonus applies depth*depth, clamped into [-MaxHistory, MaxHistory], to the
// cutting move, and the same magnitude as malus to every quiet move tried
// earlier at this node that did not cut (§4.3; capture cutoffs are
// excluded per spec §9's open-question default).
func (h *History) Bonus(stm board.Color, cutMove board.Move, earlierQuiets []board.Move, depth int) {
	bonus := int32(depth * depth)

	h.add(stm, cutMove, bonus)
	for _, m := range earlierQuiets {
		if m == cutMove {
			continue
		}
		h.add(stm, m, -bonus)
	}
}

func (h *History) add(stm board.Color, m board.Move, delta int32) {
	from, to := m.From(), m.To()
	v := int32(h.score[stm][from][to]) + delta
	h.score[stm][from][to] = int16(clamp(int(v), -MaxHistory, MaxHistory))
}

func (h *History) Get(stm board.Color, m board.Move) int {
	return int(h.score[stm][m.From()][m.To()])
}

// Age halves every entry between searches (§4.3).
func (h *History) Age() {
	for c := 0; c < 2; c++ {
		for f := 0; f < 64; f++ {
			for t := 0; t < 64; t++ {
				h.score[c][f][t] /= 2
			}
		}
	}
}

func (h *History) Clear() {
	h.score = [2][64][64]int16{}
}

// LMRTable is the precomputed [depth][movesPlayed] reduction table (§3).
// The exact coefficients are engine-dependent (§9); this one matches
// floor(0.77 + ln(depth)*ln(moves)/2.36), clamped to >= 0.
type LMRTable struct {
	reduction [64][218]int8
}

// NewLMRTable computes the table eagerly, matching the teacher's pattern
// of computing such tables once in an init-time pass (worker.go's own LMR
// table is built the same way, with different coefficients).
func NewLMRTable() *LMRTable {
	t := &LMRTable{}
	for d := 1; d < 64; d++ {
		for m := 1; m < 218; m++ {
			r := 0.77 + math.Log(float64(d))*math.Log(float64(m))/2.36
			if r < 0 {
				r = 0
			}
			t.reduction[d][m] = int8(math.Floor(r))
		}
	}
	return t
}

// Reduction returns the base LMR reduction for the given depth and move
// count (1-indexed: the first move searched has movesPlayed == 1).
func (t *LMRTable) Reduction(depth, movesPlayed int) int {
	if depth < 1 {
		depth = 1
	} else if depth > 63 {
		depth = 63
	}
	if movesPlayed < 1 {
		movesPlayed = 1
	} else if movesPlayed > 217 {
		movesPlayed = 217
	}
	return int(t.reduction[depth][movesPlayed])
}

// LMPTable is the late-move-pruning quiet-move cap per depth (§4.6).
var LMPTable = [4]int{0, 5, 8, 18}
