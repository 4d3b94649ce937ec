// Package search implements the principal-variation search driver: PVS
// with alpha-beta pruning, quiescence, iterative deepening with aspiration
// windows, and the supporting heuristics tables and move picker. It is
// grounded on the teacher's internal/engine package — chiefly worker.go
// for the search driver's control flow and ordering.go/transposition.go
// for the heuristics — generalized to this spec's own (simpler, exactly
// specified) set of pruning formulas rather than the teacher's
// Stockfish-tuned constants.
package search

import "github.com/corvidchess/corvid/internal/tt"

// Score-domain constants (§3). Re-exported from internal/tt since the wire
// encoding and the search-local representation share one scale.
const (
	Infinity = tt.Infinity
	Mate     = tt.Mate
	MateIn   = tt.MateIn
	MaxPly   = tt.MaxPly
)

// drawScore returns the deterministic near-zero jitter used for drawn
// positions (§4.6 step 5, §9 "deterministic draw jitter"): small enough to
// never be mistaken for a real evaluation, asymmetric in nodes so the
// engine doesn't loop a drawn line it could instead win.
func drawScore(nodes uint64) int {
	return 8 - int(nodes&7)
}

// isMateScore reports whether s is a mate-distance score (used to decide
// whether iterative deepening should still shave a ply off the next
// aspiration attempt on fail-high).
func isMateScore(s int) bool {
	return s >= MateIn || s <= -MateIn
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
