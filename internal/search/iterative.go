package search

import "github.com/corvidchess/corvid/internal/board"

// aspirationStartDepth is the first iteration that uses a narrow window
// instead of full width (§4.10).
const aspirationStartDepth = 5

// initialDelta is the starting half-width of the aspiration window.
const initialDelta = 25

// IterativeDeepening runs depth = 1..maxDepth, widening the aspiration
// window on fail-high/fail-low, and reports one Info line per completed
// iteration via s.onInfo. It returns the best move and score from the
// last iteration that completed without being interrupted by Stop — the
// root retains that move across a stopped iteration rather than trusting
// a partially searched deeper one (§5). If the first iteration is itself
// stopped, there is no completed iteration, and the move and score of that
// partial first iteration are returned.
func (s *Searcher) IterativeDeepening(root *board.Position, maxDepth int) (board.Move, int) {
	var bestMove board.Move
	var bestScore int
	score := 0

	for d := 1; d <= maxDepth; d++ {
		searchDepth := d
		delta := initialDelta
		alpha, beta := -Infinity, Infinity
		if d >= aspirationStartDepth {
			alpha = max(-Infinity, score-delta)
			beta = min(Infinity, score+delta)
		}

		var result int
		for {
			s.seldepth = 0
			result = s.PVSearch(root, alpha, beta, searchDepth, 0, true)

			if s.stopped() {
				break
			}
			if d >= aspirationStartDepth && result <= alpha {
				beta = (alpha + beta) / 2
				alpha = max(-Infinity, result-delta)
				searchDepth = d
				delta += delta / 2
				continue
			}
			if d >= aspirationStartDepth && result >= beta {
				beta = min(Infinity, result+delta)
				if !isMateScore(result) {
					searchDepth = max(1, searchDepth-1)
				}
				delta += delta / 2
				continue
			}
			break
		}

		if s.stopped() {
			if d == 1 {
				if pv := s.pv.Root(); len(pv) > 0 {
					bestMove = pv[0]
					bestScore = result
				}
			}
			break
		}

		score = result
		bestScore = score
		if pv := s.pv.Root(); len(pv) > 0 {
			bestMove = pv[0]
		}

		if s.onInfo != nil {
			s.onInfo(Info{
				Depth:    d,
				SelDepth: s.seldepth,
				Score:    score,
				Nodes:    s.nodes,
				Elapsed:  s.elapsed(),
				PV:       s.pv.Root(),
				HashFull: s.tt.HashFull(),
			})
		}

		if s.hasTime && s.elapsed() >= s.optTime {
			break
		}
	}

	return bestMove, bestScore
}
