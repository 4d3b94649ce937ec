package search

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/tt"
)

// rfpMargin is RFP_MARGIN from §4.6.
const rfpMargin = 75

// rfpMaxDepth is the depth ceiling below which reverse futility pruning
// applies.
const rfpMaxDepth = 9

// PVSearch runs the recursive PVS driver (§4.6) and returns the score of
// pos from the side-to-move's perspective. pvNode marks whether this node
// still lies on the principal variation (the compile-time PV_NODE template
// parameter in §9 is, in Go, just a bool parameter — there is no
// zero-cost way to specialize on it without code generation, and the
// teacher's worker.go does the same plain-bool-parameter thing).
func (s *Searcher) PVSearch(pos *board.Position, alpha, beta, depth, ply int, pvNode bool) int {
	s.checkTime()
	if s.stopped() && ply > 0 {
		return 0
	}
	if ply >= MaxPly {
		return int(s.acc.Evaluate(int(pos.SideToMove)))
	}

	s.tt.Prefetch(pos.Hash)
	if ply > s.seldepth {
		s.seldepth = ply
	}
	if depth < 0 {
		depth = 0
	}
	s.pv.Clear(ply)

	switch pos.Status() {
	case board.Checkmated:
		return ply - Mate
	case board.Drawn:
		return drawScore(s.nodes)
	}

	if ply > 0 {
		if s.isRepetition(pos) {
			return drawScore(s.nodes)
		}
		alpha = max(alpha, ply-Mate)
		beta = min(beta, Mate-ply-1)
		if alpha >= beta {
			return alpha
		}
	}

	inCheck := pos.InCheck()
	if depth == 0 && !inCheck {
		return s.Quiescence(pos, alpha, beta, ply)
	}

	entry, hit := s.tt.Probe(pos.Hash)
	ttMove := board.NoMove
	var eval int
	if hit {
		ttMove = unpackMove(entry.Move)
		eval = tt.DecodeScore(entry.Score, ply)
		if !pvNode && int(entry.Depth) >= depth {
			switch entry.Bound {
			case tt.BoundExact:
				return eval
			case tt.BoundLower:
				if eval >= beta {
					return eval
				}
			case tt.BoundUpper:
				if eval <= alpha {
					return eval
				}
			}
		}
	} else {
		eval = int(s.acc.Evaluate(int(pos.SideToMove)))
	}

	s.stack[ply].eval = eval
	improving := !inCheck && ply > 1 && eval > s.stack[ply-2].eval

	if !pvNode && !inCheck {
		margin := rfpMargin * depth
		if improving {
			margin /= 2
		}
		if depth < rfpMaxDepth && eval-margin >= beta {
			return eval
		}

		if depth >= 3 && eval >= beta && pos.HasNonPawnMaterial() {
			r := 3 + depth/3 + min(3, (eval-beta)/200)
			child := pos.NullMove()
			s.acc.Push()
			score := -s.PVSearch(child, -beta, -beta+1, depth-r, ply+1, false)
			s.acc.Pop()
			if score >= beta {
				if score >= MateIn {
					score = beta
				}
				return score
			}
		}
	}

	if inCheck {
		depth++
	}

	moves := pos.LegalMoves()
	picker := NewMovePicker(pos, moves, ttMove, s.killers.moves[ply][0], s.killers.moves[ply][1], s.history)

	lmpActive := !pvNode && !inCheck && depth >= 1 && depth <= 3

	bestScore := -Infinity
	bestMove := board.NoMove
	oldAlpha := alpha
	movesSearched := 0
	quietsChecked := 0
	quietsTried := make([]board.Move, 0, 8)

	for {
		mv, ok := picker.Next()
		if !ok {
			break
		}

		isQuiet := mv.IsQuiet(pos)
		if isQuiet {
			if lmpActive && quietsChecked >= LMPTable[depth] {
				break
			}
			quietsChecked++
		}

		s.gameHistory = append(s.gameHistory, pos.Hash)
		child := MakeMove(pos, s.acc, mv)
		s.nodes++
		movesSearched++

		var score int
		if movesSearched == 1 {
			score = -s.PVSearch(child, -beta, -alpha, depth-1, ply+1, pvNode)
		} else {
			r := s.lmr.Reduction(depth, movesSearched)
			if !pvNode {
				r++
			}
			if mv.IsCapture(pos) {
				r--
			}
			if child.InCheck() {
				r--
			}
			r = clamp(r, 1, max(1, depth-1))

			score = -s.PVSearch(child, -alpha-1, -alpha, depth-r, ply+1, false)
			if score > alpha && score < beta {
				score = -s.PVSearch(child, -beta, -alpha, depth-1, ply+1, true)
			}
		}

		UnmakeMove(s.acc)
		s.gameHistory = s.gameHistory[:len(s.gameHistory)-1]

		if isQuiet {
			quietsTried = append(quietsTried, mv)
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				bestMove = mv
				alpha = score
				s.pv.Update(ply, mv)
				if score >= beta {
					if isQuiet {
						s.killers.Update(ply, mv)
						s.history.Bonus(pos.SideToMove, mv, quietsTried[:len(quietsTried)-1], depth)
					}
					break
				}
			}
		}
	}

	if !s.stopped() {
		var bound tt.Bound
		switch {
		case bestScore >= beta:
			bound = tt.BoundLower
		case bestScore > oldAlpha:
			bound = tt.BoundExact
		default:
			bound = tt.BoundUpper
		}
		s.tt.Store(pos.Hash, ply, packMove(bestMove), bestScore, depth, bound)
	}

	return bestScore
}

// isRepetition reports whether pos.Hash reappears within the last
// HalfMoveClock entries of gameHistory, excluding the just-played entry
// itself (§4.7). gameHistory's last element, if any, is the position that
// led to pos, not pos itself, so no explicit skip is needed.
func (s *Searcher) isRepetition(pos *board.Position) bool {
	n := len(s.gameHistory)
	if n == 0 {
		return false
	}
	limit := pos.HalfMoveClock
	start := n - limit
	if start < 0 {
		start = 0
	}
	for i := n - 1; i >= start; i-- {
		if s.gameHistory[i] == pos.Hash {
			return true
		}
	}
	return false
}
