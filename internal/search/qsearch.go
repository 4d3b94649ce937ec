package search

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/tt"
)

// Quiescence mirrors PVSearch but without a depth counter — recursion is
// bounded by capture sequences and MaxPly — and without mate-distance or
// repetition handling (§4.9, which explicitly omits both). Stand-pat is
// always evaluated, in or out of check, and only captures are generated;
// there is no check-evasion special case here (§4.9, grounding original's
// qsearch).
func (s *Searcher) Quiescence(pos *board.Position, alpha, beta, ply int) int {
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

	entry, hit := s.tt.Probe(pos.Hash)
	if hit {
		score := tt.DecodeScore(entry.Score, ply)
		switch entry.Bound {
		case tt.BoundExact:
			return score
		case tt.BoundLower:
			if score >= beta {
				return score
			}
		case tt.BoundUpper:
			if score <= alpha {
				return score
			}
		}
	}

	standPat := int(s.acc.Evaluate(int(pos.SideToMove)))
	if standPat >= beta {
		s.storeQS(pos, ply, board.NoMove, standPat, tt.BoundLower)
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := pos.LegalCaptures()
	if len(moves) == 0 {
		return standPat
	}

	picker := NewCapturePicker(pos, moves)

	bestScore := standPat
	bestMove := board.NoMove

	for {
		mv, ok := picker.Next()
		if !ok {
			break
		}
		child := MakeMove(pos, s.acc, mv)
		s.nodes++
		score := -s.Quiescence(child, -beta, -alpha, ply+1)
		UnmakeMove(s.acc)

		if score > bestScore {
			bestScore = score
			bestMove = mv
			if score > alpha {
				alpha = score
				if score >= beta {
					break
				}
			}
		}
	}

	bound := tt.BoundUpper
	if bestScore >= beta {
		bound = tt.BoundLower
	}
	s.storeQS(pos, ply, bestMove, bestScore, bound)
	return bestScore
}

func (s *Searcher) storeQS(pos *board.Position, ply int, mv board.Move, score int, bound tt.Bound) {
	if s.stopped() {
		return
	}
	s.tt.Store(pos.Hash, ply, packMove(mv), score, 0, bound)
}
