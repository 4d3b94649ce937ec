package search

import "github.com/corvidchess/corvid/internal/board"

// Move-ordering score bands (§4.4), highest stage first: TT move, then
// promotions, then captures by MVV-LVA, then killers, then history quiets.
// Each band is wide enough that no lower band can ever outscore it.
const (
	scoreTTMove      int32 = 1 << 30
	scorePromotion   int32 = 1 << 28
	scoreCaptureBase int32 = 1 << 24
	scoreKiller0     int32 = 1 << 20
	scoreKiller1     int32 = scoreKiller0 - 1
)

// ScoredMove pairs a move with its ordering score.
type ScoredMove struct {
	Move  board.Move
	Score int32
}

// MovePicker returns moves in descending ordering score via a lazy
// selection sort, which is cheap enough given chess's ~218 legal-move
// ceiling (§4.4).
type MovePicker struct {
	moves []ScoredMove
	idx   int
}

// NewMovePicker scores every move in list against the TT move, the two
// killers at the current ply, and the history table.
func NewMovePicker(pos *board.Position, list []board.Move, ttMove board.Move, killer0, killer1 board.Move, hist *History) *MovePicker {
	scored := make([]ScoredMove, len(list))
	for i, m := range list {
		scored[i] = ScoredMove{Move: m, Score: scoreMove(pos, m, ttMove, killer0, killer1, hist)}
	}
	return &MovePicker{moves: scored}
}

// NewCapturePicker scores a capture-only list for quiescence search: no TT
// move preference beyond ordering, no killers, no history — just MVV-LVA.
func NewCapturePicker(pos *board.Position, list []board.Move) *MovePicker {
	scored := make([]ScoredMove, len(list))
	for i, m := range list {
		scored[i] = ScoredMove{Move: m, Score: captureScore(pos, m)}
	}
	return &MovePicker{moves: scored}
}

func scoreMove(pos *board.Position, m, ttMove, killer0, killer1 board.Move, hist *History) int32 {
	switch {
	case m == ttMove:
		return scoreTTMove
	case m.IsPromotion():
		bonus := int32(0)
		if m.Promotion() == board.Queen {
			bonus = 1000
		}
		return scorePromotion + bonus
	case m.IsCapture(pos):
		return captureScore(pos, m)
	case m == killer0:
		return scoreKiller0
	case m == killer1:
		return scoreKiller1
	default:
		return int32(hist.Get(pos.SideToMove, m))
	}
}

// captureScore implements MVV-LVA: victim value * 10 - attacker value,
// offset into the positive capture band.
func captureScore(pos *board.Position, m board.Move) int32 {
	var victimValue int
	if m.IsEnPassant() {
		victimValue = board.PieceValue[board.Pawn]
	} else {
		victimValue = pos.PieceAt(m.To()).Value()
	}
	attackerValue := pos.PieceAt(m.From()).Value()
	return scoreCaptureBase + int32(victimValue*10-attackerValue)
}

// Next returns the highest-scoring remaining move, or false when exhausted.
func (p *MovePicker) Next() (board.Move, bool) {
	if p.idx >= len(p.moves) {
		return board.NoMove, false
	}
	best := p.idx
	for i := p.idx + 1; i < len(p.moves); i++ {
		if p.moves[i].Score > p.moves[best].Score {
			best = i
		}
	}
	p.moves[p.idx], p.moves[best] = p.moves[best], p.moves[p.idx]
	mv := p.moves[p.idx].Move
	p.idx++
	return mv, true
}

// Len reports the total number of moves in the picker.
func (p *MovePicker) Len() int {
	return len(p.moves)
}
