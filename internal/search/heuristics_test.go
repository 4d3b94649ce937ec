package search

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
)

func TestKillersUpdateShiftsSlots(t *testing.T) {
	var k Killers
	m1 := board.NewMove(board.E2, board.E4)
	m2 := board.NewMove(board.D2, board.D4)

	k.Update(3, m1)
	k.Update(3, m2)

	first, second := k.Get(3)
	if first != m2 || second != m1 {
		t.Fatalf("Get(3) = (%v,%v), want (%v,%v)", first, second, m2, m1)
	}
}

func TestKillersUpdateIgnoresDuplicate(t *testing.T) {
	var k Killers
	m1 := board.NewMove(board.E2, board.E4)
	k.Update(3, m1)
	k.Update(3, m1)

	first, second := k.Get(3)
	if first != m1 || second != board.NoMove {
		t.Fatalf("duplicate killer should not shift: got (%v,%v)", first, second)
	}
}

func TestHistoryBonusAndMalus(t *testing.T) {
	var h History
	cut := board.NewMove(board.E2, board.E4)
	other := board.NewMove(board.D2, board.D4)

	h.Bonus(board.White, cut, []board.Move{other, cut}, 4)

	if got := h.Get(board.White, cut); got <= 0 {
		t.Errorf("cutting move history = %d, want positive", got)
	}
	if got := h.Get(board.White, other); got >= 0 {
		t.Errorf("earlier non-cutting quiet history = %d, want negative", got)
	}
}

func TestHistorySaturates(t *testing.T) {
	var h History
	cut := board.NewMove(board.E2, board.E4)
	for i := 0; i < 1000; i++ {
		h.Bonus(board.White, cut, nil, 63)
	}
	if got := h.Get(board.White, cut); got != MaxHistory {
		t.Errorf("history = %d, want saturated at %d", got, MaxHistory)
	}
}

func TestHistoryAgeHalves(t *testing.T) {
	var h History
	cut := board.NewMove(board.E2, board.E4)
	h.Bonus(board.White, cut, nil, 10)
	before := h.Get(board.White, cut)
	h.Age()
	after := h.Get(board.White, cut)
	if after != before/2 {
		t.Errorf("after Age(): got %d, want %d", after, before/2)
	}
}

func TestLMRTableMonotonicInMoves(t *testing.T) {
	lmr := NewLMRTable()
	for depth := 1; depth < 20; depth++ {
		prev := -1
		for moves := 1; moves < 60; moves++ {
			r := lmr.Reduction(depth, moves)
			if r < 0 {
				t.Fatalf("negative reduction at depth=%d moves=%d: %d", depth, moves, r)
			}
			if r < prev {
				t.Fatalf("reduction decreased as moves grew: depth=%d moves=%d r=%d prev=%d", depth, moves, r, prev)
			}
			prev = r
		}
	}
}

func TestLMRTableClampsOutOfRangeInputs(t *testing.T) {
	lmr := NewLMRTable()
	if got := lmr.Reduction(0, 0); got < 0 {
		t.Errorf("Reduction(0,0) = %d, want >= 0", got)
	}
	if got := lmr.Reduction(1000, 1000); got < 0 {
		t.Errorf("Reduction(1000,1000) = %d, want >= 0", got)
	}
}
