package search

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/nnue"
)

// variedNetwork returns a network whose feature weights are all distinct and
// non-zero, so an incremental Update that touches the wrong square or the
// wrong color/piece-type index produces a detectably different accumulator
// instead of silently matching a zeroed-out network.
func variedNetwork() *nnue.Network {
	n := nnue.NumFeatures * nnue.HIDDEN
	w := make([]int16, n)
	for i := range w {
		w[i] = int16((i*37+11)%2003 - 1000)
	}
	return &nnue.Network{FeatureWeights: w}
}

// findMove returns the first legal move from pos matching pred.
func findMove(t *testing.T, pos *board.Position, desc string, pred func(board.Move) bool) board.Move {
	t.Helper()
	for _, m := range pos.LegalMoves() {
		if pred(m) {
			return m
		}
	}
	t.Fatalf("no legal move found matching %s", desc)
	return board.NoMove
}

// assertAdapterRoundTrip plays m via MakeMove/UnmakeMove and checks that (a)
// the incrementally updated accumulator after the move equals a from-scratch
// Refresh of the resulting position (§8 property 4), and (b) UnmakeMove
// restores the exact pre-move accumulator (§8 property 3).
func assertAdapterRoundTrip(t *testing.T, pos *board.Position, m board.Move) {
	t.Helper()
	net := variedNetwork()

	acc := nnue.NewAccumulatorStack(net)
	acc.Refresh(RefreshOccupants(pos))
	before := acc.Snapshot()

	child := MakeMove(pos, acc, m)
	got := acc.Snapshot()

	want := nnue.NewAccumulatorStack(net)
	want.Refresh(RefreshOccupants(child))
	wantSnap := want.Snapshot()

	if got != wantSnap {
		t.Fatalf("incremental accumulator after %v != refresh of resulting position\ngot:  %+v\nwant: %+v", m, got, wantSnap)
	}

	UnmakeMove(acc)
	if after := acc.Snapshot(); after != before {
		t.Fatalf("accumulator after UnmakeMove != pre-move snapshot\ngot:  %+v\nwant: %+v", after, before)
	}
}

func TestAdapterRoundTripCastling(t *testing.T) {
	pos, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := findMove(t, pos, "kingside castling", func(m board.Move) bool {
		return m.IsCastling() && m.To() == board.G1
	})
	assertAdapterRoundTrip(t, pos, m)
}

func TestAdapterRoundTripEnPassant(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := findMove(t, pos, "en passant capture", func(m board.Move) bool {
		return m.IsEnPassant()
	})
	assertAdapterRoundTrip(t, pos, m)
}

func TestAdapterRoundTripPromotion(t *testing.T) {
	pos, err := board.ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := findMove(t, pos, "queen promotion", func(m board.Move) bool {
		return m.IsPromotion() && m.Promotion() == board.Queen
	})
	assertAdapterRoundTrip(t, pos, m)
}
