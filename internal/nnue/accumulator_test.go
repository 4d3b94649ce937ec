package nnue

import "testing"

func testNetwork() *Network {
	net := &Network{FeatureWeights: make([]int16, NumFeatures*HIDDEN)}
	for i := range net.FeatureWeights {
		net.FeatureWeights[i] = int16((i%31)*7 - 90)
	}
	for i := range net.FeatureBias {
		net.FeatureBias[i] = int16(i % 13)
	}
	for i := range net.OutputWeights {
		net.OutputWeights[i] = int16((i%17)*3 - 20)
	}
	net.OutputBias = 37
	return net
}

// Feature round-trip (§8 property 2): activating then deactivating the same
// feature must leave the accumulator bit-identical.
func TestFeatureRoundTrip(t *testing.T) {
	net := testNetwork()
	stack := NewAccumulatorStack(net)
	stack.Refresh(nil)

	before := stack.Snapshot()
	stack.Update(0, Pawn, 12, true)
	stack.Update(0, Pawn, 12, false)
	after := stack.Snapshot()

	if before != after {
		t.Fatalf("feature round-trip mismatch: before=%v after=%v", before, after)
	}
}

// Incremental update must equal a from-scratch refresh over the same
// occupancy (§8 property 4).
func TestIncrementalEqualsRefresh(t *testing.T) {
	net := testNetwork()

	occupants := []Occupant{
		{Color: 0, PieceType: King, Square: 4},
		{Color: 1, PieceType: King, Square: 60},
		{Color: 0, PieceType: Pawn, Square: 12},
		{Color: 1, PieceType: Knight, Square: 45},
	}

	incremental := NewAccumulatorStack(net)
	incremental.Refresh(nil)
	for _, o := range occupants {
		incremental.Update(o.Color, o.PieceType, o.Square, true)
	}

	fromScratch := NewAccumulatorStack(net)
	fromScratch.Refresh(occupants)

	if incremental.Snapshot() != fromScratch.Snapshot() {
		t.Fatalf("incremental accumulator != refreshed accumulator")
	}
}

// Push/Pop must restore the exact pre-push accumulator (the accumulator
// half of the make/unmake round-trip, §8 property 3).
func TestPushPopRoundTrip(t *testing.T) {
	net := testNetwork()
	stack := NewAccumulatorStack(net)
	stack.Refresh([]Occupant{{Color: 0, PieceType: King, Square: 4}})

	before := stack.Snapshot()
	stack.Push()
	stack.Update(1, Pawn, 20, true)
	stack.Pop()
	after := stack.Snapshot()

	if before != after {
		t.Fatalf("push/pop round-trip mismatch: before=%v after=%v", before, after)
	}
}

const (
	Pawn   = 0
	Knight = 1
	King   = 5
)
