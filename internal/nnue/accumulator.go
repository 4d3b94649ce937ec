package nnue

// MaxPly bounds the accumulator stack depth, matching the search driver's
// recursion bound.
const MaxPly = 128

// Accumulator holds the post-feature-sum, pre-activation hidden state for
// both perspectives at one ply.
type Accumulator struct {
	White [HIDDEN]int16
	Black [HIDDEN]int16
}

// AccumulatorStack is the heap-allocated, contiguous accumulator history
// backing one search. Per §4.1 it must never be copied by value as a unit;
// NewAccumulatorStack allocates it once and every method mutates in place.
type AccumulatorStack struct {
	net     *Network
	stack   []Accumulator
	current int
}

// NewAccumulatorStack allocates a stack bound to net. The allocation
// failing (out of memory) is fatal per spec §7 — Go reports that as a
// runtime panic from make, which the caller lets propagate to process exit
// rather than trying to recover from an unusable state.
func NewAccumulatorStack(net *Network) *AccumulatorStack {
	return &AccumulatorStack{
		net:   net,
		stack: make([]Accumulator, MaxPly),
	}
}

// Refresh resets the stack to a single accumulator computed from scratch:
// current = 0, acc[0] = bias, then every occupied square's feature is
// activated. squares lists every occupied square (see Occupant below);
// callers build it from a board.Position.
func (s *AccumulatorStack) Refresh(squares []Occupant) {
	s.current = 0
	acc := &s.stack[0]
	acc.White = s.net.FeatureBias
	acc.Black = s.net.FeatureBias
	for _, o := range squares {
		s.toggle(acc, o.Color, o.PieceType, o.Square, true)
	}
}

// Occupant describes one occupied square for Refresh, decoupling this
// package from board.Position's concrete layout.
type Occupant struct {
	Color     int // 0 = white, 1 = black
	PieceType int // 0..5, Pawn..King
	Square    int // 0..63
}

func (s *AccumulatorStack) toggle(acc *Accumulator, color, pieceType, square int, activate bool) {
	whiteCol, blackCol := FeatureIndex(color, pieceType, square)
	w := s.net.FeatureWeights
	if activate {
		for i := 0; i < HIDDEN; i++ {
			acc.White[i] += w[whiteCol+i]
			acc.Black[i] += w[blackCol+i]
		}
	} else {
		for i := 0; i < HIDDEN; i++ {
			acc.White[i] -= w[whiteCol+i]
			acc.Black[i] -= w[blackCol+i]
		}
	}
}

// Update adds (activate=true) or removes (activate=false) one piece's
// feature from the live accumulator.
func (s *AccumulatorStack) Update(color, pieceType, square int, activate bool) {
	s.toggle(&s.stack[s.current], color, pieceType, square, activate)
}

// Push copies the live accumulator forward and advances current, so the
// move about to be made starts from an identical, independently mutable
// copy of the pre-move state.
func (s *AccumulatorStack) Push() {
	s.stack[s.current+1] = s.stack[s.current]
	s.current++
}

// Pop retreats to the previous ply's accumulator, discarding the popped
// one's mutations.
func (s *AccumulatorStack) Pop() {
	s.current--
}

// Current returns the live ply index.
func (s *AccumulatorStack) Current() int {
	return s.current
}

// Snapshot returns a copy of the live accumulator, used by property tests
// that need to compare pre/post make-unmake state (§8 properties 2-4).
func (s *AccumulatorStack) Snapshot() Accumulator {
	return s.stack[s.current]
}

// Evaluate scores the live accumulator from stm's perspective: the mover's
// own HIDDEN activations first, the opponent's second, clipped to [0,255],
// dotted with the output weight vector, plus bias, then rescaled.
func (s *AccumulatorStack) Evaluate(stm int) int32 {
	acc := &s.stack[s.current]
	var own, other *[HIDDEN]int16
	if stm == 0 {
		own, other = &acc.White, &acc.Black
	} else {
		own, other = &acc.Black, &acc.White
	}

	sum := int32(s.net.OutputBias)
	for i := 0; i < HIDDEN; i++ {
		sum += clampInt16(own[i]) * int32(s.net.OutputWeights[i])
	}
	for i := 0; i < HIDDEN; i++ {
		sum += clampInt16(other[i]) * int32(s.net.OutputWeights[HIDDEN+i])
	}
	return sum * SCALE / QAB
}
