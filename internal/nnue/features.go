// Package nnue implements the incrementally-updated evaluation network:
// a 768-input, 256-wide-per-perspective accumulator feeding a single linear
// output layer. It is grounded on the teacher's internal/nnue package
// (accumulator.go, features.go, network.go, weights.go) but replaces the
// teacher's king-bucketed HalfKP feature set with a flat, king-independent
// 768-feature scheme, and its two-hidden-layer network with a single
// linear output layer, per the evaluation format this engine targets.
package nnue

// HIDDEN is the width of each perspective's hidden accumulator.
const HIDDEN = 256

// NumPieceTypes and NumSquares bound the flat feature space: 2 colors * 6
// piece types * 64 squares = 768 input features.
const (
	NumColors     = 2
	NumPieceTypes = 6
	NumSquares    = 64
	NumFeatures   = NumColors * NumPieceTypes * NumSquares
)

// Quantization constants from the weight-blob format.
const (
	QAB   = 255 * 64
	SCALE = 400
)

// rankFlip mirrors a square vertically (file kept, rank flipped), turning a
// white-relative square into its black-relative mirror and back.
func rankFlip(sq int) int {
	return sq ^ 56
}

// FeatureIndex returns the (white, black) perspective column offsets for a
// piece of color c (0=white, 1=black), type p (0..5, Pawn..King), standing
// on square s (0..63, A1=0 .. H8=63). Each returned value is already scaled
// by HIDDEN so it directly indexes the flattened weight matrix.
func FeatureIndex(c, p, s int) (white, black int) {
	whiteIdx := c*384 + p*64 + s
	blackIdx := (1-c)*384 + p*64 + rankFlip(s)
	return whiteIdx * HIDDEN, blackIdx * HIDDEN
}
