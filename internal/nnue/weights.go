package nnue

import (
	"encoding/binary"
	"fmt"
	"io"
)

// LoadWeights reads the four concatenated little-endian int16 arrays that
// make up the weight blob (§6.2): feature_weights (768*256), feature_bias
// (256), output_weights (512), output_bias (1). Unlike the teacher's
// internal/nnue/weights.go, there is no magic/version header — the caller
// is expected to know it is handed a raw blob, matching this spec's wire
// format exactly.
func LoadWeights(r io.Reader) (*Network, error) {
	net := &Network{
		FeatureWeights: make([]int16, NumFeatures*HIDDEN),
	}

	if err := binary.Read(r, binary.LittleEndian, net.FeatureWeights); err != nil {
		return nil, fmt.Errorf("nnue: reading feature weights: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &net.FeatureBias); err != nil {
		return nil, fmt.Errorf("nnue: reading feature bias: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &net.OutputWeights); err != nil {
		return nil, fmt.Errorf("nnue: reading output weights: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &net.OutputBias); err != nil {
		return nil, fmt.Errorf("nnue: reading output bias: %w", err)
	}

	// A short read would silently under-fill net.FeatureWeights above (the
	// slice was pre-sized); binary.Read already reports io.ErrUnexpectedEOF
	// in that case, but a trailing-garbage blob is not detectable from
	// here without consuming the rest of r, so callers that need strict
	// length validation should wrap r in an io.LimitReader sized to the
	// expected blob length before calling LoadWeights.
	return net, nil
}
