package nnue

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestLoadWeightsRoundTrip(t *testing.T) {
	want := testNetwork()

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, want.FeatureWeights); err != nil {
		t.Fatalf("encode feature weights: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, want.FeatureBias); err != nil {
		t.Fatalf("encode feature bias: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, want.OutputWeights); err != nil {
		t.Fatalf("encode output weights: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, want.OutputBias); err != nil {
		t.Fatalf("encode output bias: %v", err)
	}

	got, err := LoadWeights(&buf)
	if err != nil {
		t.Fatalf("LoadWeights: %v", err)
	}

	if len(got.FeatureWeights) != len(want.FeatureWeights) {
		t.Fatalf("feature weight length mismatch: got %d want %d", len(got.FeatureWeights), len(want.FeatureWeights))
	}
	for i := range want.FeatureWeights {
		if got.FeatureWeights[i] != want.FeatureWeights[i] {
			t.Fatalf("feature weight[%d] = %d, want %d", i, got.FeatureWeights[i], want.FeatureWeights[i])
		}
	}
	if got.FeatureBias != want.FeatureBias {
		t.Fatalf("feature bias mismatch")
	}
	if got.OutputWeights != want.OutputWeights {
		t.Fatalf("output weights mismatch")
	}
	if got.OutputBias != want.OutputBias {
		t.Fatalf("output bias mismatch")
	}
}

func TestLoadWeightsTruncated(t *testing.T) {
	buf := bytes.NewReader(make([]byte, 10))
	if _, err := LoadWeights(buf); err == nil {
		t.Fatal("expected error loading truncated weight blob, got nil")
	}
}
