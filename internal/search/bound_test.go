package search

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/tt"
)

// A completed root search stores its bound honestly (§8 property 6): an
// Exact bound's decoded score must equal the score Search returned, since
// the root call always runs a full [-Infinity, Infinity] window.
func TestRootBoundIsExactAndMatchesReturnedScore(t *testing.T) {
	pos := board.NewPosition()
	eng := NewEngine(zeroNetwork(), 1)

	_, score := eng.Search(pos, []uint64{pos.Hash}, Limits{Depth: 3}, nil)

	entry, hit := eng.Probe(pos.Hash)
	if !hit {
		t.Fatal("expected the root position to be stored in the transposition table")
	}
	if entry.Bound != tt.BoundExact {
		t.Fatalf("root bound = %v, want BoundExact for a full-window search", entry.Bound)
	}
	if decoded := tt.DecodeScore(entry.Score, 0); decoded != score {
		t.Fatalf("decoded stored score = %d, want %d (the value Search returned)", decoded, score)
	}
}
