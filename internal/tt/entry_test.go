package tt

import "testing"

// TT mate encoding (§8 property 5): decode(encode(s, ply), ply) == s for any
// score and ply, including mate-band scores.
func TestMateEncodeDecodeRoundTrip(t *testing.T) {
	plies := []int{0, 1, 7, 30, 63, 127}
	scores := []int{0, 1, -1, 250, -250, MateIn, -MateIn, Mate - 1, -(Mate - 1), Mate, -Mate}

	for _, ply := range plies {
		for _, s := range scores {
			enc := EncodeScore(s, ply)
			got := DecodeScore(enc, ply)
			if got != s {
				t.Errorf("ply=%d score=%d: decode(encode(score))=%d, want %d", ply, s, got, s)
			}
		}
	}
}

func TestEncodeScoreNonMateUnchanged(t *testing.T) {
	if got := EncodeScore(123, 5); got != 123 {
		t.Errorf("EncodeScore(123,5) = %d, want 123 (non-mate scores are ply-independent)", got)
	}
}
