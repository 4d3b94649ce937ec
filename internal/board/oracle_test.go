package board

import "testing"

func TestStatusOngoingAtStartpos(t *testing.T) {
	pos := NewPosition()
	if got := pos.Status(); got != Ongoing {
		t.Fatalf("Status() = %v, want Ongoing", got)
	}
}

func TestStatusCheckmated(t *testing.T) {
	pos, err := ParseFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	mate := pos.Play(NewMove(E1, E8))
	if got := mate.Status(); got != Checkmated {
		t.Fatalf("Status() after Re1-e8 = %v, want Checkmated", got)
	}
}

func TestStatusStalemateIsDrawn(t *testing.T) {
	// Black king on a8 has no legal moves and is not in check.
	pos, err := ParseFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := pos.Status(); got != Drawn {
		t.Fatalf("Status() = %v, want Drawn (stalemate)", got)
	}
}

func TestStatusFiftyMoveRuleIsDrawn(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := pos.Status(); got != Drawn {
		t.Fatalf("Status() = %v, want Drawn (fifty-move rule)", got)
	}
}

func TestPlayLeavesReceiverUntouched(t *testing.T) {
	pos := NewPosition()
	before := pos.Hash

	m := NewMove(E2, E4)
	after := pos.Play(m)

	if pos.Hash != before {
		t.Fatal("Play mutated the receiver")
	}
	if after.Hash == before {
		t.Fatal("Play's result should differ from the receiver")
	}
	if pos.SideToMove != White {
		t.Fatalf("receiver side to move = %v, want unchanged White", pos.SideToMove)
	}
	if after.SideToMove != Black {
		t.Fatalf("result side to move = %v, want Black", after.SideToMove)
	}
}

func TestNullMoveFlipsSideAndNilsInCheck(t *testing.T) {
	pos := NewPosition()
	flipped := pos.NullMove()
	if flipped == nil {
		t.Fatal("NullMove returned nil from a quiet startpos")
	}
	if flipped.SideToMove != Black {
		t.Fatalf("side to move = %v, want Black", flipped.SideToMove)
	}

	// White king on e1 in check from a black rook on e-file: a null move
	// would be meaningless here.
	inCheck, err := ParseFEN("4r1k1/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := inCheck.NullMove(); got != nil {
		t.Fatalf("NullMove() while in check = %v, want nil", got)
	}
}

func TestLegalMovesAndCapturesAtStartpos(t *testing.T) {
	pos := NewPosition()
	if got := len(pos.LegalMoves()); got != 20 {
		t.Fatalf("LegalMoves() count = %d, want 20", got)
	}
	if got := len(pos.LegalCaptures()); got != 0 {
		t.Fatalf("LegalCaptures() count = %d, want 0", got)
	}
}
