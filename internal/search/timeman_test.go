package search

import (
	"testing"
	"time"
)

func TestComputeBudgetMovesToGo(t *testing.T) {
	opt, max := ComputeBudget(10*time.Second, 0, 5)
	if opt != max {
		t.Errorf("movesToGo branch: optimal (%v) should equal maximum (%v)", opt, max)
	}
	want := (10*time.Second - TimeOverhead) / 5
	if opt != want {
		t.Errorf("optimal = %v, want %v", opt, want)
	}
}

func TestComputeBudgetIncrement(t *testing.T) {
	timeLeft := 60 * time.Second
	inc := 2 * time.Second
	opt, max := ComputeBudget(timeLeft, inc, 0)

	wantOpt := (timeLeft-TimeOverhead)/20 + inc/2
	if opt != wantOpt {
		t.Errorf("optimal = %v, want %v", opt, wantOpt)
	}
	if max < opt {
		t.Errorf("maximum (%v) should be >= optimal (%v)", max, opt)
	}
	halfRemaining := (timeLeft - TimeOverhead) / 2
	if max > halfRemaining {
		t.Errorf("maximum (%v) should never exceed half of remaining time (%v)", max, halfRemaining)
	}
}

func TestComputeBudgetSuddenDeath(t *testing.T) {
	timeLeft := 40 * time.Second
	opt, max := ComputeBudget(timeLeft, 0, 0)
	if opt != max {
		t.Errorf("sudden-death branch: optimal (%v) should equal maximum (%v)", opt, max)
	}
	want := (timeLeft - TimeOverhead) / 20
	if opt != want {
		t.Errorf("optimal = %v, want %v", opt, want)
	}
}

func TestComputeBudgetNeverNegative(t *testing.T) {
	opt, max := ComputeBudget(10*time.Millisecond, 0, 0)
	if opt < 0 || max < 0 {
		t.Errorf("budgets went negative: opt=%v max=%v", opt, max)
	}
}
