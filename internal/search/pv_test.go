package search

import (
	"reflect"
	"testing"

	"github.com/corvidchess/corvid/internal/board"
)

func TestPVTableTriangularUpdate(t *testing.T) {
	var pv PVTable

	m2 := board.NewMove(board.E7, board.E5)
	pv.Clear(1)
	pv.Update(1, m2)

	m1 := board.NewMove(board.E2, board.E4)
	pv.Clear(0)
	pv.Update(0, m1)

	want := []board.Move{m1, m2}
	if got := pv.Root(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Root() = %v, want %v", got, want)
	}
}

func TestPVTableClearTruncatesLine(t *testing.T) {
	var pv PVTable
	m := board.NewMove(board.E2, board.E4)
	pv.Update(0, m)
	pv.Clear(0)
	if got := pv.Root(); got != nil {
		t.Fatalf("Root() after Clear = %v, want nil", got)
	}
}
