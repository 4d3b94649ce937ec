package persist

import (
	"testing"

	"github.com/corvidchess/corvid/internal/tt"
)

func TestPutGetRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	entry := tt.Entry{Key: 0xBEEF, Move: 42, Score: -321, Depth: 12, Bound: tt.BoundExact}
	if err := store.Put(0xDEADBEEF, entry); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, found, err := store.Get(0xDEADBEEF)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected a hit after Put")
	}
	if got != entry {
		t.Fatalf("got %+v, want %+v", got, entry)
	}
}

func TestGetMissOnEmptyStore(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	_, found, err := store.Get(0x1234)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatal("expected a miss on an empty store")
	}
}

func TestWarmUpSkipsShallowEntries(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	shallow := tt.Entry{Key: 1, Move: 1, Score: 10, Depth: 2, Bound: tt.BoundExact}
	deep := tt.Entry{Key: 2, Move: 2, Score: 20, Depth: 10, Bound: tt.BoundExact}
	if err := store.Put(0x1, shallow); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(0x2, deep); err != nil {
		t.Fatalf("Put: %v", err)
	}

	table := tt.New(1)
	if err := store.WarmUp(table, 6); err != nil {
		t.Fatalf("WarmUp: %v", err)
	}

	if _, hit := table.Probe(0x1); hit {
		t.Error("shallow entry should not have been warmed up")
	}
	if _, hit := table.Probe(0x2); !hit {
		t.Error("deep entry should have been warmed up")
	}
}

func TestCheckpointLineOnlyPersistsHits(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	probe := func(hash uint64) (tt.Entry, bool) {
		if hash == 0x1 {
			return tt.Entry{Key: 1, Move: 5, Score: 7, Depth: 3, Bound: tt.BoundExact}, true
		}
		return tt.Entry{}, false
	}

	if err := store.CheckpointLine(probe, []uint64{0x1, 0x2}); err != nil {
		t.Fatalf("CheckpointLine: %v", err)
	}

	if _, found, _ := store.Get(0x1); !found {
		t.Error("expected hash 0x1 to be persisted")
	}
	if _, found, _ := store.Get(0x2); found {
		t.Error("expected hash 0x2 (a probe miss) to not be persisted")
	}
}
