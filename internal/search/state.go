package search

import (
	"sync/atomic"
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/nnue"
	"github.com/corvidchess/corvid/internal/tt"
)

// stackEntry is the per-ply scratch state kept across one node's recursion
// (§3 SearchState "stack of per-ply StackEntry{eval}").
type stackEntry struct {
	eval int
}

// Searcher is the per-invocation SearchState (§3): one is built fresh for
// every "go" command. The transposition table, NNUE weights, the LMR
// table, and the history heuristic outlive a single Searcher and are
// supplied by the owning Engine (engine.go) instead of being rebuilt here.
type Searcher struct {
	tt      *tt.Table
	net     *nnue.Network
	lmr     *LMRTable
	history *History

	acc     *nnue.AccumulatorStack
	killers Killers
	pv      PVTable

	// gameHistory is the Zobrist hash of every position from the game root
	// through the current search line, growing on make and shrinking on
	// unmake (§3 Lifecycles, §4.7).
	gameHistory []uint64

	nodes    uint64
	seldepth int
	stop     atomic.Bool

	startTime time.Time
	hasTime   bool
	maxTime   time.Duration
	optTime   time.Duration

	hasNodeLimit bool
	nodeLimit    uint64

	hasDepthLimit bool
	depthLimit    int

	stack [MaxPly]stackEntry

	// onInfo, if set, is called after every completed iterative-deepening
	// iteration (§4.10).
	onInfo func(Info)
}

// Info is one "info depth ... pv ..." line's worth of data, left for the
// UCI layer to format and print.
type Info struct {
	Depth    int
	SelDepth int
	Score    int
	Nodes    uint64
	Elapsed  time.Duration
	PV       []board.Move
	HashFull int
}

// Limits bounds a search: any zero-value field is "unset".
type Limits struct {
	Depth      int
	Nodes      uint64
	MoveTime   time.Duration
	WhiteTime  time.Duration
	BlackTime  time.Duration
	WhiteInc   time.Duration
	BlackInc   time.Duration
	MovesToGo  int
	Infinite   bool
}

// Stop requests cancellation; safe to call from another goroutine (the UCI
// "stop"/"quit" handlers run concurrently with the search goroutine).
func (s *Searcher) Stop() {
	s.stop.Store(true)
}

func (s *Searcher) stopped() bool {
	return s.stop.Load()
}

// checkTime is called every 1024 nodes (§4.6 step 1, §4.9).
func (s *Searcher) checkTime() {
	if s.nodes&1023 != 0 {
		return
	}
	if s.hasNodeLimit && s.nodes >= s.nodeLimit {
		s.stop.Store(true)
		return
	}
	if s.hasTime && time.Since(s.startTime) >= s.maxTime {
		s.stop.Store(true)
	}
}

func (s *Searcher) elapsed() time.Duration {
	return time.Since(s.startTime)
}

func packMove(m board.Move) uint16   { return uint16(m) }
func unpackMove(u uint16) board.Move { return board.Move(u) }
