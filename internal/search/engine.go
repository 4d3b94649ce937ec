package search

import (
	"sync"
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/nnue"
	"github.com/corvidchess/corvid/internal/tt"
)

// Engine bundles the state that outlives a single "go" command: the
// transposition table, the immutable NNUE weights, the once-computed LMR
// table, and the history heuristic (aged, not cleared, between searches
// per §4.3). Everything else (killers, the PV table, node/time counters)
// belongs to a fresh Searcher built for each search.
type Engine struct {
	net     *nnue.Network
	table   *tt.Table
	lmr     *LMRTable
	history History

	mu      sync.Mutex
	current *Searcher
}

// NewEngine constructs an Engine with a hashMiB-sized transposition table.
func NewEngine(net *nnue.Network, hashMiB int) *Engine {
	return &Engine{
		net:   net,
		table: tt.New(hashMiB),
		lmr:   NewLMRTable(),
	}
}

// NewGame resets all state that must not leak across "ucinewgame": the
// transposition table and the history heuristic.
func (e *Engine) NewGame() {
	e.table.Reset()
	e.history.Clear()
}

// Resize reallocates the transposition table, discarding its contents —
// the real implementation of the teacher's "Hash" TODO (see SPEC_FULL.md).
func (e *Engine) Resize(hashMiB int) {
	e.table.Resize(hashMiB)
}

// StopSearch requests cancellation of whatever search is currently
// running, if any. Safe to call concurrently with Search.
func (e *Engine) StopSearch() {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()
	if cur != nil {
		cur.Stop()
	}
}

// Search runs iterative deepening from root under limits, reporting one
// Info per completed depth via onInfo, and returns the best move found.
// rootHistory is the Zobrist hash of every position played so far in the
// game, oldest first, root position's own hash last — used to seed
// in-search repetition detection (§4.7).
func (e *Engine) Search(root *board.Position, rootHistory []uint64, limits Limits, onInfo func(Info)) (board.Move, int) {
	e.table.Age()
	e.history.Age()

	acc := nnue.NewAccumulatorStack(e.net)
	acc.Refresh(RefreshOccupants(root))

	s := &Searcher{
		tt:          e.table,
		net:         e.net,
		lmr:         e.lmr,
		history:     &e.history,
		acc:         acc,
		gameHistory: append([]uint64(nil), rootHistory...),
		onInfo:      onInfo,
		startTime:   time.Now(),
	}

	maxDepth := MaxPly - 1
	if limits.Depth > 0 {
		maxDepth = limits.Depth
	}
	if limits.Nodes > 0 {
		s.hasNodeLimit = true
		s.nodeLimit = limits.Nodes
	}

	switch {
	case limits.MoveTime > 0:
		s.hasTime = true
		s.maxTime = limits.MoveTime
		s.optTime = limits.MoveTime
	case limits.Infinite:
		// no time budget; Depth/Nodes (if any) are the only bound.
	case limits.WhiteTime > 0 || limits.BlackTime > 0:
		timeLeft, inc := limits.BlackTime, limits.BlackInc
		if root.SideToMove == board.White {
			timeLeft, inc = limits.WhiteTime, limits.WhiteInc
		}
		opt, max := ComputeBudget(timeLeft, inc, limits.MovesToGo)
		s.hasTime = true
		s.optTime = opt
		s.maxTime = max
	}

	e.mu.Lock()
	e.current = s
	e.mu.Unlock()

	best, score := s.IterativeDeepening(root, maxDepth)

	e.mu.Lock()
	e.current = nil
	e.mu.Unlock()

	return best, score
}

// Evaluate returns the static NNUE evaluation of pos from the side to
// move's perspective, without any search.
func (e *Engine) Evaluate(pos *board.Position) int {
	acc := nnue.NewAccumulatorStack(e.net)
	acc.Refresh(RefreshOccupants(pos))
	return int(acc.Evaluate(int(pos.SideToMove)))
}

// HashFull reports transposition table occupancy in permille.
func (e *Engine) HashFull() int {
	return e.table.HashFull()
}

// Probe exposes the transposition table for persistence checkpointing
// (internal/persist walks a PV and snapshots each hash's entry).
func (e *Engine) Probe(hash uint64) (tt.Entry, bool) {
	return e.table.Probe(hash)
}

// Table exposes the transposition table so internal/persist can warm it up
// from a prior session's checkpoint on startup.
func (e *Engine) Table() *tt.Table {
	return e.table
}
