package tt

// replacementDepthMargin is how much shallower an incoming store may be than
// the stored entry and still overwrite it (§4.2 condition c).
const replacementDepthMargin = 3

// entrySize is the per-slot byte count New divides the table size by: the
// size of {key,move,score,depth} plus one byte for age and bound packed
// together. Entry keeps age and Bound in separate fields, so an in-memory
// slot is larger than this.
const entrySize = 8

// Table is the fixed-size, open-addressed transposition table. There is no
// chaining: every hash maps to exactly one slot, and collisions are
// resolved entirely by the replacement policy in Store.
type Table struct {
	entries []Entry
	mask    uint64
	age     uint8

	probes uint64
	hits   uint64
}

// New allocates a table sized to mib mebibytes, rounded down to a power of
// two so index-by-mask works without a division.
func New(mib int) *Table {
	if mib < 1 {
		mib = 1
	}
	size := roundDownPow2(uint64(mib) << 20 / entrySize)
	if size == 0 {
		size = 1
	}
	return &Table{
		entries: make([]Entry, size),
		mask:    size - 1,
	}
}

func roundDownPow2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	p := uint64(1)
	for p*2 <= n {
		p *= 2
	}
	return p
}

func (t *Table) index(hash uint64) uint64 {
	return hash & t.mask
}

// Resize reallocates the table to a new size, discarding all entries — the
// teacher's internal/uci/uci.go leaves "Hash" resize as a TODO; this
// implementation performs it for real (see SPEC_FULL.md supplemented
// features).
func (t *Table) Resize(mib int) {
	*t = *New(mib)
}

// Probe returns the slot addressed by hash and whether its key matches
// (a hit) or not (a miss/collision). On a miss the returned Entry is the
// zero value, not the slot's contents. The caller still owns interpreting
// depth/bound against its own alpha-beta window.
func (t *Table) Probe(hash uint64) (entry Entry, hit bool) {
	t.probes++
	e := t.entries[t.index(hash)]
	if e.Bound != BoundNone && e.Key == uint16(hash) {
		t.hits++
		return e, true
	}
	return Entry{}, false
}

// Store writes an entry honoring the replacement policy: overwrite if the
// probe is at the root, the stored entry is from an older generation, the
// incoming depth is within replacementDepthMargin of the stored depth, or
// the incoming bound is Exact while the stored one is not.
func (t *Table) Store(hash uint64, ply int, move uint16, score int, depth int, bound Bound) {
	idx := t.index(hash)
	existing := &t.entries[idx]

	isRoot := ply == 0
	olderGen := existing.Bound == BoundNone || existing.age != t.age
	deepEnough := depth+replacementDepthMargin >= int(existing.Depth)
	upgradingToExact := bound == BoundExact && existing.Bound != BoundExact

	if !(isRoot || olderGen || deepEnough || upgradingToExact) {
		return
	}

	// Keep the previously stored move if this store has none (e.g. a
	// fail-low at a node that still benefits from ordering on re-probe).
	if move == 0 && existing.Key == uint16(hash) && existing.Move != 0 {
		move = existing.Move
	}

	*existing = Entry{
		Key:   uint16(hash),
		Move:  move,
		Score: EncodeScore(score, ply),
		Depth: uint8(clampDepth(depth)),
		age:   t.age,
		Bound: bound,
	}
}

func clampDepth(d int) int {
	if d < 0 {
		return 0
	}
	if d > 255 {
		return 255
	}
	return d
}

// Age advances the generation counter, wrapping at 6 bits. Called once per
// search (not per node): stale entries from earlier searches become
// preferentially replaceable without being zeroed outright.
func (t *Table) Age() {
	t.age = (t.age + 1) & 0x3F
}

// Reset zeroes every slot and the generation counter. Called on ucinewgame.
func (t *Table) Reset() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.age = 0
	t.probes, t.hits = 0, 0
}

// HashFull estimates occupancy in permille, sampling the first 1000 slots
// the way UCI's "info ... hashfull" expects.
func (t *Table) HashFull() int {
	n := len(t.entries)
	if n == 0 {
		return 0
	}
	sample := n
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.entries[i].Bound != BoundNone {
			used++
		}
	}
	return used * 1000 / sample
}

// Len reports the number of slots.
func (t *Table) Len() int {
	return len(t.entries)
}

// Prefetch is a hint that the slot for hash will be probed shortly. Go has
// no portable prefetch intrinsic reachable from the standard toolchain
// without assembly, so this is a documented no-op — present to keep the
// search driver's call site matching §4.6's node preamble exactly, ready
// to become a real prefetch if a platform-specific build tag is added
// later.
func (t *Table) Prefetch(hash uint64) {
	_ = hash
}
