// Package persist provides an optional on-disk warm-cache for
// transposition-table entries, keyed by Zobrist hash, so a long analysis
// session survives an engine restart. It is grounded on the teacher's
// internal/storage package, which opens the same BadgerDB for user
// preferences and game statistics — the storage engine is unchanged, only
// the schema and the value it persists differ.
package persist

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"

	"github.com/corvidchess/corvid/internal/tt"
)

// Store wraps a BadgerDB directory holding cached TT entries.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a Store rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

const entryRecordSize = 2 + 2 + 2 + 1 + 1 // key + move + score + depth + bound

// Put persists entry under hash, overwriting any prior record.
func (s *Store) Put(hash uint64, entry tt.Entry) error {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, hash)

	val := make([]byte, entryRecordSize)
	binary.LittleEndian.PutUint16(val[0:2], entry.Key)
	binary.LittleEndian.PutUint16(val[2:4], entry.Move)
	binary.LittleEndian.PutUint16(val[4:6], uint16(entry.Score))
	val[6] = entry.Depth
	val[7] = byte(entry.Bound)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}

// Get retrieves the entry stored for hash, if any.
func (s *Store) Get(hash uint64) (tt.Entry, bool, error) {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, hash)

	var entry tt.Entry
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != entryRecordSize {
				return nil
			}
			entry = tt.Entry{
				Key:   binary.LittleEndian.Uint16(val[0:2]),
				Move:  binary.LittleEndian.Uint16(val[2:4]),
				Score: int16(binary.LittleEndian.Uint16(val[4:6])),
				Depth: val[6],
				Bound: tt.Bound(val[7]),
			}
			found = true
			return nil
		})
	})

	return entry, found, err
}

// WarmUp loads every cached entry whose depth is at least minDepth into
// table, seeding a fresh in-memory transposition table from the last
// session's cache (§ persistence, SPEC_FULL.md DOMAIN STACK). Entries below
// minDepth are skipped: a shallow cached line is worth less than letting
// the search's own replacement policy fill that slot fresh.
func (s *Store) WarmUp(table *tt.Table, minDepth uint8) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			keyBytes := item.Key()
			if len(keyBytes) != 8 {
				continue
			}
			hash := binary.LittleEndian.Uint64(keyBytes)

			err := item.Value(func(val []byte) error {
				if len(val) != entryRecordSize {
					return nil
				}
				depth := val[6]
				if depth < minDepth {
					return nil
				}
				score := int16(binary.LittleEndian.Uint16(val[4:6]))
				bound := tt.Bound(val[7])
				move := binary.LittleEndian.Uint16(val[2:4])
				table.Store(hash, 0, move, tt.DecodeScore(score, 0), int(depth), bound)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// CheckpointLine persists the TT entry at each hash in hashes (typically
// the root position followed by every position along the most recent
// principal variation). The Table's open-addressed slots carry only a
// 16-bit verification key (§4.2), not the full 64-bit hash, so a whole-
// table snapshot can't recover its own keys; checkpointing the live PV
// instead captures exactly the lines worth resuming into on restart.
func (s *Store) CheckpointLine(probe func(hash uint64) (tt.Entry, bool), hashes []uint64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, hash := range hashes {
			entry, hit := probe(hash)
			if !hit {
				continue
			}
			key := make([]byte, 8)
			binary.LittleEndian.PutUint64(key, hash)

			val := make([]byte, entryRecordSize)
			binary.LittleEndian.PutUint16(val[0:2], entry.Key)
			binary.LittleEndian.PutUint16(val[2:4], entry.Move)
			binary.LittleEndian.PutUint16(val[4:6], uint16(entry.Score))
			val[6] = entry.Depth
			val[7] = byte(entry.Bound)

			if err := txn.Set(key, val); err != nil {
				return err
			}
		}
		return nil
	})
}
