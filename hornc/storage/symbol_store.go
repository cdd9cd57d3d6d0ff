// Package storage persists the interned symbol table between
// compilations so RAM domain values stay stable across runs.
package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/wbrown/janus-hornc/hornc"
)

var symbolPrefix = []byte("sym/")

// SymbolStore is a BadgerDB-backed symbol table snapshot. Keys are
// "sym/<8-byte big-endian index>" so iteration yields symbols in index
// order.
type SymbolStore struct {
	db *badger.DB
}

// OpenSymbolStore opens or creates the store at path
func OpenSymbolStore(path string) (*SymbolStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &SymbolStore{db: db}, nil
}

// Close releases the underlying database
func (s *SymbolStore) Close() error {
	return s.db.Close()
}

func symbolKey(index hornc.RamDomain) []byte {
	key := make([]byte, len(symbolPrefix)+8)
	copy(key, symbolPrefix)
	binary.BigEndian.PutUint64(key[len(symbolPrefix):], uint64(index))
	return key
}

// Persist writes the table's symbols to the store. Interning is
// append-only, so existing keys are simply rewritten with the same
// value.
func (s *SymbolStore) Persist(table *hornc.SymbolTable) error {
	symbols := table.Symbols()
	return s.db.Update(func(txn *badger.Txn) error {
		for i, sym := range symbols {
			if err := txn.Set(symbolKey(hornc.RamDomain(i)), []byte(sym)); err != nil {
				return fmt.Errorf("failed to write symbol %d: %w", i, err)
			}
		}
		return nil
	})
}

// Restore interns every stored symbol into the table in index order.
// Restoring into a fresh table reproduces the stored index assignment;
// restoring into a non-empty table re-interns without disturbing
// existing indices.
func (s *SymbolStore) Restore(table *hornc.SymbolTable) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = symbolPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(symbolPrefix); it.ValidForPrefix(symbolPrefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				table.Lookup(string(val))
				count++
				return nil
			})
			if err != nil {
				return fmt.Errorf("failed to read symbol: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Count returns the number of stored symbols
func (s *SymbolStore) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = symbolPrefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(symbolPrefix); it.ValidForPrefix(symbolPrefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
