package store

import (
	"bytes"
	"errors"
	"sort"
	"sync"
)

var (
	// ErrNotFound is returned by Get when the key is absent.
	ErrNotFound = errors.New("store: key not found")

	// ErrReadOnly is returned when writing inside a View transaction.
	ErrReadOnly = errors.New("store: read-only transaction")
)

// KVStore is the key/value surface a contract call sees.
type KVStore interface {
	// Get returns the value stored at key, or ErrNotFound.
	Get(key []byte) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key []byte) error

	// Iterate calls fn for each pair whose key starts with prefix,
	// in ascending key order. A non-nil error from fn stops iteration.
	Iterate(prefix []byte, fn func(key, value []byte) error) error
}

// DB runs transactions over a KVStore.
type DB interface {
	// Update runs fn in a read-write transaction. Writes are committed
	// only if fn returns nil.
	Update(fn func(KVStore) error) error

	// View runs fn in a read-only transaction.
	View(fn func(KVStore) error) error

	Close() error
}

// MemDB is an in-memory DB for tests and dry runs.
type MemDB struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// Compile-time interface check.
var _ DB = (*MemDB)(nil)

// NewMemDB creates an empty in-memory DB.
func NewMemDB() *MemDB {
	return &MemDB{data: make(map[string][]byte)}
}

// Update runs fn against an overlay that is merged on success.
func (m *MemDB) Update(fn func(KVStore) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{base: m.data, writes: make(map[string][]byte), deletes: make(map[string]bool)}
	if err := fn(tx); err != nil {
		return err
	}
	for k := range tx.deletes {
		delete(m.data, k)
	}
	for k, v := range tx.writes {
		m.data[k] = v
	}
	return nil
}

// View runs fn against the current data.
func (m *MemDB) View(fn func(KVStore) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(&memTx{base: m.data, readOnly: true})
}

// Close is a no-op.
func (m *MemDB) Close() error { return nil }

// memTx is a copy-on-write overlay over the MemDB map.
type memTx struct {
	base     map[string][]byte
	writes   map[string][]byte
	deletes  map[string]bool
	readOnly bool
}

func (t *memTx) Get(key []byte) ([]byte, error) {
	k := string(key)
	if v, ok := t.writes[k]; ok {
		return clone(v), nil
	}
	if t.deletes[k] {
		return nil, ErrNotFound
	}
	v, ok := t.base[k]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(v), nil
}

func (t *memTx) Set(key, value []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	k := string(key)
	delete(t.deletes, k)
	t.writes[k] = clone(value)
	return nil
}

func (t *memTx) Delete(key []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	k := string(key)
	delete(t.writes, k)
	t.deletes[k] = true
	return nil
}

func (t *memTx) Iterate(prefix []byte, fn func(key, value []byte) error) error {
	merged := make(map[string][]byte)
	for k, v := range t.base {
		if !t.deletes[k] {
			merged[k] = v
		}
	}
	for k, v := range t.writes {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := fn([]byte(k), clone(merged[k])); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot copies every pair in db. Tests use it to compare state before
// and after a call.
func Snapshot(db DB) (map[string][]byte, error) {
	out := make(map[string][]byte)
	err := db.View(func(kv KVStore) error {
		return kv.Iterate(nil, func(k, v []byte) error {
			out[string(k)] = v
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
