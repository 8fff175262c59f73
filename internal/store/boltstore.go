package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var bucketContract = []byte("contract")

// BoltDB persists contract state in a single bbolt bucket.
type BoltDB struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ DB = (*BoltDB)(nil)

// OpenBolt opens or creates the bbolt database at path.
// The parent directory is created if it does not exist.
func OpenBolt(path string) (*BoltDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketContract); err != nil {
			return fmt.Errorf("create bucket %q: %w", bucketContract, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// Update runs fn inside a bbolt read-write transaction.
func (s *BoltDB) Update(fn func(KVStore) error) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return fn(&boltTx{b: tx.Bucket(bucketContract)})
	})
}

// View runs fn inside a bbolt read-only transaction.
func (s *BoltDB) View(fn func(KVStore) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return fn(&boltTx{b: tx.Bucket(bucketContract), readOnly: true})
	})
}

// Close closes the underlying database.
func (s *BoltDB) Close() error { return s.db.Close() }

type boltTx struct {
	b        *bbolt.Bucket
	readOnly bool
}

func (t *boltTx) Get(key []byte) ([]byte, error) {
	v := t.b.Get(key)
	if v == nil {
		return nil, ErrNotFound
	}
	// bbolt memory is only valid for the life of the transaction.
	return clone(v), nil
}

func (t *boltTx) Set(key, value []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if value == nil {
		value = []byte{}
	}
	if err := t.b.Put(key, value); err != nil {
		return fmt.Errorf("store: put: %w", err)
	}
	return nil
}

func (t *boltTx) Delete(key []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if err := t.b.Delete(key); err != nil {
		return fmt.Errorf("store: delete: %w", err)
	}
	return nil
}

func (t *boltTx) Iterate(prefix []byte, fn func(key, value []byte) error) error {
	c := t.b.Cursor()
	var k, v []byte
	if len(prefix) == 0 {
		k, v = c.First()
	} else {
		k, v = c.Seek(prefix)
	}
	for ; k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		if err := fn(clone(k), clone(v)); err != nil {
			return err
		}
	}
	return nil
}
