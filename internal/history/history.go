// Package history persists how many times each application was launched.
//
// Counters are keyed by the UTF-8 bytes of the entry name and stored as
// fixed 8-byte little-endian values, one bbolt bucket for all of them.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store is the launch counter interface the catalog consumes.
type Store interface {
	// Lookup returns the counter for name, or 0 if it was never recorded.
	Lookup(name string) (uint64, error)
	// Record sets the counter for name.
	Record(name string, count uint64) error
}

var bucketName = []byte("history")

// openTimeout bounds how long Open waits for another process holding the file.
const openTimeout = time.Second

// DB is a Store backed by a bbolt file.
type DB struct {
	db *bolt.DB
}

// Open opens (creating it if needed) the history database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open history db %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init history db %s: %w", path, err)
	}

	return &DB{db: db}, nil
}

// Lookup implements Store.
func (h *DB) Lookup(name string) (uint64, error) {
	var count uint64
	err := h.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(name))
		if v == nil {
			return nil
		}
		var err error
		count, err = Decode(v)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to look up %q: %w", name, err)
	}
	return count, nil
}

// Record implements Store.
func (h *DB) Record(name string, count uint64) error {
	err := h.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put([]byte(name), Encode(count))
	})
	if err != nil {
		return fmt.Errorf("failed to record %q: %w", name, err)
	}
	return nil
}

// Close releases the database file.
func (h *DB) Close() error {
	return h.db.Close()
}

// ErrInvalidValue is returned for stored values that are not 8 bytes long.
var ErrInvalidValue = errors.New("invalid data stored in database")
