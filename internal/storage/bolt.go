package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// entriesBucket holds every gateway entry; a single flat namespace is all
// the two-entry contract needs.
var entriesBucket = []byte("entries")

// BoltGateway implements Gateway on a bbolt file. It is the default backend:
// a single-file embedded key-value store, the closest Go analog to the
// browser-local storage this tool replaces.
type BoltGateway struct {
	db *bolt.DB
}

// NewBoltGateway opens (creating if needed) a bbolt-backed gateway at path.
func NewBoltGateway(path string) (*BoltGateway, error) {
	if err := validateKey(path); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(entriesBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create entries bucket: %w", err)
	}

	return &BoltGateway{db: db}, nil
}

// Get returns the entry for key, or (nil, nil) if it was never written.
func (g *BoltGateway) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := g.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(entriesBucket).Get([]byte(key))
		if v != nil {
			// bbolt values are only valid inside the transaction
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %q: %w", key, err)
	}
	return value, nil
}

// Put writes the entry for key, replacing any previous value.
func (g *BoltGateway) Put(ctx context.Context, key string, value []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	err := g.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write entry %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry for key. Deleting a missing key is a no-op.
func (g *BoltGateway) Delete(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	err := g.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete entry %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database file.
func (g *BoltGateway) Close() error {
	return g.db.Close()
}
