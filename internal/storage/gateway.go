// Package storage provides the durable key-value gateway backing the
// inventory collections. The contract is two named entries holding the
// serialized product and category collections; backends only move bytes.
package storage

import (
	"context"
	"errors"
)

// Entry keys for the two persisted collections.
const (
	ProductsKey   = "restaurant_stock"
	CategoriesKey = "restaurant_categories"
)

// ErrCorrupted indicates a persisted entry exists but could not be decoded.
// It surfaces as a startup fault; there is no partial-recovery parsing.
var ErrCorrupted = errors.New("persisted state corrupted")

// Gateway is the durable key-value store backing products and categories.
// Get returns (nil, nil) for a key that has never been written; absence is
// normal, not a failure.
type Gateway interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
