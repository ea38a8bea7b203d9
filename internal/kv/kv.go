// Package kv defines the storage medium the ledger persists into: a local
// key-value blob primitive. The stores only ever read and write whole
// collections, so the contract is deliberately minimal.
package kv

import (
	"context"
	"errors"
)

var (
	// ErrIO marks any failure of the underlying medium. Implementations
	// wrap their errors with it so callers can classify storage trouble
	// separately from domain errors.
	ErrIO = errors.New("storage i/o failure")

	// ErrKeyNotFound is returned by Get when the slot has never been
	// written. It is not wrapped in ErrIO: an empty slot is a normal
	// state for a fresh install.
	ErrKeyNotFound = errors.New("key not found")
)

// Store is a local persistent key-value blob medium.
type Store interface {
	// Get returns the blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Close releases any underlying resources.
	Close() error
}
