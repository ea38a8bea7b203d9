// Package store implements the persistent record stores: one for purchase
// entries and one for the bounded list of favorite templates.
//
// Both stores persist through the kv blob medium with whole-collection
// read-modify-write: every mutation loads the full collection, applies the
// change in memory and writes the full collection back. A per-store mutex
// serializes mutations so overlapping callers cannot lose each other's
// writes.
package store

import (
	"errors"
	"fmt"

	"github.com/Rapou7/BudTracker/internal/kv"
)

const (
	entriesKey   = "entries"
	favoritesKey = "favorites"
)

// MaxFavorites is the hard cap on stored favorite templates. Adding beyond
// it fails; the store never evicts to make room.
const MaxFavorites = 6

var (
	ErrNotFound     = errors.New("record not found")
	ErrMaxFavorites = errors.New("max favorites reached")
)

func decodeErr(key string, err error) error {
	return fmt.Errorf("%w: decode %s collection: %v", kv.ErrIO, key, err)
}

func encodeErr(key string, err error) error {
	return fmt.Errorf("%w: encode %s collection: %v", kv.ErrIO, key, err)
}
