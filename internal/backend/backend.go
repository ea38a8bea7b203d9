// Package backend wires a kv medium and the two record stores together from
// configuration.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/Rapou7/BudTracker/internal/kv"
	kvmem "github.com/Rapou7/BudTracker/internal/kv/memory"
	kvsqlite "github.com/Rapou7/BudTracker/internal/kv/sqlite"
	"github.com/Rapou7/BudTracker/internal/store"
)

// Type selects the storage medium implementation.
type Type string

const (
	SQLite Type = "sqlite"
	Memory Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case SQLite, Memory:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Config holds what backend construction needs.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string
}

// Result bundles the constructed stores with their cleanup function.
type Result struct {
	Entries   *store.EntryStore
	Favorites *store.FavoriteStore
	Cleanup   CleanupFunc
}

// Open builds the kv medium named by config and the stores on top of it.
func Open(config Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	var medium kv.Store
	switch config.Type {
	case SQLite:
		s, err := kvsqlite.New(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		medium = s
		logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	case Memory:
		medium = kvmem.New()
		logger.Info("Initialized memory backend")
	}

	return &Result{
		Entries:   store.NewEntryStore(medium),
		Favorites: store.NewFavoriteStore(medium),
		Cleanup:   medium.Close,
	}, nil
}
