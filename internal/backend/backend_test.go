package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Rapou7/BudTracker/internal/core"
)

func TestOpenMemory(t *testing.T) {
	result, err := Open(Config{Type: Memory}, nil)
	if err != nil {
		t.Fatalf("open memory backend: %v", err)
	}
	defer result.Cleanup()

	ctx := context.Background()
	if _, err := result.Entries.Add(ctx, core.Entry{
		Date:     core.NewDate(2025, 5, 1),
		Amount:   core.Money{Cents: 100},
		Kind:     "x",
		Category: core.Other,
	}); err != nil {
		t.Fatalf("store on memory backend broken: %v", err)
	}
}

func TestOpenSQLite(t *testing.T) {
	result, err := Open(Config{
		Type:         SQLite,
		SQLiteDBPath: filepath.Join(t.TempDir(), "backend.db"),
	}, nil)
	if err != nil {
		t.Fatalf("open sqlite backend: %v", err)
	}
	defer result.Cleanup()

	ctx := context.Background()
	if _, err := result.Favorites.Add(ctx, core.Favorite{
		Amount:   core.Money{Cents: 100},
		Kind:     "x",
		Category: core.Other,
	}); err != nil {
		t.Fatalf("store on sqlite backend broken: %v", err)
	}
}

func TestOpenInvalidType(t *testing.T) {
	if _, err := Open(Config{Type: "redis"}, nil); err == nil {
		t.Fatalf("expected error for unknown backend type")
	}
}
