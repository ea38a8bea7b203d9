package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Rapou7/BudTracker/internal/core"
	"github.com/Rapou7/BudTracker/internal/kv"
	applog "github.com/Rapou7/BudTracker/internal/log"
)

// FavoriteStore owns the bounded list of reusable entry templates.
type FavoriteStore struct {
	mu sync.Mutex
	kv kv.Store
}

func NewFavoriteStore(medium kv.Store) *FavoriteStore {
	return &FavoriteStore{kv: medium}
}

// Add validates the template, assigns a fresh ID and persists it. When
// MaxFavorites templates are already stored it fails with ErrMaxFavorites
// and leaves the collection untouched.
func (s *FavoriteStore) Add(ctx context.Context, template core.Favorite) (core.Favorite, error) {
	if err := template.Validate(); err != nil {
		return core.Favorite{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.load(ctx)
	if err != nil {
		return core.Favorite{}, err
	}
	if len(favorites) >= MaxFavorites {
		return core.Favorite{}, ErrMaxFavorites
	}

	template.ID = uuid.NewString()
	favorites = append(favorites, template)

	if err := s.save(ctx, favorites); err != nil {
		return core.Favorite{}, err
	}

	slog.InfoContext(ctx, "Favorite saved",
		applog.FieldEntryID, template.ID,
		applog.FieldCategory, template.Category,
		applog.FieldCount, len(favorites))

	return template, nil
}

// Remove deletes the favorite with the given ID, failing with ErrNotFound
// when it is absent.
func (s *FavoriteStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, f := range favorites {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("remove favorite %s: %w", id, ErrNotFound)
	}
	favorites = append(favorites[:idx], favorites[idx+1:]...)

	if err := s.save(ctx, favorites); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Favorite removed", applog.FieldEntryID, id)
	return nil
}

// List returns every stored favorite. Insertion order is not guaranteed to
// survive round-trips.
func (s *FavoriteStore) List(ctx context.Context) ([]core.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *FavoriteStore) load(ctx context.Context) ([]core.Favorite, error) {
	blob, err := s.kv.Get(ctx, favoritesKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read favorites: %w", err)
	}

	var favorites []core.Favorite
	if err := json.Unmarshal(blob, &favorites); err != nil {
		return nil, decodeErr(favoritesKey, err)
	}
	return favorites, nil
}

func (s *FavoriteStore) save(ctx context.Context, favorites []core.Favorite) error {
	blob, err := json.Marshal(favorites)
	if err != nil {
		return encodeErr(favoritesKey, err)
	}
	if err := s.kv.Set(ctx, favoritesKey, blob); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return nil
}
