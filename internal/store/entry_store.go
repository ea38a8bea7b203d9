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

// EntryStore owns the persisted purchase entries.
type EntryStore struct {
	mu sync.Mutex
	kv kv.Store
}

func NewEntryStore(medium kv.Store) *EntryStore {
	return &EntryStore{kv: medium}
}

// Add validates the draft, assigns a fresh ID and persists it. The draft's
// ID field is ignored. Timestamps are truncated to their calendar date.
func (s *EntryStore) Add(ctx context.Context, draft core.Entry) (core.Entry, error) {
	draft.Date = core.DateOf(draft.Date.Time)
	if err := draft.Validate(); err != nil {
		return core.Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return core.Entry{}, err
	}

	draft.ID = uuid.NewString()
	entries = append(entries, draft)

	if err := s.save(ctx, entries); err != nil {
		return core.Entry{}, err
	}

	slog.InfoContext(ctx, "Entry saved",
		applog.FieldEntryID, draft.ID,
		applog.FieldCategory, draft.Category,
		applog.FieldAmountCents, draft.Amount.Cents,
		applog.FieldDate, draft.Date.Key())

	return draft, nil
}

// Update replaces the stored entry with the same ID. Every other field may
// change, including category and date.
func (s *EntryStore) Update(ctx context.Context, entry core.Entry) (core.Entry, error) {
	entry.Date = core.DateOf(entry.Date.Time)
	if err := entry.Validate(); err != nil {
		return core.Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return core.Entry{}, err
	}

	idx := indexByID(entries, entry.ID)
	if idx < 0 {
		return core.Entry{}, fmt.Errorf("update entry %s: %w", entry.ID, ErrNotFound)
	}
	entries[idx] = entry

	if err := s.save(ctx, entries); err != nil {
		return core.Entry{}, err
	}

	slog.InfoContext(ctx, "Entry updated", applog.FieldEntryID, entry.ID, applog.FieldCategory, entry.Category)
	return entry, nil
}

// Remove deletes the entry with the given ID. Removing an absent ID is an
// error, so a repeated delete surfaces as ErrNotFound rather than a silent
// success.
func (s *EntryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	idx := indexByID(entries, id)
	if idx < 0 {
		return fmt.Errorf("remove entry %s: %w", id, ErrNotFound)
	}
	entries = append(entries[:idx], entries[idx+1:]...)

	if err := s.save(ctx, entries); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Entry removed", applog.FieldEntryID, id)
	return nil
}

// List returns every stored entry. No ordering is guaranteed; dashboards
// sort descending by date, analytics ascending.
func (s *EntryStore) List(ctx context.Context) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *EntryStore) load(ctx context.Context) ([]core.Entry, error) {
	blob, err := s.kv.Get(ctx, entriesKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	var entries []core.Entry
	if err := json.Unmarshal(blob, &entries); err != nil {
		return nil, decodeErr(entriesKey, err)
	}
	return entries, nil
}

func (s *EntryStore) save(ctx context.Context, entries []core.Entry) error {
	blob, err := json.Marshal(entries)
	if err != nil {
		return encodeErr(entriesKey, err)
	}
	if err := s.kv.Set(ctx, entriesKey, blob); err != nil {
		return fmt.Errorf("write entries: %w", err)
	}
	return nil
}

func indexByID(entries []core.Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
