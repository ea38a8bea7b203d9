package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Rapou7/BudTracker/internal/core"
	"github.com/Rapou7/BudTracker/internal/stats"
	"github.com/Rapou7/BudTracker/internal/store"
)

// LedgerService orchestrates the entry and favorite stores and derives the
// dashboard and analysis views. All derived views of one call come from a
// single List() snapshot, so a render never mixes two data versions.
type LedgerService struct {
	entries   *store.EntryStore
	favorites *store.FavoriteStore
}

func NewLedgerService(entries *store.EntryStore, favorites *store.FavoriteStore) *LedgerService {
	return &LedgerService{
		entries:   entries,
		favorites: favorites,
	}
}

// Dashboard is everything the main screen renders: header summary, heatmap
// cells and the entry history, newest first.
type Dashboard struct {
	Summary  core.Summary
	Calendar []stats.CalendarCell
	History  []core.Entry
}

// Analysis is everything the stats screen renders for one period selection.
type Analysis struct {
	Days   int
	Series stats.Series
	// Totals holds the fixed 7/30/90-day total cards, keyed by window size.
	Totals map[int]core.Money
}

func (s *LedgerService) AddEntry(ctx context.Context, draft core.Entry) (core.Entry, error) {
	return s.entries.Add(ctx, draft)
}

func (s *LedgerService) UpdateEntry(ctx context.Context, entry core.Entry) (core.Entry, error) {
	return s.entries.Update(ctx, entry)
}

func (s *LedgerService) RemoveEntry(ctx context.Context, id string) error {
	return s.entries.Remove(ctx, id)
}

func (s *LedgerService) AddFavorite(ctx context.Context, template core.Favorite) (core.Favorite, error) {
	return s.favorites.Add(ctx, template)
}

func (s *LedgerService) RemoveFavorite(ctx context.Context, id string) error {
	return s.favorites.Remove(ctx, id)
}

func (s *LedgerService) Favorites(ctx context.Context) ([]core.Favorite, error) {
	return s.favorites.List(ctx)
}

// QuickAdd creates an entry from a stored favorite template, dated today.
func (s *LedgerService) QuickAdd(ctx context.Context, favoriteID string, today core.Date) (core.Entry, error) {
	favorites, err := s.favorites.List(ctx)
	if err != nil {
		return core.Entry{}, err
	}
	for _, f := range favorites {
		if f.ID == favoriteID {
			entry, err := s.entries.Add(ctx, f.AsEntry(today))
			if err != nil {
				return core.Entry{}, err
			}
			slog.InfoContext(ctx, "Quick add from favorite",
				"favorite_id", favoriteID, "entry_id", entry.ID)
			return entry, nil
		}
	}
	return core.Entry{}, fmt.Errorf("quick add favorite %s: %w", favoriteID, store.ErrNotFound)
}

// Dashboard derives the main-screen views from one entry snapshot.
// heatmapDays is the calendar window size ending today.
func (s *LedgerService) Dashboard(ctx context.Context, today core.Date, heatmapDays int) (Dashboard, error) {
	snapshot, err := s.entries.List(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard snapshot: %w", err)
	}

	var d Dashboard
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Summary = core.Summarize(snapshot, today)
		return nil
	})
	g.Go(func() error {
		d.Calendar = stats.BuildCalendar(snapshot, heatmapDays, today)
		return nil
	})
	g.Go(func() error {
		d.History = sortedByDateDesc(snapshot)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}

// Analyze derives the stats-screen views for the selected period window,
// plus the fixed preset total cards, all from one entry snapshot.
func (s *LedgerService) Analyze(ctx context.Context, today core.Date, days int) (Analysis, error) {
	snapshot, err := s.entries.List(ctx)
	if err != nil {
		return Analysis{}, fmt.Errorf("analysis snapshot: %w", err)
	}

	a := Analysis{Days: days}

	totals := make([]core.Money, len(stats.Periods))
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Series = stats.BuildSeries(snapshot, days, today)
		return nil
	})
	for i, p := range stats.Periods {
		g.Go(func() error {
			totals[i] = stats.TotalForWindow(snapshot, p, today)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Analysis{}, err
	}

	a.Totals = make(map[int]core.Money, len(stats.Periods))
	for i, p := range stats.Periods {
		a.Totals[p] = totals[i]
	}
	return a, nil
}

func sortedByDateDesc(entries []core.Entry) []core.Entry {
	out := append([]core.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date.Time)
	})
	return out
}
