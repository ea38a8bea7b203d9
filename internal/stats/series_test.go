package stats

import (
	"reflect"
	"testing"

	"github.com/Rapou7/BudTracker/internal/core"
)

func TestBuildSeriesThreeDayWindow(t *testing.T) {
	day0 := core.NewDate(2025, 5, 1)
	day2 := core.NewDate(2025, 5, 3)
	entries := []core.Entry{
		entry(day0, 1000, core.Weed),
		entry(day0, 500, core.Weed),
		entry(day2, 300, core.Alcohol),
	}

	s := BuildSeries(entries, 3, day2)
	if len(s.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(s.Points))
	}

	cumulative := []int64{s.Points[0].Cumulative.Cents, s.Points[1].Cumulative.Cents, s.Points[2].Cumulative.Cents}
	if !reflect.DeepEqual(cumulative, []int64{1500, 1500, 1800}) {
		t.Fatalf("expected cumulative [1500 1500 1800], got %v", cumulative)
	}
	if s.Total.Cents != 1800 {
		t.Fatalf("expected window total 1800, got %d", s.Total.Cents)
	}
	if s.Points[0].Date != day0 || s.Points[2].Date != day2 {
		t.Fatalf("points must run oldest to newest")
	}
}

func TestBuildSeriesHardFilter(t *testing.T) {
	now := core.NewDate(2025, 5, 10)
	entries := []core.Entry{
		entry(now.AddDays(-7), 9999, core.Weed), // outside a 7-day window
		entry(now.AddDays(-6), 100, core.Weed),  // first day of the window
		entry(now, 50, core.Weed),
	}
	s := BuildSeries(entries, 7, now)
	if s.Total.Cents != 150 {
		t.Fatalf("out-of-range entries must be dropped, not clamped; total %d", s.Total.Cents)
	}
}

func TestTotalForWindowMatchesSeries(t *testing.T) {
	now := core.NewDate(2025, 5, 10)
	entries := []core.Entry{
		entry(now, 100, core.Weed),
		entry(now.AddDays(-3), 250, core.Alcohol),
		entry(now.AddDays(-29), 40, core.Tobacco),
		entry(now.AddDays(-30), 9999, core.Other),
		{Amount: core.Money{Cents: 777}, Kind: "x", Category: core.Weed}, // zero date, never bucketed
	}
	for _, days := range []int{1, 7, 30, 90} {
		s := BuildSeries(entries, days, now)
		total := TotalForWindow(entries, days, now)
		if last := s.Points[len(s.Points)-1].Cumulative; last != total {
			t.Fatalf("days=%d: series end %d != window total %d", days, last.Cents, total.Cents)
		}
	}
}

func TestBuildSeriesZeroDays(t *testing.T) {
	s := BuildSeries([]core.Entry{entry(core.NewDate(2025, 1, 1), 10, core.Other)}, 0, core.NewDate(2025, 1, 1))
	if len(s.Points) != 0 || s.Total.Cents != 0 {
		t.Fatalf("days=0 should yield an empty series, got %+v", s)
	}
	if TotalForWindow(nil, 0, core.NewDate(2025, 1, 1)).Cents != 0 {
		t.Fatalf("days=0 window total should be zero")
	}
}

func TestBuildSeriesLabels(t *testing.T) {
	now := core.NewDate(2025, 5, 10)

	s7 := BuildSeries(nil, 7, now)
	for i, p := range s7.Points {
		if p.Label == "" {
			t.Fatalf("7-day windows label every bucket; point %d empty", i)
		}
	}

	s30 := BuildSeries(nil, 30, now)
	labeled := 0
	for i, p := range s30.Points {
		daysAgo := 29 - i
		if daysAgo%5 == 0 {
			if p.Label == "" {
				t.Fatalf("point %d (%d days ago) should be labeled", i, daysAgo)
			}
			labeled++
		} else if p.Label != "" {
			t.Fatalf("point %d (%d days ago) should be unlabeled", i, daysAgo)
		}
	}
	if labeled != 6 {
		t.Fatalf("30-day window should carry 6 labels, got %d", labeled)
	}
	// The newest bucket is always labeled.
	if s30.Points[29].Label == "" {
		t.Fatalf("newest bucket must be labeled")
	}

	s90 := BuildSeries(nil, 90, now)
	for i, p := range s90.Points {
		daysAgo := 89 - i
		if (daysAgo%15 == 0) != (p.Label != "") {
			t.Fatalf("90-day label stride wrong at point %d", i)
		}
	}
}

func TestBuildSeriesIdempotent(t *testing.T) {
	now := core.NewDate(2025, 5, 10)
	entries := []core.Entry{
		entry(now, 100, core.Weed),
		entry(now.AddDays(-2), 250, core.Alcohol),
	}
	a := BuildSeries(entries, 30, now)
	b := BuildSeries(entries, 30, now)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs must yield identical output")
	}
}
