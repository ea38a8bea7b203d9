package stats

import (
	"github.com/Rapou7/BudTracker/internal/core"
)

// Periods are the preset analysis windows offered by the stats screen.
var Periods = []int{7, 30, 90}

// PeriodPoint is one calendar day inside a period window.
type PeriodPoint struct {
	Date core.Date
	// Label is the axis label for this bucket; empty on buckets the label
	// stride skips. Unlabeled buckets still carry data.
	Label string
	// Amount is the day's own spend.
	Amount core.Money
	// Cumulative is the running total of all buckets up to and including
	// this one.
	Cumulative core.Money
}

// Series is the cumulative spend curve for one period window.
type Series struct {
	Points []PeriodPoint
	// Total equals the last point's cumulative value.
	Total core.Money
}

// BuildSeries buckets entries into one cell per calendar day from
// now-(days-1) to now inclusive and accumulates a running total oldest to
// newest. Entries outside the window are dropped, not clamped.
func BuildSeries(entries []core.Entry, days int, now core.Date) Series {
	if days <= 0 {
		return Series{}
	}

	first := now.AddDays(-(days - 1))

	buckets := make(map[string]int64, days)
	for i := 0; i < days; i++ {
		buckets[first.AddDays(i).Key()] = 0
	}
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		key := e.Date.Key()
		if _, ok := buckets[key]; ok {
			buckets[key] += e.Amount.Cents
		}
	}

	stride := labelStride(days)
	points := make([]PeriodPoint, days)
	var running int64
	for i := 0; i < days; i++ {
		day := first.AddDays(i)
		running += buckets[day.Key()]

		daysAgo := days - 1 - i
		label := ""
		if daysAgo%stride == 0 {
			label = day.Format("Jan 2")
		}

		points[i] = PeriodPoint{
			Date:       day,
			Label:      label,
			Amount:     core.Money{Cents: buckets[day.Key()]},
			Cumulative: core.Money{Cents: running},
		}
	}

	return Series{Points: points, Total: core.Money{Cents: running}}
}

// TotalForWindow sums the spend of the last `days` calendar days ending at
// now. For any input it equals the final cumulative point of BuildSeries
// with the same parameters.
func TotalForWindow(entries []core.Entry, days int, now core.Date) core.Money {
	if days <= 0 {
		return core.Money{}
	}

	first := now.AddDays(-(days - 1))
	firstKey := first.Key()
	lastKey := now.Key()

	var total int64
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		key := e.Date.Key()
		if key >= firstKey && key <= lastKey {
			total += e.Amount.Cents
		}
	}
	return core.Money{Cents: total}
}

// labelStride is how many days apart axis labels sit: every bucket for week
// windows, every 5th for 30-day windows, every 15th for 90-day windows.
func labelStride(days int) int {
	switch days {
	case 30:
		return 5
	case 90:
		return 15
	default:
		return 1
	}
}
