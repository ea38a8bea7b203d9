// Package stats derives read-only views from an entry snapshot: the day-by-day
// calendar heatmap grid and the cumulative period series. Everything here is a
// pure function; callers pass one List() snapshot and re-derive on change.
package stats

import (
	"github.com/Rapou7/BudTracker/internal/core"
)

// CalendarCell is the aggregate for one calendar day inside a heatmap window.
type CalendarCell struct {
	Date    core.Date
	Amount  core.Money
	Entries []core.Entry
	// Categories holds the distinct categories seen that day, first
	// occurrence first. A day with two purchases of the same category is a
	// single-category day.
	Categories []core.Category
	// Intensity is Amount normalized to [0,1] by the window's maximum
	// per-day amount, 0 when the whole window is empty.
	Intensity float64
}

// BuildCalendar buckets entries into exactly numDays calendar-day cells
// ending at end inclusive, oldest first. Entries whose calendar day falls
// outside the window are ignored entirely, as are entries without a valid
// date.
func BuildCalendar(entries []core.Entry, numDays int, end core.Date) []CalendarCell {
	if numDays <= 0 {
		return nil
	}

	type bucket struct {
		amount     core.Money
		entries    []core.Entry
		categories []core.Category
	}

	byDay := make(map[string]*bucket)
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		key := e.Date.Key()
		b, ok := byDay[key]
		if !ok {
			b = &bucket{}
			byDay[key] = b
		}
		b.amount = b.amount.Add(e.Amount)
		b.entries = append(b.entries, e)

		cat := e.Category
		if cat == "" {
			cat = core.Other
		}
		if !containsCategory(b.categories, cat) {
			b.categories = append(b.categories, cat)
		}
	}

	first := end.AddDays(-(numDays - 1))

	var max int64
	for i := 0; i < numDays; i++ {
		if b, ok := byDay[first.AddDays(i).Key()]; ok && b.amount.Cents > max {
			max = b.amount.Cents
		}
	}

	cells := make([]CalendarCell, numDays)
	for i := 0; i < numDays; i++ {
		day := first.AddDays(i)
		cell := CalendarCell{Date: day}
		if b, ok := byDay[day.Key()]; ok {
			cell.Amount = b.amount
			cell.Entries = b.entries
			cell.Categories = b.categories
			if max > 0 {
				cell.Intensity = float64(b.amount.Cents) / float64(max)
			}
		}
		cells[i] = cell
	}
	return cells
}

// CellPosition maps a cell index to (week, weekday) grid coordinates. The
// weekday of the window's first day offsets column zero, so the linear day
// sequence lays out as a calendar grid. Weekday 0 is Sunday.
func CellPosition(first core.Date, index int) (week, weekday int) {
	offset := index + int(first.Weekday())
	return offset / 7, offset % 7
}

// GridWeeks returns how many week columns a window occupies once the first
// day's weekday offset is applied.
func GridWeeks(first core.Date, numDays int) int {
	if numDays <= 0 {
		return 0
	}
	return (numDays + int(first.Weekday()) + 6) / 7
}

func containsCategory(cats []core.Category, c core.Category) bool {
	for _, have := range cats {
		if have == c {
			return true
		}
	}
	return false
}
