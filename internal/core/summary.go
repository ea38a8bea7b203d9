package core

// Summary is the compact all-time overview shown on the dashboard header.
type Summary struct {
	TotalSpent Money
	TotalGrams float64
	// AvgMonthly is TotalSpent spread over the calendar months spanned
	// between the oldest entry and now, inclusive.
	AvgMonthly Money
}

// Summarize computes the dashboard overview from a snapshot of all entries.
// Entry order does not matter. With no entries everything is zero.
func Summarize(entries []Entry, now Date) Summary {
	var s Summary
	if len(entries) == 0 {
		return s
	}

	oldest := now
	for _, e := range entries {
		s.TotalSpent = s.TotalSpent.Add(e.Amount)
		s.TotalGrams += e.Grams
		if !e.Date.IsZero() && e.Date.Before(oldest.Time) {
			oldest = e.Date
		}
	}

	months := (now.Year()-oldest.Year())*12 + int(now.Month()) - int(oldest.Month()) + 1
	if months < 1 {
		months = 1
	}
	s.AvgMonthly = Money{Cents: s.TotalSpent.Cents / int64(months)}
	return s
}
