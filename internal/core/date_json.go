package core

import (
	"encoding/json"
	"time"
)

// Date serializes as an RFC 3339 timestamp to stay readable alongside the
// collections the mobile exports used, but only the calendar-day part is
// meaningful and only that part survives a round-trip.

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// UnmarshalJSON accepts RFC 3339 timestamps and bare YYYY-MM-DD day-keys.
// A value that parses as neither leaves the zero Date: such entries stay
// loadable but never match any aggregation bucket.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = DateOf(t)
			return nil
		}
	}
	d.Time = time.Time{}
	return nil
}
