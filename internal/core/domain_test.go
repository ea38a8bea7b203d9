package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Fatalf("%s should be valid", c)
		}
	}
	if Category("Coffee").Valid() {
		t.Fatalf("unknown category should be invalid")
	}
	if Category("").Valid() {
		t.Fatalf("empty category should be invalid")
	}
}

func TestDateOfTruncates(t *testing.T) {
	ts := time.Date(2025, 3, 14, 23, 45, 12, 0, time.UTC)
	d := DateOf(ts)
	if d.Key() != "2025-03-14" {
		t.Fatalf("expected day-key 2025-03-14, got %s", d.Key())
	}
	if !d.Equal(NewDate(2025, 3, 14).Time) {
		t.Fatalf("truncated date should equal the plain calendar date")
	}
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2025, 3, 1)
	if got := d.AddDays(-1).Key(); got != "2025-02-28" {
		t.Fatalf("expected 2025-02-28, got %s", got)
	}
	if got := d.AddDays(31).Key(); got != "2025-04-01" {
		t.Fatalf("expected 2025-04-01, got %s", got)
	}
}

func TestEntryValidate(t *testing.T) {
	good := Entry{
		Date:     NewDate(2025, 1, 1),
		Amount:   Money{Cents: 1000},
		Grams:    3.5,
		Source:   "dispensary",
		Kind:     "indica",
		Category: Weed,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Zero amount and zero grams are allowed; source and notes are optional.
	free := Entry{Date: NewDate(2025, 1, 1), Kind: "beer", Category: Alcohol}
	if err := free.Validate(); err != nil {
		t.Fatalf("zero amounts should be valid, got %v", err)
	}

	bads := []Entry{
		{Amount: Money{Cents: 1}, Kind: "a", Category: Weed},                                        // zero date
		{Date: NewDate(2025, 1, 1), Amount: Money{Cents: -1}, Kind: "a", Category: Weed},            // negative amount
		{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 1}, Grams: -0.5, Kind: "a", Category: Weed}, // negative grams
		{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 1}, Kind: "  ", Category: Weed},            // blank kind
		{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 1}, Kind: "a", Category: "Snacks"},         // unknown category
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestFavoriteValidateAndAsEntry(t *testing.T) {
	f := Favorite{
		Amount:   Money{Cents: 2500},
		Grams:    2,
		Source:   "shop",
		Kind:     "usual",
		Category: Tobacco,
		Notes:    "weekly",
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	today := NewDate(2025, 6, 15)
	e := f.AsEntry(today)
	if e.ID != "" {
		t.Fatalf("materialized entry must not carry an id")
	}
	if e.Date != today || e.Amount != f.Amount || e.Kind != f.Kind || e.Category != f.Category {
		t.Fatalf("materialized entry should copy the template fields")
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("materialized entry should validate, got %v", err)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	in := Entry{Date: NewDate(2025, 2, 3), Amount: Money{Cents: 100}, Kind: "x", Category: Other}
	blob, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Entry
	if err := json.Unmarshal(blob, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Date.Key() != "2025-02-03" {
		t.Fatalf("expected 2025-02-03, got %s", out.Date.Key())
	}
}

func TestDateJSONMalformed(t *testing.T) {
	// A record with an unparseable date stays loadable; its date is zero
	// and it will never match an aggregation bucket.
	var e Entry
	if err := json.Unmarshal([]byte(`{"id":"x","date":"not-a-date","amountSpent":100,"type":"a","category":"Weed"}`), &e); err != nil {
		t.Fatalf("unmarshal should tolerate a malformed date: %v", err)
	}
	if !e.Date.IsZero() {
		t.Fatalf("malformed date should decode to the zero date, got %v", e.Date)
	}
}
