package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Alcohol Category = "Alcohol"
	Tobacco Category = "Tobacco"
	Weed    Category = "Weed"
	Other   Category = "Other"
)

type (
	// Category is the closed set of purchase categories.
	Category string

	// Date is a day-granular calendar date. The time-of-day component is
	// always truncated, so two Dates compare equal whenever they name the
	// same local calendar day.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Entry is a single persisted purchase event.
	Entry struct {
		ID       string   `json:"id"`
		Date     Date     `json:"date"`
		Amount   Money    `json:"amountSpent"`
		Grams    float64  `json:"grams"`
		Source   string   `json:"source"`
		Kind     string   `json:"type"`
		Category Category `json:"category"`
		Notes    string   `json:"notes,omitempty"`
	}

	// Favorite is a reusable entry template. It carries no date; one is
	// stamped on when the template is turned into an Entry.
	Favorite struct {
		ID       string   `json:"id"`
		Amount   Money    `json:"amountSpent"`
		Grams    float64  `json:"grams"`
		Source   string   `json:"source"`
		Kind     string   `json:"type"`
		Category Category `json:"category"`
		Notes    string   `json:"notes,omitempty"`
	}
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidGrams    = errors.New("invalid grams")
	ErrEmptyKind       = errors.New("empty type")
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{Alcohol, Tobacco, Weed, Other}
}

func (c Category) Valid() bool {
	switch c {
	case Alcohol, Tobacco, Weed, Other:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an arbitrary timestamp to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Key returns the canonical YYYY-MM-DD day-key used for bucketing.
func (d Date) Key() string {
	return d.Format("2006-01-02")
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

func (e Entry) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	return validateCommon(e.Amount, e.Grams, e.Kind, e.Category)
}

func (f Favorite) Validate() error {
	return validateCommon(f.Amount, f.Grams, f.Kind, f.Category)
}

func validateCommon(amount Money, grams float64, kind string, category Category) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if grams < 0 {
		return ErrInvalidGrams
	}
	if len(strings.TrimSpace(kind)) == 0 {
		return ErrEmptyKind
	}
	if !category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// AsEntry materializes the template into an entry dated at the given day.
// The returned entry has no ID; the store assigns one on Add.
func (f Favorite) AsEntry(date Date) Entry {
	return Entry{
		Date:     date,
		Amount:   f.Amount,
		Grams:    f.Grams,
		Source:   f.Source,
		Kind:     f.Kind,
		Category: f.Category,
		Notes:    f.Notes,
	}
}
