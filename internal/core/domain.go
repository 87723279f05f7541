package core

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO 8601 calendar date format used for persisted dates.
const DateLayout = "2006-01-02"

type (
	Date struct {
		time.Time
	}

	// Transaction is a single logged expense. It has no explicit identity;
	// duplicates are allowed and ordering is insertion order.
	Transaction struct {
		Amount   decimal.Decimal
		Category string
		Note     string
		Date     Date
	}
)

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// NewDate creates a new Date from year, month, day. Out of range values are
// normalized the way time.Date does; use MakeBackdatedDate to validate.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a persisted YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return fmt.Errorf("%w: date cannot be zero", ErrInvalidDate)
	}
	return nil
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
// Surrounding whitespace is dropped.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// NormalizeCategory returns the canonical form of a category name.
func NormalizeCategory(name string) string {
	return Capitalize(name)
}

// NewTransaction builds a transaction with a normalized category and a
// two-decimal amount.
func NewTransaction(amount decimal.Decimal, category, note string, date Date) (Transaction, error) {
	t := Transaction{
		Amount:   amount.Round(2),
		Category: NormalizeCategory(category),
		Note:     strings.TrimSpace(note),
		Date:     date,
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if t.Category == "" {
		return ErrEmptyCategory
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}
