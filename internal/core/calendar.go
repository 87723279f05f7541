package core

import (
	"fmt"
	"time"
)

const (
	MinYear = 0
	MaxYear = 9999

	// MaxWeekOfMonth is the last week bucket. Days that would land in a sixth
	// calendar row are folded into it.
	MaxWeekOfMonth = 5
)

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	case year%4 == 0:
		return true
	default:
		return false
	}
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(month, year int) int {
	switch time.Month(month) {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// WeekOfMonth buckets d into 1..5, counting weeks from the first of the month
// shifted by the weekday (Monday=0) that month starts on.
func WeekOfMonth(d Date) int {
	first := time.Date(d.Year(), d.Time.Month(), 1, 0, 0, 0, 0, time.UTC)
	firstWeekday := (int(first.Weekday()) + 6) % 7
	adjusted := d.Day() + firstWeekday
	week := (adjusted + 6) / 7
	if week > MaxWeekOfMonth {
		week = MaxWeekOfMonth
	}
	return week
}

// MakeBackdatedDate validates day, month and year and returns the date they form.
// A year or month out of range is ErrValidation; a day the month does not have
// is ErrInvalidDate.
func MakeBackdatedDate(day, month, year int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrValidation, year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrValidation, month)
	}
	if days := DaysInMonth(month, year); day < 1 || day > days {
		return Date{}, fmt.Errorf("%w: %04d-%02d has no day %d", ErrInvalidDate, year, month, day)
	}
	return NewDate(year, month, day), nil
}

// Today returns the calendar date of now() in its own location.
func Today(now func() time.Time) Date {
	if now == nil {
		now = time.Now
	}
	t := now()
	return NewDate(t.Year(), int(t.Month()), t.Day())
}
