package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntInRange parses s as an integer in [min, max].
func ParseIntInRange(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrValidation, s)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%w: %d not in [%d-%d]", ErrValidation, n, min, max)
	}
	return n, nil
}

func ParseYear(s string) (int, error) {
	return ParseIntInRange(s, MinYear, MaxYear)
}

func ParseMonth(s string) (int, error) {
	return ParseIntInRange(s, 1, 12)
}

func ParseWeek(s string) (int, error) {
	return ParseIntInRange(s, 1, MaxWeekOfMonth)
}

// ParseDay parses a day of month and checks it exists in month of year.
// A number outside 1-31 is a validation error; a day the month does not
// have (Feb 30, Apr 31) is ErrInvalidDate.
func ParseDay(s string, month, year int) (int, error) {
	day, err := ParseIntInRange(s, 1, 31)
	if err != nil {
		return 0, err
	}
	if _, err := MakeBackdatedDate(day, month, year); err != nil {
		return 0, err
	}
	return day, nil
}

// ParseCategory returns the normalized category or ErrEmptyCategory.
func ParseCategory(s string) (string, error) {
	c := NormalizeCategory(s)
	if c == "" {
		return "", ErrEmptyCategory
	}
	return c, nil
}

// ParseChoice matches s case-insensitively against options and returns the
// matching option.
func ParseChoice(s string, options ...string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, o := range options {
		if s == strings.ToLower(o) {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q not one of %v", ErrValidation, s, options)
}

// ParseListChoice parses a 1-based index into items and returns the item.
func ParseListChoice(s string, items []string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("%w: nothing to choose from", ErrValidation)
	}
	i, err := ParseIntInRange(s, 1, len(items))
	if err != nil {
		return "", err
	}
	return items[i-1], nil
}
