package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Year() != 2024 || d.Month() != 3 || d.Day() != 5 {
		t.Fatalf("unexpected parts: %v", d)
	}
	if d.String() != "2024-03-05" {
		t.Fatalf("expected 2024-03-05, got %s", d)
	}
	if _, err := ParseDate("2024-02-30"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"food":       "Food",
		"FOOD":       "Food",
		"  gas  ":    "Gas",
		"eating out": "Eating out",
		"élan":       "Élan",
		"":           "",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Fatalf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewTransaction(t *testing.T) {
	tx, err := NewTransaction(decimal.RequireFromString("10.005"), "groceries", " weekly ", NewDate(2024, 3, 5))
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if tx.Category != "Groceries" || tx.Note != "weekly" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if !tx.Amount.Equal(decimal.RequireFromString("10.01")) {
		t.Fatalf("expected 10.01, got %s", tx.Amount)
	}

	bads := []struct {
		amount   string
		category string
		date     Date
		want     error
	}{
		{"1", "   ", NewDate(2024, 1, 1), ErrEmptyCategory},
		{"-1", "Food", NewDate(2024, 1, 1), ErrInvalidAmount},
		{"1", "Food", Date{}, ErrInvalidDate},
	}
	for i, b := range bads {
		_, err := NewTransaction(decimal.RequireFromString(b.amount), b.category, "", b.date)
		if !errors.Is(err, b.want) {
			t.Fatalf("case %d expected %v, got %v", i, b.want, err)
		}
	}
}
