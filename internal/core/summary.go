package core

import "github.com/shopspring/decimal"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// Label tells how a month figure relates to the matching year figure.
type Label string

const (
	Above Label = "above"
	Below Label = "below"
	Same  Label = "same"
)

// Comparison is a month-vs-year figure for one category. Amount is the
// absolute difference for Above and Below, and the shared value for Same.
type Comparison struct {
	Category string
	Amount   decimal.Decimal
	Label    Label
}

// MonthReport is the full report for a specific year+month. Per-category
// slices follow the order of Categories.
type MonthReport struct {
	Year  int
	Month int // 1-12

	Total        decimal.Decimal
	MonthAverage decimal.Decimal
	YearAverage  decimal.Decimal
	Overall      Comparison

	Categories    []string
	Counts        map[string]int
	Totals        []CategoryAmount
	Percentages   []CategoryAmount
	MonthAverages []CategoryAmount
	YearAverages  []CategoryAmount
	ByCategory    []Comparison
}
