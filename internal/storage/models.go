package storage

import "github.com/shopspring/decimal"

// Expense is one row of the expenses table. Amount is stored as its decimal
// string and Date as YYYY-MM-DD.
type Expense struct {
	Amount   decimal.Decimal
	Category string
	Note     string
	Date     string
}
