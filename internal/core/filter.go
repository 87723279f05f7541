package core

// Filter narrows a transaction list. Filters never modify their input and
// keep the relative order of the transactions they return.
type Filter func([]Transaction) []Transaction

func where(txs []Transaction, keep func(Transaction) bool) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByCategory keeps transactions whose stored category equals category.
func FilterByCategory(category string, txs []Transaction) []Transaction {
	return where(txs, func(t Transaction) bool { return t.Category == category })
}

func FilterByYear(year int, txs []Transaction) []Transaction {
	return where(txs, func(t Transaction) bool { return t.Date.Year() == year })
}

func FilterByMonth(month int, txs []Transaction) []Transaction {
	return where(txs, func(t Transaction) bool { return t.Date.Month() == month })
}

func FilterByWeekOfMonth(week int, txs []Transaction) []Transaction {
	return where(txs, func(t Transaction) bool { return WeekOfMonth(t.Date) == week })
}

func ByCategory(category string) Filter {
	return func(txs []Transaction) []Transaction { return FilterByCategory(category, txs) }
}

func ByYear(year int) Filter {
	return func(txs []Transaction) []Transaction { return FilterByYear(year, txs) }
}

func ByMonth(month int) Filter {
	return func(txs []Transaction) []Transaction { return FilterByMonth(month, txs) }
}

func ByWeekOfMonth(week int) Filter {
	return func(txs []Transaction) []Transaction { return FilterByWeekOfMonth(week, txs) }
}

// Apply runs filters left to right.
func Apply(txs []Transaction, filters ...Filter) []Transaction {
	out := append([]Transaction(nil), txs...)
	for _, f := range filters {
		out = f(out)
	}
	return out
}
