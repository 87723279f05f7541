package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Sum adds the amounts of txs. An empty list sums to zero.
func Sum(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.Amount)
	}
	return round2(total)
}

// Average is the mean transaction amount, rounded to cents.
func Average(txs []Transaction) (decimal.Decimal, error) {
	if len(txs) == 0 {
		return decimal.Zero, ErrEmptySet
	}
	return average(txs), nil
}

// average expects a non-empty txs.
func average(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.Amount)
	}
	return round2(total.Div(decimal.NewFromInt(int64(len(txs)))))
}

// Categories lists the distinct categories of txs in first-appearance order.
func Categories(txs []Transaction) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, t := range txs {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

// CategoryBreakdown counts transactions per category.
func CategoryBreakdown(txs []Transaction) map[string]int {
	counts := make(map[string]int)
	for _, t := range txs {
		counts[t.Category]++
	}
	return counts
}

// CategoryTotals sums txs per category.
func CategoryTotals(txs []Transaction) []CategoryAmount {
	cats := Categories(txs)
	out := make([]CategoryAmount, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryAmount{Name: c, Amount: Sum(FilterByCategory(c, txs))})
	}
	return out
}

// CategoryAverages averages txs per category, in first-appearance order.
func CategoryAverages(txs []Transaction) []CategoryAmount {
	cats := Categories(txs)
	out := make([]CategoryAmount, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryAmount{Name: c, Amount: average(FilterByCategory(c, txs))})
	}
	return out
}

// CategoryAveragesFor averages txs for each of categories, in that order.
// A category with no transactions in txs is ErrCategoryMismatch.
func CategoryAveragesFor(categories []string, txs []Transaction) ([]CategoryAmount, error) {
	out := make([]CategoryAmount, 0, len(categories))
	for _, c := range categories {
		matched := FilterByCategory(c, txs)
		if len(matched) == 0 {
			return nil, fmt.Errorf("%w: %q has no transactions", ErrCategoryMismatch, c)
		}
		out = append(out, CategoryAmount{Name: c, Amount: average(matched)})
	}
	return out, nil
}

// PercentageOfTotal returns part/total*100 rounded to two places.
func PercentageOfTotal(part, total decimal.Decimal) (decimal.Decimal, error) {
	if total.IsZero() {
		return decimal.Zero, ErrEmptySet
	}
	return round2(part.Div(total).Mul(hundred)), nil
}

// CategoryPercentages returns each category's share of the total of txs.
func CategoryPercentages(txs []Transaction) ([]CategoryAmount, error) {
	grand := Sum(txs)
	totals := CategoryTotals(txs)
	out := make([]CategoryAmount, 0, len(totals))
	for _, ct := range totals {
		pct, err := PercentageOfTotal(ct.Amount, grand)
		if err != nil {
			return nil, fmt.Errorf("percentage for %s: %w", ct.Name, err)
		}
		out = append(out, CategoryAmount{Name: ct.Name, Amount: pct})
	}
	return out, nil
}

// CompareAmounts labels monthly against yearly for one category.
func CompareAmounts(category string, monthly, yearly decimal.Decimal) Comparison {
	switch monthly.Cmp(yearly) {
	case 1:
		return Comparison{Category: category, Amount: round2(monthly.Sub(yearly)), Label: Above}
	case -1:
		return Comparison{Category: category, Amount: round2(yearly.Sub(monthly)), Label: Below}
	default:
		return Comparison{Category: category, Amount: monthly, Label: Same}
	}
}

// CompareAverages matches monthly and yearly averages by category name and
// labels each pair. Both sides must cover exactly the same categories.
// Results follow the order of monthly.
func CompareAverages(monthly, yearly []CategoryAmount) ([]Comparison, error) {
	yearByName := make(map[string]decimal.Decimal, len(yearly))
	for _, y := range yearly {
		yearByName[y.Name] = y.Amount
	}
	monthNames := make(map[string]struct{}, len(monthly))
	out := make([]Comparison, 0, len(monthly))
	for _, m := range monthly {
		monthNames[m.Name] = struct{}{}
		y, ok := yearByName[m.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no yearly average", ErrCategoryMismatch, m.Name)
		}
		out = append(out, CompareAmounts(m.Name, m.Amount, y))
	}
	for _, y := range yearly {
		if _, ok := monthNames[y.Name]; !ok {
			return nil, fmt.Errorf("%w: %q has no monthly average", ErrCategoryMismatch, y.Name)
		}
	}
	return out, nil
}
