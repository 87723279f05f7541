package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"expensetracker/internal/core"
	"expensetracker/internal/services"
)

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func renderTransactions(w io.Writer, res services.ViewResult, emptyMsg string) {
	if res.Empty {
		fmt.Fprintln(w)
		fmt.Fprintln(w, emptyMsg)
	}
	for _, t := range res.Transactions {
		fmt.Fprintf(w, "\n Amount: %s\n Category: %s\n Note: %s\n Date: %s\n",
			money(t.Amount), t.Category, t.Note, t.Date)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total amount spent: %s\n", money(res.Total))
}

func renderCategories(w io.Writer, categories []string) {
	for i, c := range categories {
		fmt.Fprintf(w, "%d. %s\n", i+1, c)
	}
}

func renderPercentages(w io.Writer, pcts []core.CategoryAmount) {
	fmt.Fprintln(w)
	for _, p := range pcts {
		fmt.Fprintf(w, "%s: %s%%\n", p.Name, p.Amount.StringFixed(2))
	}
}

func renderMonthReport(w io.Writer, r core.MonthReport) {
	fmt.Fprintf(w, "\nThe total amount spent in %04d-%02d is: %s\n", r.Year, r.Month, money(r.Total))
	fmt.Fprintf(w, "\nYour average transaction amount for this month is: %s\n", money(r.MonthAverage))
	fmt.Fprintf(w, "\nYour average transaction amount for the year is: %s\n", money(r.YearAverage))

	switch r.Overall.Label {
	case core.Same:
		fmt.Fprintf(w, "\nYour average monthly transaction of %s is the same as your yearly average\n",
			money(r.MonthAverage))
	default:
		fmt.Fprintf(w, "\nYour average monthly transaction of %s is %s %s your yearly average of %s\n",
			money(r.MonthAverage), money(r.Overall.Amount), r.Overall.Label, money(r.YearAverage))
	}

	fmt.Fprintln(w, "\nTotal transactions for the month in each category:")
	for _, c := range r.Categories {
		fmt.Fprintf(w, "%s: %d\n", c, r.Counts[c])
	}

	fmt.Fprintln(w, "\nTotal amount spent for the month by category:")
	for _, t := range r.Totals {
		fmt.Fprintf(w, "%s: %s\n", t.Name, money(t.Amount))
	}

	fmt.Fprintln(w, "\nMonthly spending as a percentage of each category:")
	for _, p := range r.Percentages {
		fmt.Fprintf(w, "%s: %s%%\n", p.Name, p.Amount.StringFixed(2))
	}

	fmt.Fprintln(w, "\nAverage monthly transaction amount per category:")
	for _, a := range r.MonthAverages {
		fmt.Fprintf(w, "%s: %s\n", a.Name, money(a.Amount))
	}

	fmt.Fprintln(w, "\nAverage yearly transaction amount per category:")
	for _, a := range r.YearAverages {
		fmt.Fprintf(w, "%s: %s\n", a.Name, money(a.Amount))
	}

	fmt.Fprintln(w)
	for _, c := range r.ByCategory {
		if c.Label == core.Same {
			fmt.Fprintf(w, "Your average monthly transaction for %s is %s, the same as your yearly average\n",
				c.Category, money(c.Amount))
			continue
		}
		fmt.Fprintf(w, "Your average monthly transaction for %s is %s %s your yearly average\n",
			c.Category, money(c.Amount), c.Label)
	}
}
