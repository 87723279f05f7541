package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/services"
)

const menuText = `
1. Log an expense for today
2. Log an expense for a previous date
3. View expenses for a week of a month
4. View expenses for a month
5. View expenses for a year
6. View expenses by category
7. Monthly report
8. Category percentages for a month or year
9. List categories
10. Rename a category
11. Quit (or q)
`

// Menu is the interactive loop over one session.
type Menu struct {
	svc    *services.ReportService
	prompt *Prompter
	out    io.Writer
	logger *applog.Logger
}

func NewMenu(svc *services.ReportService, prompt *Prompter, out io.Writer, logger *applog.Logger) *Menu {
	return &Menu{svc: svc, prompt: prompt, out: out, logger: logger}
}

// Run shows the menu until the user quits or input ends. Action errors are
// reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "EXPENSE TRACKER")
	fmt.Fprintf(m.out, "Welcome, %s!\n", m.svc.Username())

	actions := map[string]func(context.Context) error{
		"1":  m.logToday,
		"2":  m.logBackdated,
		"3":  m.viewWeek,
		"4":  m.viewMonth,
		"5":  m.viewYear,
		"6":  m.viewCategory,
		"7":  m.monthlyReport,
		"8":  m.percentages,
		"9":  m.listCategories,
		"10": m.renameCategory,
	}

	for {
		fmt.Fprint(m.out, menuText)
		choice, err := m.prompt.Ask("Please select an option [1, 2, 3 etc]: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		choice = strings.ToLower(strings.TrimSpace(choice))
		if choice == "11" || choice == "q" {
			fmt.Fprintf(m.out, "Goodbye, %s!\n", m.svc.Username())
			return nil
		}

		action, ok := actions[choice]
		if !ok {
			fmt.Fprintln(m.out, "I didn't get that. Please select an appropriate option.")
			continue
		}
		if err := action(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			m.reportError(ctx, err)
		}
	}
}

func (m *Menu) reportError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, core.ErrEmptySet):
		fmt.Fprintln(m.out, "There doesn't appear to be any data for this selection.")
	case errors.Is(err, core.ErrStorageWrite), errors.Is(err, core.ErrStorageRead):
		m.logger.ErrorContext(ctx, "Store operation failed", applog.FieldError, err)
		fmt.Fprintln(m.out, "Something went wrong with your expense data. Please try again.")
	default:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}

func (m *Menu) logToday(ctx context.Context) error {
	amount, err := askValid(m.prompt, "Amount: $", core.ParseAmount)
	if err != nil {
		return err
	}
	category, err := askValid(m.prompt, "Category: ", core.ParseCategory)
	if err != nil {
		return err
	}
	note, err := m.prompt.Ask("Note: ")
	if err != nil {
		return err
	}
	t, err := m.svc.LogToday(ctx, amount, category, strings.TrimSpace(note))
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Success! Logged %s for %s on %s.\n", money(t.Amount), t.Category, t.Date)
	return nil
}

func (m *Menu) logBackdated(ctx context.Context) error {
	amount, err := askValid(m.prompt, "Amount: $", core.ParseAmount)
	if err != nil {
		return err
	}
	category, err := askValid(m.prompt, "Category: ", core.ParseCategory)
	if err != nil {
		return err
	}
	note, err := m.prompt.Ask("Note: ")
	if err != nil {
		return err
	}
	year, err := askValid(m.prompt, "Year (YYYY): ", core.ParseYear)
	if err != nil {
		return err
	}
	month, err := askValid(m.prompt, "Month (1-12): ", core.ParseMonth)
	if err != nil {
		return err
	}
	day, err := askValid(m.prompt, "Day (1-31): ", func(s string) (int, error) {
		return core.ParseDay(s, month, year)
	})
	if err != nil {
		return err
	}
	t, err := m.svc.LogBackdated(ctx, amount, category, strings.TrimSpace(note), day, month, year)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Success! Logged %s for %s on %s.\n", money(t.Amount), t.Category, t.Date)
	return nil
}

func (m *Menu) viewWeek(ctx context.Context) error {
	year, err := askValid(m.prompt, "Year (YYYY): ", core.ParseYear)
	if err != nil {
		return err
	}
	month, err := askValid(m.prompt, "Month (1-12): ", core.ParseMonth)
	if err != nil {
		return err
	}
	week, err := askValid(m.prompt, "Week of the month (1-5): ", core.ParseWeek)
	if err != nil {
		return err
	}
	return m.view(ctx, services.ViewScope{Year: year, Month: month, Week: week},
		"There are no entries for this week.")
}

func (m *Menu) viewMonth(ctx context.Context) error {
	year, err := askValid(m.prompt, "Year (YYYY): ", core.ParseYear)
	if err != nil {
		return err
	}
	month, err := askValid(m.prompt, "Month (1-12): ", core.ParseMonth)
	if err != nil {
		return err
	}
	return m.view(ctx, services.ViewScope{Year: year, Month: month},
		"There are no entries for this month.")
}

func (m *Menu) viewYear(ctx context.Context) error {
	year, err := askValid(m.prompt, "Year (YYYY): ", core.ParseYear)
	if err != nil {
		return err
	}
	return m.view(ctx, services.ViewScope{Year: year},
		"There are no entries for this year.")
}

// view optionally narrows scope to one category before showing it.
func (m *Menu) view(ctx context.Context, scope services.ViewScope, emptyMsg string) error {
	narrow, err := askValid(m.prompt, "Would you like to see a specific category? [y/n]: ", parseYesNo)
	if err != nil {
		return err
	}
	if narrow {
		if scope.Category, err = m.chooseCategory(ctx); err != nil {
			return err
		}
	}
	res, err := m.svc.View(ctx, scope)
	if err != nil {
		return err
	}
	renderTransactions(m.out, res, emptyMsg)
	return nil
}

func (m *Menu) viewCategory(ctx context.Context) error {
	category, err := m.chooseCategory(ctx)
	if err != nil {
		return err
	}
	res, err := m.svc.ByCategory(ctx, category)
	if err != nil {
		return err
	}
	renderTransactions(m.out, res, "There are no entries for this category.")
	return nil
}

// chooseCategory lists the categories in use and asks for one by number.
func (m *Menu) chooseCategory(ctx context.Context) (string, error) {
	categories, err := m.svc.Categories(ctx)
	if err != nil {
		return "", err
	}
	if len(categories) == 0 {
		return "", core.ErrEmptySet
	}
	renderCategories(m.out, categories)
	return askValid(m.prompt, "Select a category [1, 2, 3 etc]: ", func(s string) (string, error) {
		return core.ParseListChoice(s, categories)
	})
}

func (m *Menu) monthlyReport(ctx context.Context) error {
	today := m.svc.Today()
	month, year := today.Month(), today.Year()

	current, err := askValid(m.prompt, "Would you like the report for the current month? [y/n]: ", parseYesNo)
	if err != nil {
		return err
	}
	if !current {
		thisYear, err := askValid(m.prompt, "Is the month in the current year? [y/n]: ", parseYesNo)
		if err != nil {
			return err
		}
		if !thisYear {
			if year, err = askValid(m.prompt, "Year (YYYY): ", core.ParseYear); err != nil {
				return err
			}
		}
		if month, err = askValid(m.prompt, "Month (1-12): ", core.ParseMonth); err != nil {
			return err
		}
	}

	report, err := m.svc.MonthlyReport(ctx, month, year)
	if err != nil {
		return err
	}
	renderMonthReport(m.out, report)
	return nil
}

func (m *Menu) percentages(ctx context.Context) error {
	period, err := askValid(m.prompt, "Breakdown for a month or a year? [m/y]: ", func(s string) (string, error) {
		return core.ParseChoice(s, "m", "y")
	})
	if err != nil {
		return err
	}

	year, err := askValid(m.prompt, "Year (YYYY): ", core.ParseYear)
	if err != nil {
		return err
	}
	month := 0
	if period == "m" {
		if month, err = askValid(m.prompt, "Month (1-12): ", core.ParseMonth); err != nil {
			return err
		}
	}

	pcts, err := m.svc.PeriodPercentages(ctx, year, month)
	if err != nil {
		return err
	}
	renderPercentages(m.out, pcts)
	return nil
}

func (m *Menu) listCategories(ctx context.Context) error {
	categories, err := m.svc.Categories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(m.out, "No categories yet.")
		return nil
	}
	renderCategories(m.out, categories)
	return nil
}

func (m *Menu) renameCategory(ctx context.Context) error {
	oldName, err := m.chooseCategory(ctx)
	if err != nil {
		return err
	}
	newName, err := askValid(m.prompt, "New category name: ", core.ParseCategory)
	if err != nil {
		return err
	}
	n, err := m.svc.RenameCategory(ctx, oldName, newName)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Success! %d entries moved from %s to %s.\n", n, oldName, newName)
	return nil
}
