package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/store"
)

// Session is the state of one user's run: who is logged in, their store and
// the clock used for "today".
type Session struct {
	Username string
	Store    store.Store
	Now      func() time.Time
}

// ViewScope selects transactions for an ad-hoc view. Zero Month, Week or
// Category means "any". Week requires Month.
type ViewScope struct {
	Year     int
	Month    int
	Week     int
	Category string
}

// ViewResult is a filtered transaction list and its total. Empty is set when
// nothing matched; that is not an error.
type ViewResult struct {
	Transactions []core.Transaction
	Total        decimal.Decimal
	Empty        bool
}

// ReportService logs expenses and builds reports for one session.
type ReportService struct {
	session Session
	logger  *applog.Logger
}

func NewReportService(session Session, logger *applog.Logger) *ReportService {
	if session.Now == nil {
		session.Now = time.Now
	}
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &ReportService{
		session: session,
		logger:  logger.WithComponent(applog.ComponentReport),
	}
}

// Username returns the normalized name of the session's user.
func (s *ReportService) Username() string {
	return store.Name(s.session.Username)
}

// Today returns the session's current date.
func (s *ReportService) Today() core.Date {
	return core.Today(s.session.Now)
}

// LogToday records an expense dated today.
func (s *ReportService) LogToday(ctx context.Context, amount decimal.Decimal, category, note string) (core.Transaction, error) {
	return s.log(ctx, amount, category, note, s.Today())
}

// LogBackdated records an expense on an explicit past date.
func (s *ReportService) LogBackdated(ctx context.Context, amount decimal.Decimal, category, note string, day, month, year int) (core.Transaction, error) {
	date, err := core.MakeBackdatedDate(day, month, year)
	if err != nil {
		return core.Transaction{}, err
	}
	return s.log(ctx, amount, category, note, date)
}

func (s *ReportService) log(ctx context.Context, amount decimal.Decimal, category, note string, date core.Date) (core.Transaction, error) {
	t, err := core.NewTransaction(amount, category, note, date)
	if err != nil {
		return core.Transaction{}, err
	}
	if err := s.session.Store.Append(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save expense", applog.NewFields().
			WithOperation(applog.OpAppend).
			WithError(err).ToSlice()...)
		return core.Transaction{}, fmt.Errorf("save expense: %w", err)
	}
	return t, nil
}

// View filters by year, then month, then week of month, then category.
func (s *ReportService) View(ctx context.Context, scope ViewScope) (ViewResult, error) {
	if scope.Week != 0 && scope.Month == 0 {
		return ViewResult{}, fmt.Errorf("%w: week of month needs a month", core.ErrValidation)
	}
	all, err := s.queryAll(ctx)
	if err != nil {
		return ViewResult{}, err
	}

	filters := []core.Filter{core.ByYear(scope.Year)}
	if scope.Month != 0 {
		filters = append(filters, core.ByMonth(scope.Month))
	}
	if scope.Week != 0 {
		filters = append(filters, core.ByWeekOfMonth(scope.Week))
	}
	if category := core.NormalizeCategory(scope.Category); category != "" {
		filters = append(filters, core.ByCategory(category))
	}
	return newViewResult(core.Apply(all, filters...)), nil
}

// ByCategory lists every transaction in category, regardless of date.
func (s *ReportService) ByCategory(ctx context.Context, category string) (ViewResult, error) {
	category = core.NormalizeCategory(category)
	txs, err := s.session.Store.QueryByCategory(ctx, category)
	if err != nil {
		return ViewResult{}, fmt.Errorf("list category %s: %w", category, err)
	}
	return newViewResult(txs), nil
}

func newViewResult(txs []core.Transaction) ViewResult {
	return ViewResult{
		Transactions: txs,
		Total:        core.Sum(txs),
		Empty:        len(txs) == 0,
	}
}

// MonthlyReport builds the report for month of year. A month without
// transactions yields core.ErrEmptySet.
func (s *ReportService) MonthlyReport(ctx context.Context, month, year int) (core.MonthReport, error) {
	report := core.MonthReport{Year: year, Month: month}

	all, err := s.queryAll(ctx)
	if err != nil {
		return report, err
	}
	yearTxs := core.FilterByYear(year, all)
	monthTxs := core.FilterByMonth(month, yearTxs)

	report.Total = core.Sum(monthTxs)

	if report.MonthAverage, err = core.Average(monthTxs); err != nil {
		return report, fmt.Errorf("month average %04d-%02d: %w", year, month, err)
	}
	if report.YearAverage, err = core.Average(yearTxs); err != nil {
		return report, fmt.Errorf("year average %04d: %w", year, err)
	}
	report.Overall = core.CompareAmounts("", report.MonthAverage, report.YearAverage)

	report.Categories = core.Categories(monthTxs)
	report.Counts = core.CategoryBreakdown(monthTxs)
	report.Totals = core.CategoryTotals(monthTxs)

	if report.Percentages, err = core.CategoryPercentages(monthTxs); err != nil {
		return report, fmt.Errorf("month percentages %04d-%02d: %w", year, month, err)
	}

	if report.MonthAverages, err = core.CategoryAveragesFor(report.Categories, monthTxs); err != nil {
		return report, fmt.Errorf("month category averages %04d-%02d: %w", year, month, err)
	}
	if report.YearAverages, err = core.CategoryAveragesFor(report.Categories, yearTxs); err != nil {
		return report, fmt.Errorf("year category averages %04d: %w", year, err)
	}

	if report.ByCategory, err = core.CompareAverages(report.MonthAverages, report.YearAverages); err != nil {
		return report, fmt.Errorf("compare averages %04d-%02d: %w", year, month, err)
	}

	s.logger.DebugContext(ctx, "Monthly report built", applog.NewFields().
		WithOperation(applog.OpReport).
		WithPeriod(year, month).ToSlice()...)

	return report, nil
}

// PeriodPercentages returns each category's share of spending in year, or in
// month of year when month is non-zero.
func (s *ReportService) PeriodPercentages(ctx context.Context, year, month int) ([]core.CategoryAmount, error) {
	all, err := s.queryAll(ctx)
	if err != nil {
		return nil, err
	}
	txs := core.FilterByYear(year, all)
	if month != 0 {
		txs = core.FilterByMonth(month, txs)
	}
	if len(txs) == 0 {
		return nil, core.ErrEmptySet
	}
	return core.CategoryPercentages(txs)
}

// Categories lists every category in use, in first-use order.
func (s *ReportService) Categories(ctx context.Context) ([]string, error) {
	all, err := s.queryAll(ctx)
	if err != nil {
		return nil, err
	}
	return core.Categories(all), nil
}

// RenameCategory relabels every transaction in oldName. Renaming a category
// that is not in use succeeds with zero rows.
func (s *ReportService) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	normalized, err := core.ParseCategory(newName)
	if err != nil {
		return 0, err
	}
	n, err := s.session.Store.RenameCategory(ctx, oldName, normalized)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to rename category", applog.NewFields().
			WithOperation(applog.OpUpdate).
			WithError(err).ToSlice()...)
		return 0, fmt.Errorf("rename category: %w", err)
	}
	return n, nil
}

// Close releases the session's store.
func (s *ReportService) Close() error {
	if s.session.Store == nil {
		return nil
	}
	return s.session.Store.Close()
}

func (s *ReportService) queryAll(ctx context.Context) ([]core.Transaction, error) {
	all, err := s.session.Store.QueryAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to read expenses", applog.NewFields().
			WithOperation(applog.OpRead).
			WithError(err).ToSlice()...)
		return nil, fmt.Errorf("read expenses: %w", err)
	}
	return all, nil
}
