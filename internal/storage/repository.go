package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expensetracker/internal/core"
	applog "expensetracker/internal/log"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the durable store for one user.
type SQLiteRepository struct {
	db      *sql.DB
	path    string
	queries *Queries
}

// PathFor returns the database file for a store name inside dataDir.
func PathFor(dataDir, storeName string) string {
	return filepath.Join(dataDir, storeName+".db")
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		path:    dbPath,
		queries: New(db),
	}, nil
}

// CreateIfAbsent creates the expenses table when it does not exist yet.
func (r *SQLiteRepository) CreateIfAbsent(ctx context.Context) error {
	version, err := migrateExpenses(r.path)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrStorageWrite, err)
	}
	n, err := r.Count(ctx)
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "Expense store ready",
		applog.FieldComponent, applog.ComponentStorage,
		applog.FieldPath, r.path,
		"schema_version", version,
		applog.FieldCount, n)
	return nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements store.TransactionWriter
func (r *SQLiteRepository) Append(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrStorageWrite, err)
	}
	err := r.queries.CreateExpense(ctx, CreateExpenseParams{
		Amount:   t.Amount,
		Category: t.Category,
		Note:     t.Note,
		Date:     t.Date.String(),
	})
	if err != nil {
		return fmt.Errorf("%w: create expense: %w", core.ErrStorageWrite, err)
	}

	slog.InfoContext(ctx, "Expense saved to SQLite",
		applog.FieldComponent, applog.ComponentStorage,
		applog.FieldAmount, t.Amount.String(),
		applog.FieldCategory, t.Category,
		applog.FieldDate, t.Date.String())

	return nil
}

// QueryAll implements store.TransactionReader
func (r *SQLiteRepository) QueryAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.queries.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list expenses: %w", core.ErrStorageRead, err)
	}
	return toTransactions(rows)
}

// QueryByCategory implements store.TransactionReader
func (r *SQLiteRepository) QueryByCategory(ctx context.Context, category string) ([]core.Transaction, error) {
	rows, err := r.queries.ListExpensesByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%w: list expenses for category %s: %w", core.ErrStorageRead, category, err)
	}
	return toTransactions(rows)
}

// RenameCategory implements store.CategoryRenamer
func (r *SQLiteRepository) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	n, err := r.queries.RenameCategory(ctx, RenameCategoryParams{
		NewCategory: newName,
		OldCategory: oldName,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: rename category %s: %w", core.ErrStorageWrite, oldName, err)
	}

	slog.InfoContext(ctx, "Category renamed",
		applog.FieldComponent, applog.ComponentStorage,
		applog.FieldOperation, applog.OpUpdate,
		"from", oldName,
		"to", newName,
		"rows", n)

	return n, nil
}

// Count returns the number of stored expenses.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountExpenses(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count expenses: %w", core.ErrStorageRead, err)
	}
	return n, nil
}

func toTransactions(rows []Expense) ([]core.Transaction, error) {
	out := make([]core.Transaction, 0, len(rows))
	for _, e := range rows {
		d, err := core.ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrStorageRead, err)
		}
		out = append(out, core.Transaction{
			Amount:   e.Amount,
			Category: e.Category,
			Note:     e.Note,
			Date:     d,
		})
	}
	return out, nil
}
