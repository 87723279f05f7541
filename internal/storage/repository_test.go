package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"expensetracker/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := PathFor(filepath.Join(t.TempDir(), "data"), "Alice")
	repo, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	if err := repo.CreateIfAbsent(context.Background()); err != nil {
		t.Fatalf("create store: %v", err)
	}
	return repo
}

func mustTx(t *testing.T, amount, category, note, date string) core.Transaction {
	t.Helper()
	d, err := core.ParseDate(date)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	tx, err := core.NewTransaction(decimal.RequireFromString(amount), category, note, d)
	if err != nil {
		t.Fatalf("new transaction: %v", err)
	}
	return tx
}

func TestPathFor(t *testing.T) {
	if got := PathFor("data", "Alice"); got != filepath.Join("data", "Alice.db") {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestCreateIfAbsentIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if err := repo.Append(ctx, mustTx(t, "1", "Food", "", "2024-01-01")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.CreateIfAbsent(ctx); err != nil {
		t.Fatalf("second create: %v", err)
	}
	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 row to survive, got %d (err=%v)", n, err)
	}
}

func TestAppendAndQueryRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	in := []core.Transaction{
		mustTx(t, "10", "Food", "", "2024-03-05"),
		mustTx(t, "20.25", "Food", "lunch", "2024-03-15"),
		mustTx(t, "5", "Gas", "", "2024-03-20"),
	}
	for _, tx := range in {
		if err := repo.Append(ctx, tx); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryAll(ctx)
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != len(in) {
		t.Fatalf("expected %d rows, got %d", len(in), len(all))
	}
	for i := range in {
		if !all[i].Amount.Equal(in[i].Amount) || all[i].Category != in[i].Category ||
			all[i].Note != in[i].Note || all[i].Date.String() != in[i].Date.String() {
			t.Fatalf("row %d: expected %+v, got %+v", i, in[i], all[i])
		}
	}

	food, err := repo.QueryByCategory(ctx, "Food")
	if err != nil {
		t.Fatalf("query by category: %v", err)
	}
	if len(food) != 2 || food[1].Note != "lunch" {
		t.Fatalf("unexpected food rows: %+v", food)
	}
}

func TestQueryByCategoryIsParameterized(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if err := repo.Append(ctx, mustTx(t, "1", "Food", "", "2024-01-01")); err != nil {
		t.Fatalf("append: %v", err)
	}
	rows, err := repo.QueryByCategory(ctx, "x' OR '1'='1")
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected no rows, got %v (err=%v)", rows, err)
	}
}

func TestRenameCategoryRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	for _, tx := range []core.Transaction{
		mustTx(t, "1", "Food", "", "2024-01-01"),
		mustTx(t, "2", "Gas", "", "2024-01-02"),
		mustTx(t, "3", "Food", "", "2024-01-03"),
	} {
		if err := repo.Append(ctx, tx); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := repo.RenameCategory(ctx, "Food", "Groceries")
	if err != nil || n != 2 {
		t.Fatalf("rename: n=%d err=%v", n, err)
	}
	if n, err = repo.RenameCategory(ctx, "Groceries", "Food"); err != nil || n != 2 {
		t.Fatalf("rename back: n=%d err=%v", n, err)
	}
	all, _ := repo.QueryAll(ctx)
	want := []string{"Food", "Gas", "Food"}
	for i, tx := range all {
		if tx.Category != want[i] {
			t.Fatalf("row %d: expected %s, got %s", i, want[i], tx.Category)
		}
	}

	if n, err := repo.RenameCategory(ctx, "Missing", "Other"); err != nil || n != 0 {
		t.Fatalf("expected no-op rename, got n=%d err=%v", n, err)
	}
}

func TestAppendRejectsInvalidTransaction(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Append(context.Background(), core.Transaction{Amount: decimal.NewFromInt(1), Category: "Food"})
	if !errors.Is(err, core.ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite, got %v", err)
	}
}

func TestQueryAfterCloseFails(t *testing.T) {
	repo := newTestRepo(t)
	repo.Close()
	if _, err := repo.QueryAll(context.Background()); !errors.Is(err, core.ErrStorageRead) {
		t.Fatalf("expected ErrStorageRead, got %v", err)
	}
}

func TestDataSurvivesReopen(t *testing.T) {
	path := PathFor(t.TempDir(), "Bob")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repo.CreateIfAbsent(ctx); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Append(ctx, mustTx(t, "11.67", "Rent", "", "2023-12-31")); err != nil {
		t.Fatalf("append: %v", err)
	}
	repo.Close()

	repo, err = NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer repo.Close()
	if err := repo.CreateIfAbsent(ctx); err != nil {
		t.Fatalf("create on reopen: %v", err)
	}
	all, err := repo.QueryAll(ctx)
	if err != nil || len(all) != 1 || !all[0].Amount.Equal(decimal.RequireFromString("11.67")) {
		t.Fatalf("unexpected rows after reopen: %+v (err=%v)", all, err)
	}
}

func TestAmountsKeepFullPrecision(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	amounts := []string{"12345678901234567.89", "0.01", "99999999999999999999.99", "0"}
	for _, a := range amounts {
		if err := repo.Append(ctx, mustTx(t, a, "Big", "", "2024-05-01")); err != nil {
			t.Fatalf("append %s: %v", a, err)
		}
	}

	got, err := repo.QueryAll(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != len(amounts) {
		t.Fatalf("expected %d rows, got %d", len(amounts), len(got))
	}
	for i, a := range amounts {
		want := decimal.RequireFromString(a)
		if !got[i].Amount.Equal(want) {
			t.Errorf("row %d: expected %s, got %s", i, want, got[i].Amount)
		}
	}
}

func TestMigrateExpensesReportsVersion(t *testing.T) {
	path := PathFor(t.TempDir(), "Alice")
	for i := 0; i < 2; i++ {
		version, err := migrateExpenses(path)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if version != 1 {
			t.Fatalf("run %d: expected schema version 1, got %d", i, version)
		}
	}
}
