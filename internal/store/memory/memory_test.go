package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"expensetracker/internal/core"
)

func mustTx(t *testing.T, amount, category, date string) core.Transaction {
	t.Helper()
	d, err := core.ParseDate(date)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	tx, err := core.NewTransaction(decimal.RequireFromString(amount), category, "", d)
	if err != nil {
		t.Fatalf("new transaction: %v", err)
	}
	return tx
}

func TestMemoryStoreAppendAndQuery(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.CreateIfAbsent(ctx); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, tx := range []core.Transaction{
		mustTx(t, "10", "food", "2024-03-05"),
		mustTx(t, "5", "gas", "2024-03-20"),
		mustTx(t, "20", "Food", "2024-03-15"),
	} {
		if err := s.Append(ctx, tx); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := s.QueryAll(ctx)
	if err != nil || len(all) != 3 || all[1].Category != "Gas" {
		t.Fatalf("unexpected all: %v err=%v", all, err)
	}
	food, err := s.QueryByCategory(ctx, "Food")
	if err != nil || len(food) != 2 || food[0].Date.Day() != 5 || food[1].Date.Day() != 15 {
		t.Fatalf("unexpected food: %v err=%v", food, err)
	}
}

func TestMemoryStoreRejectsInvalid(t *testing.T) {
	s := New()
	err := s.Append(context.Background(), core.Transaction{Amount: decimal.NewFromInt(1)})
	if !errors.Is(err, core.ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite, got %v", err)
	}
}

func TestMemoryStoreRenameRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(
		mustTx(t, "1", "Food", "2024-01-01"),
		mustTx(t, "2", "Gas", "2024-01-02"),
		mustTx(t, "3", "Food", "2024-01-03"),
	)
	n, err := s.RenameCategory(ctx, "Food", "Groceries")
	if err != nil || n != 2 {
		t.Fatalf("rename: n=%d err=%v", n, err)
	}
	n, err = s.RenameCategory(ctx, "Groceries", "Food")
	if err != nil || n != 2 {
		t.Fatalf("rename back: n=%d err=%v", n, err)
	}
	all, _ := s.QueryAll(ctx)
	want := []string{"Food", "Gas", "Food"}
	for i, tx := range all {
		if tx.Category != want[i] {
			t.Fatalf("row %d: expected %s, got %s", i, want[i], tx.Category)
		}
	}
	if n, err := s.RenameCategory(ctx, "Nope", "X"); err != nil || n != 0 {
		t.Fatalf("expected no-op, got n=%d err=%v", n, err)
	}
}

func TestQueryAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New(mustTx(t, "1", "Food", "2024-01-01"))
	all, _ := s.QueryAll(ctx)
	all[0].Category = "Changed"
	again, _ := s.QueryAll(ctx)
	if again[0].Category != "Food" {
		t.Fatalf("store was modified through returned slice")
	}
}
