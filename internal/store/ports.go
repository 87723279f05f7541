package store

import (
	"context"
	"strings"

	"expensetracker/internal/core"
)

// Ports for the transaction store. Implementations own durability; callers
// see insertion order on every read.
type (
	TransactionWriter interface {
		Append(ctx context.Context, t core.Transaction) error
	}

	TransactionReader interface {
		// QueryAll returns every transaction in insertion order.
		QueryAll(ctx context.Context) ([]core.Transaction, error)
		// QueryByCategory returns transactions whose category equals category.
		QueryByCategory(ctx context.Context, category string) ([]core.Transaction, error)
	}

	CategoryRenamer interface {
		// RenameCategory relabels every transaction in oldName and returns the
		// number of rows changed.
		RenameCategory(ctx context.Context, oldName, newName string) (int64, error)
	}

	Store interface {
		// CreateIfAbsent prepares the backing store. It is safe to call repeatedly.
		CreateIfAbsent(ctx context.Context) error
		TransactionWriter
		TransactionReader
		CategoryRenamer
		Close() error
	}
)

// Name returns the per-user store name: the capitalized username.
func Name(username string) string {
	return core.Capitalize(strings.TrimSpace(username))
}
