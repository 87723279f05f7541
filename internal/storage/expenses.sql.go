package storage

import (
	"context"

	"github.com/shopspring/decimal"
)

const countExpenses = `-- name: CountExpenses :one
SELECT COUNT(*) FROM expenses
`

func (q *Queries) CountExpenses(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countExpenses)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createExpense = `-- name: CreateExpense :exec
INSERT INTO expenses (amount, category, note, date)
VALUES (?, ?, ?, ?)
`

type CreateExpenseParams struct {
	Amount   decimal.Decimal
	Category string
	Note     string
	Date     string
}

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) error {
	_, err := q.db.ExecContext(ctx, createExpense,
		arg.Amount,
		arg.Category,
		arg.Note,
		arg.Date,
	)
	return err
}

const listExpenses = `-- name: ListExpenses :many
SELECT amount, category, note, date FROM expenses
ORDER BY rowid
`

func (q *Queries) ListExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := q.db.QueryContext(ctx, listExpenses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Expense
	for rows.Next() {
		var i Expense
		if err := rows.Scan(
			&i.Amount,
			&i.Category,
			&i.Note,
			&i.Date,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listExpensesByCategory = `-- name: ListExpensesByCategory :many
SELECT amount, category, note, date FROM expenses
WHERE category = ?
ORDER BY rowid
`

func (q *Queries) ListExpensesByCategory(ctx context.Context, category string) ([]Expense, error) {
	rows, err := q.db.QueryContext(ctx, listExpensesByCategory, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Expense
	for rows.Next() {
		var i Expense
		if err := rows.Scan(
			&i.Amount,
			&i.Category,
			&i.Note,
			&i.Date,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const renameCategory = `-- name: RenameCategory :execrows
UPDATE expenses SET category = ?
WHERE category = ?
`

type RenameCategoryParams struct {
	NewCategory string
	OldCategory string
}

func (q *Queries) RenameCategory(ctx context.Context, arg RenameCategoryParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, renameCategory, arg.NewCategory, arg.OldCategory)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
