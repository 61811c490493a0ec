// Package sqlite persists expenses for the reference gateway server in a
// single-file SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/SaErPu/expense-tracker-web/internal/domain"
)

// ExpenseRepository is the durable store behind the reference gateway.
type ExpenseRepository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies pending
// migrations. Use ":memory:" for an ephemeral store.
func Open(path string) (*ExpenseRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps :memory:
	// databases coherent across the pool.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &ExpenseRepository{db: db}, nil
}

// Close closes the underlying database.
func (r *ExpenseRepository) Close() error {
	return r.db.Close()
}

// PingContext reports whether the database is reachable.
func (r *ExpenseRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// List returns all expenses in insertion order.
func (r *ExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, date, category FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// Get returns the expense with the given ID.
func (r *ExpenseRepository) Get(ctx context.Context, id int64) (domain.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, description, amount, date, category FROM expenses WHERE id = ?`, id)

	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Expense{}, fmt.Errorf("%w: id %d", domain.ErrExpenseNotFound, id)
	}
	return e, err
}

// Create inserts a new expense and returns it with its assigned ID.
func (r *ExpenseRepository) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (description, amount, date, category) VALUES (?, ?, ?, ?)`,
		e.Description, e.Amount.StringFixed(2), e.Date.String(), string(e.Category))
	if err != nil {
		return domain.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	e.ID = &id
	return e, nil
}

// Update replaces the expense with the given ID.
func (r *ExpenseRepository) Update(ctx context.Context, id int64, e domain.Expense) (domain.Expense, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET description = ?, amount = ?, date = ?, category = ? WHERE id = ?`,
		e.Description, e.Amount.StringFixed(2), e.Date.String(), string(e.Category), id)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("update expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Expense{}, fmt.Errorf("update expense: %w", err)
	}
	if affected == 0 {
		return domain.Expense{}, fmt.Errorf("%w: id %d", domain.ErrExpenseNotFound, id)
	}

	e.ID = &id
	return e, nil
}

// Delete removes the expense with the given ID.
func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrExpenseNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (domain.Expense, error) {
	var (
		e        domain.Expense
		id       int64
		amount   string
		date     string
		category string
	)

	if err := row.Scan(&id, &e.Description, &amount, &date, &category); err != nil {
		return domain.Expense{}, err
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("corrupt amount for expense %d: %w", id, err)
	}
	parsedDate, err := domain.ParseDate(date)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("corrupt date for expense %d: %w", id, err)
	}
	parsedCategory, err := domain.ParseCategory(category)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("corrupt category for expense %d: %w", id, err)
	}

	e.ID = &id
	e.Amount = parsedAmount
	e.Date = parsedDate
	e.Category = parsedCategory
	return e, nil
}
