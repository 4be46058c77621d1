package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// expenseRepository implements domain.ExpenseRepository
type expenseRepository struct {
	db *DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *DB) domain.ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create creates a new expense
func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (id, date, category, description, amount_brl, amount_usd, method, account, person)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		expense.ID,
		expense.Date,
		string(expense.Category),
		expense.Description,
		expense.AmountBRL.String(),
		expense.AmountUSD.String(),
		expense.Method,
		expense.Account,
		expense.Person,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// List retrieves all expenses
func (r *expenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	query := `
		SELECT id, date, category, description, amount_brl, amount_usd, method, account, person
		FROM expenses
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		var expense domain.Expense
		var brlStr, usdStr string

		err := rows.Scan(
			&expense.ID,
			&expense.Date,
			&expense.Category,
			&expense.Description,
			&brlStr,
			&usdStr,
			&expense.Method,
			&expense.Account,
			&expense.Person,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		if expense.AmountBRL, err = decimal.NewFromString(brlStr); err != nil {
			return nil, fmt.Errorf("failed to parse amount_brl: %w", err)
		}
		if expense.AmountUSD, err = decimal.NewFromString(usdStr); err != nil {
			return nil, fmt.Errorf("failed to parse amount_usd: %w", err)
		}

		expenses = append(expenses, &expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// Delete removes an expense
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM expenses WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}
