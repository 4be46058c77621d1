package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// investmentRepository implements domain.InvestmentRepository
type investmentRepository struct {
	db *DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *DB) domain.InvestmentRepository {
	return &investmentRepository{db: db}
}

// Create creates a new investment
func (r *investmentRepository) Create(ctx context.Context, investment *domain.Investment) error {
	query := `
		INSERT INTO investments (id, date, amount_brl, amount_usd, method, account, person)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		investment.ID,
		investment.Date,
		investment.AmountBRL.String(),
		investment.AmountUSD.String(),
		investment.Method,
		investment.Account,
		investment.Person,
	)
	if err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}

	return nil
}

// List retrieves all investments
func (r *investmentRepository) List(ctx context.Context) ([]*domain.Investment, error) {
	query := `
		SELECT id, date, amount_brl, amount_usd, method, account, person
		FROM investments
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	var investments []*domain.Investment
	for rows.Next() {
		var investment domain.Investment
		var brlStr, usdStr string

		err := rows.Scan(
			&investment.ID,
			&investment.Date,
			&brlStr,
			&usdStr,
			&investment.Method,
			&investment.Account,
			&investment.Person,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}

		if investment.AmountBRL, err = decimal.NewFromString(brlStr); err != nil {
			return nil, fmt.Errorf("failed to parse amount_brl: %w", err)
		}
		if investment.AmountUSD, err = decimal.NewFromString(usdStr); err != nil {
			return nil, fmt.Errorf("failed to parse amount_usd: %w", err)
		}

		investments = append(investments, &investment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate investments: %w", err)
	}

	return investments, nil
}

// Delete removes an investment
func (r *investmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM investments WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	return nil
}
