package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// settlementRepository implements domain.SettlementRepository
type settlementRepository struct {
	db *DB
}

// NewSettlementRepository creates a new settlement repository
func NewSettlementRepository(db *DB) domain.SettlementRepository {
	return &settlementRepository{db: db}
}

// Create creates a new settlement
func (r *settlementRepository) Create(ctx context.Context, settlement *domain.Settlement) error {
	query := `
		INSERT INTO settlements (id, date, description, gross, cogs, amazon_fees, ads, freight, discounts, method, account, person)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		settlement.ID,
		settlement.Date,
		settlement.Description,
		settlement.Gross.String(),
		settlement.COGS.String(),
		settlement.AmazonFees.String(),
		settlement.Ads.String(),
		settlement.Freight.String(),
		settlement.Discounts.String(),
		settlement.Method,
		settlement.Account,
		settlement.Person,
	)
	if err != nil {
		return fmt.Errorf("failed to create settlement: %w", err)
	}

	return nil
}

// List retrieves all settlements
func (r *settlementRepository) List(ctx context.Context) ([]*domain.Settlement, error) {
	query := `
		SELECT id, date, description, gross, cogs, amazon_fees, ads, freight, discounts, method, account, person
		FROM settlements
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*domain.Settlement
	for rows.Next() {
		var settlement domain.Settlement
		var gross, cogs, fees, ads, freight, discounts string

		err := rows.Scan(
			&settlement.ID,
			&settlement.Date,
			&settlement.Description,
			&gross,
			&cogs,
			&fees,
			&ads,
			&freight,
			&discounts,
			&settlement.Method,
			&settlement.Account,
			&settlement.Person,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}

		fields := []struct {
			dst *decimal.Decimal
			src string
		}{
			{&settlement.Gross, gross},
			{&settlement.COGS, cogs},
			{&settlement.AmazonFees, fees},
			{&settlement.Ads, ads},
			{&settlement.Freight, freight},
			{&settlement.Discounts, discounts},
		}
		for _, f := range fields {
			v, err := decimal.NewFromString(f.src)
			if err != nil {
				return nil, fmt.Errorf("failed to parse decimal column: %w", err)
			}
			*f.dst = v
		}

		settlements = append(settlements, &settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}

// Delete removes a settlement
func (r *settlementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM settlements WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}

	return nil
}
