package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// balanceRepository implements domain.BalanceRepository
type balanceRepository struct {
	db *DB
}

// NewBalanceRepository creates a new balance repository
func NewBalanceRepository(db *DB) domain.BalanceRepository {
	return &balanceRepository{db: db}
}

// Add stores a new balance snapshot
func (r *balanceRepository) Add(ctx context.Context, balance *domain.MarketplaceBalance) error {
	query := `
		INSERT INTO marketplace_balances (id, date, available, pending, currency)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		balance.ID,
		balance.Date,
		balance.Available.String(),
		balance.Pending.String(),
		balance.Currency,
	)
	if err != nil {
		return fmt.Errorf("failed to insert balance snapshot: %w", err)
	}

	return nil
}

// GetLatest retrieves the most recent snapshot
func (r *balanceRepository) GetLatest(ctx context.Context) (*domain.MarketplaceBalance, error) {
	query := `
		SELECT id, date, available, pending, currency
		FROM marketplace_balances
		ORDER BY date DESC
		LIMIT 1
	`

	var balance domain.MarketplaceBalance
	var availableStr, pendingStr string

	err := r.db.QueryRowContext(ctx, query).Scan(
		&balance.ID,
		&balance.Date,
		&availableStr,
		&pendingStr,
		&balance.Currency,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("balance snapshot: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest balance snapshot: %w", err)
	}

	if balance.Available, err = decimal.NewFromString(availableStr); err != nil {
		return nil, fmt.Errorf("failed to parse available: %w", err)
	}
	if balance.Pending, err = decimal.NewFromString(pendingStr); err != nil {
		return nil, fmt.Errorf("failed to parse pending: %w", err)
	}

	return &balance, nil
}

// List retrieves all snapshots, newest first
func (r *balanceRepository) List(ctx context.Context) ([]*domain.MarketplaceBalance, error) {
	query := `
		SELECT id, date, available, pending, currency
		FROM marketplace_balances
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance snapshots: %w", err)
	}
	defer rows.Close()

	var balances []*domain.MarketplaceBalance
	for rows.Next() {
		var balance domain.MarketplaceBalance
		var availableStr, pendingStr string

		err := rows.Scan(
			&balance.ID,
			&balance.Date,
			&availableStr,
			&pendingStr,
			&balance.Currency,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance snapshot: %w", err)
		}

		if balance.Available, err = decimal.NewFromString(availableStr); err != nil {
			return nil, fmt.Errorf("failed to parse available: %w", err)
		}
		if balance.Pending, err = decimal.NewFromString(pendingStr); err != nil {
			return nil, fmt.Errorf("failed to parse pending: %w", err)
		}

		balances = append(balances, &balance)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balance snapshots: %w", err)
	}

	return balances, nil
}

// Delete removes a snapshot
func (r *balanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM marketplace_balances WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete balance snapshot: %w", err)
	}

	return nil
}
