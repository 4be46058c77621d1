package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// allocationRepository implements domain.AllocationRepository
type allocationRepository struct {
	db *DB
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *DB) domain.AllocationRepository {
	return &allocationRepository{db: db}
}

// UpsertRule creates a rule or updates the pct of an existing rule with the
// same name
func (r *allocationRepository) UpsertRule(ctx context.Context, rule *domain.AllocationRule) error {
	query := `
		INSERT INTO allocation_rules (id, name, pct)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET pct = EXCLUDED.pct
	`

	_, err := r.db.ExecContext(ctx, query,
		rule.ID,
		rule.Name,
		rule.Pct.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert allocation rule: %w", err)
	}

	return nil
}

// ListRules retrieves all rules ordered by name
func (r *allocationRepository) ListRules(ctx context.Context) ([]*domain.AllocationRule, error) {
	query := `SELECT id, name, pct FROM allocation_rules ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocation rules: %w", err)
	}
	defer rows.Close()

	var rules []*domain.AllocationRule
	for rows.Next() {
		var rule domain.AllocationRule
		var pctStr string

		if err := rows.Scan(&rule.ID, &rule.Name, &pctStr); err != nil {
			return nil, fmt.Errorf("failed to scan allocation rule: %w", err)
		}

		if rule.Pct, err = decimal.NewFromString(pctStr); err != nil {
			return nil, fmt.Errorf("failed to parse pct: %w", err)
		}

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate allocation rules: %w", err)
	}

	return rules, nil
}

// RecordExecutions stores one execution row per allocated bucket in a single
// database transaction
func (r *allocationRepository) RecordExecutions(ctx context.Context, executions []*domain.AllocationExecution) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO allocation_executions (id, month, name, amount_usd, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, execution := range executions {
		_, err := dbTx.ExecContext(ctx, query,
			execution.ID,
			execution.Month.String(),
			execution.Name,
			execution.AmountUSD.String(),
			execution.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert allocation execution: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListExecutions retrieves recorded executions for a month
func (r *allocationRepository) ListExecutions(ctx context.Context, month domain.MonthKey) ([]*domain.AllocationExecution, error) {
	query := `
		SELECT id, month, name, amount_usd, created_at
		FROM allocation_executions
		WHERE month = $1
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, month.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list allocation executions: %w", err)
	}
	defer rows.Close()

	var executions []*domain.AllocationExecution
	for rows.Next() {
		var execution domain.AllocationExecution
		var monthStr, amountStr string

		err := rows.Scan(
			&execution.ID,
			&monthStr,
			&execution.Name,
			&amountStr,
			&execution.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allocation execution: %w", err)
		}

		if execution.Month, err = domain.ParseMonthKey(monthStr); err != nil {
			return nil, fmt.Errorf("failed to parse month: %w", err)
		}
		if execution.AmountUSD, err = decimal.NewFromString(amountStr); err != nil {
			return nil, fmt.Errorf("failed to parse amount_usd: %w", err)
		}

		executions = append(executions, &execution)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate allocation executions: %w", err)
	}

	return executions, nil
}
