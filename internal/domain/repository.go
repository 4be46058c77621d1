package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when a requested row does not
// exist. Callers that tolerate stale links (e.g. receipt recording) check
// for it with errors.Is.
var ErrNotFound = errors.New("not found")

// ProductRepository defines the interface for product persistence operations
type ProductRepository interface {
	// Create creates a new product
	Create(ctx context.Context, product *Product) error

	// GetByID retrieves a product by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// List retrieves all products
	List(ctx context.Context) ([]*Product, error)

	// UpdateStock sets the stock quantity of a product
	UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error

	// Delete removes a product. Receipts referencing it keep their
	// denormalized identifier snapshots.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReceiptRepository defines the interface for receipt persistence operations
type ReceiptRepository interface {
	// Create creates a new receipt
	Create(ctx context.Context, receipt *Receipt) error

	// List retrieves all receipts
	List(ctx context.Context) ([]*Receipt, error)

	// ListByDateRange retrieves receipts dated in [from, to] inclusive
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*Receipt, error)

	// Delete removes a receipt
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseRepository defines the interface for expense persistence operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	List(ctx context.Context) ([]*Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvestmentRepository defines the interface for investment persistence operations
type InvestmentRepository interface {
	Create(ctx context.Context, investment *Investment) error
	List(ctx context.Context) ([]*Investment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettlementRepository defines the interface for settlement persistence operations
type SettlementRepository interface {
	Create(ctx context.Context, settlement *Settlement) error
	List(ctx context.Context) ([]*Settlement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BalanceRepository defines the interface for marketplace balance snapshots
type BalanceRepository interface {
	// Add stores a new balance snapshot
	Add(ctx context.Context, balance *MarketplaceBalance) error

	// GetLatest retrieves the most recent snapshot
	GetLatest(ctx context.Context) (*MarketplaceBalance, error)

	// List retrieves all snapshots, newest first
	List(ctx context.Context) ([]*MarketplaceBalance, error)

	// Delete removes a snapshot
	Delete(ctx context.Context, id uuid.UUID) error
}

// AllocationRepository defines the interface for allocation rules and
// recorded distributions
type AllocationRepository interface {
	// UpsertRule creates a rule or updates the pct of an existing rule with
	// the same name
	UpsertRule(ctx context.Context, rule *AllocationRule) error

	// ListRules retrieves all rules ordered by name
	ListRules(ctx context.Context) ([]*AllocationRule, error)

	// RecordExecutions stores one execution row per allocated bucket
	RecordExecutions(ctx context.Context, executions []*AllocationExecution) error

	// ListExecutions retrieves recorded executions for a month
	ListExecutions(ctx context.Context, month MonthKey) ([]*AllocationExecution, error)
}
