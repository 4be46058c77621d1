package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationRule assigns a named bucket a fraction of a month's settlement
// profit (Profit First style). Pct is a fraction in [0, 1], not a percentage.
type AllocationRule struct {
	ID   uuid.UUID
	Name string
	Pct  decimal.Decimal
}

// Validate ensures the allocation rule adheres to domain rules
func (r *AllocationRule) Validate() error {
	if r.Name == "" {
		return errors.New("allocation rule name cannot be empty")
	}

	if r.Pct.IsNegative() || r.Pct.GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("allocation rule pct must be between 0 and 1")
	}

	return nil
}

// AllocationExecution records that a month's profit share was actually
// distributed to a bucket.
type AllocationExecution struct {
	ID        uuid.UUID
	Month     MonthKey
	Name      string
	AmountUSD decimal.Decimal
	CreatedAt time.Time
}
