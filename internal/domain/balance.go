package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MarketplaceBalance represents a point-in-time snapshot of the seller
// account balance held inside the marketplace (available vs pending funds).
type MarketplaceBalance struct {
	ID        uuid.UUID
	Date      time.Time
	Available decimal.Decimal
	Pending   decimal.Decimal
	Currency  string // "USD", "BRL", ...
}

// Validate ensures the balance snapshot adheres to domain rules
func (b *MarketplaceBalance) Validate() error {
	if b.Date.IsZero() {
		return errors.New("balance snapshot date cannot be empty")
	}

	if b.Currency == "" {
		return errors.New("balance snapshot currency cannot be empty")
	}

	return nil
}
