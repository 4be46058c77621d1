package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment represents capital injected into the operation by one of the
// owners. Like expenses, BRL and USD are parallel totals with no conversion.
type Investment struct {
	ID        uuid.UUID
	Date      time.Time
	AmountBRL decimal.Decimal
	AmountUSD decimal.Decimal
	Method    string
	Account   string
	Person    string
}

// Validate ensures the investment adheres to domain rules
func (i *Investment) Validate() error {
	if i.Date.IsZero() {
		return errors.New("investment date cannot be empty")
	}

	if i.AmountBRL.IsNegative() || i.AmountUSD.IsNegative() {
		return errors.New("investment amounts cannot be negative")
	}

	return nil
}
