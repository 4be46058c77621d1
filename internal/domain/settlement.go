package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settlement represents a marketplace payout deposited to a bank account,
// broken down into the gross amount and the deductions applied to it.
// All amounts are USD.
type Settlement struct {
	ID          uuid.UUID
	Date        time.Time
	Description string

	Gross      decimal.Decimal
	COGS       decimal.Decimal
	AmazonFees decimal.Decimal
	Ads        decimal.Decimal
	Freight    decimal.Decimal
	Discounts  decimal.Decimal

	Method  string
	Account string
	Person  string
}

// Profit returns the net profit of the settlement:
// Gross - (COGS + AmazonFees + Ads + Freight + Discounts)
func (s *Settlement) Profit() decimal.Decimal {
	deductions := s.COGS.
		Add(s.AmazonFees).
		Add(s.Ads).
		Add(s.Freight).
		Add(s.Discounts)
	return s.Gross.Sub(deductions)
}

// Validate ensures the settlement adheres to domain rules
func (s *Settlement) Validate() error {
	if s.Date.IsZero() {
		return errors.New("settlement date cannot be empty")
	}

	for _, amount := range []decimal.Decimal{
		s.Gross, s.COGS, s.AmazonFees, s.Ads, s.Freight, s.Discounts,
	} {
		if amount.IsNegative() {
			return errors.New("settlement amounts cannot be negative")
		}
	}

	return nil
}
