package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt represents one realized sale event credited by the marketplace.
//
// ProductID is the authoritative link to the originating product, but it may
// be nil or stale (product deleted, or never set at capture time). SKU, UPC,
// ASIN and ProductName are denormalized snapshots of the product's
// identifiers taken when the receipt was recorded; they keep the receipt
// matchable after later product edits. This duplication is deliberate, do
// not normalize it away.
type Receipt struct {
	ID        uuid.UUID
	Date      time.Time
	ProductID *uuid.UUID

	SKU         string
	UPC         string
	ASIN        string
	ProductName string

	QuantitySold   int
	AmountReceived decimal.Decimal // USD, already quantity-multiplied
}

// Validate ensures the receipt adheres to domain rules
// Returns an error if validation fails
func (r *Receipt) Validate() error {
	if r.Date.IsZero() {
		return errors.New("receipt date cannot be empty")
	}

	if r.QuantitySold < 1 {
		return errors.New("receipt quantity sold must be at least 1")
	}

	if r.AmountReceived.IsNegative() {
		return errors.New("receipt amount received cannot be negative")
	}

	return nil
}
