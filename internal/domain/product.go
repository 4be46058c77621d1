package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a purchasable item in the domain layer.
// SKU, UPC and ASIN are optional free-text identifiers; any of them may be
// blank. Freight and tax are tracked per purchase lot and allocated per unit
// by dividing by LotQuantity.
type Product struct {
	ID   uuid.UUID
	Name string
	SKU  string
	UPC  string
	ASIN string

	StockQuantity int

	UnitBaseCost    decimal.Decimal
	LotFreightTotal decimal.Decimal
	LotTaxTotal     decimal.Decimal
	LotQuantity     int // quantity the lot freight/tax is split over; 0 = untracked

	UnitPrepFee        decimal.Decimal
	UnitSalePrice      decimal.Decimal
	UnitMarketplaceFee decimal.Decimal
}

// Validate ensures the product adheres to domain rules
// Returns an error if validation fails
func (p *Product) Validate() error {
	if p.Name == "" {
		return errors.New("product name cannot be empty")
	}

	if p.StockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}

	if p.LotQuantity < 0 {
		return errors.New("lot quantity cannot be negative")
	}

	// Cost and price fields are allowed to be zero (unknown/untracked), but
	// never negative
	for _, amount := range []decimal.Decimal{
		p.UnitBaseCost, p.LotFreightTotal, p.LotTaxTotal,
		p.UnitPrepFee, p.UnitSalePrice, p.UnitMarketplaceFee,
	} {
		if amount.IsNegative() {
			return errors.New("product cost and price fields cannot be negative")
		}
	}

	return nil
}
