// Package sales handles the receipt write path: recording a marketplace
// credit and decrementing the linked product's stock.
package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// RecordReceiptInput represents the input for recording a receipt
type RecordReceiptInput struct {
	Date           time.Time
	ProductID      *uuid.UUID // optional link to the product ledger
	SKU            string
	UPC            string
	ASIN           string
	ProductName    string
	QuantitySold   int
	AmountReceived decimal.Decimal
}

// Service handles receipt recording operations
type Service struct {
	ProductRepo domain.ProductRepository
	ReceiptRepo domain.ReceiptRepository
}

// NewService creates a new sales Service instance
func NewService(productRepo domain.ProductRepository, receiptRepo domain.ReceiptRepository) *Service {
	return &Service{
		ProductRepo: productRepo,
		ReceiptRepo: receiptRepo,
	}
}

// RecordReceipt persists a sale event.
// Logic:
//  1. Validate the input
//  2. If a product link is given and resolves, snapshot the product's
//     identifiers onto the receipt (blank fields only) and decrement its
//     stock by the quantity sold, clamped at zero
//  3. Save the receipt
//
// A product link that no longer resolves is kept on the receipt as-is: the
// matcher falls back to the identifier snapshots at read time.
func (s *Service) RecordReceipt(ctx context.Context, input RecordReceiptInput) (*domain.Receipt, error) {
	receipt := &domain.Receipt{
		ID:             uuid.New(),
		Date:           input.Date,
		ProductID:      input.ProductID,
		SKU:            input.SKU,
		UPC:            input.UPC,
		ASIN:           input.ASIN,
		ProductName:    input.ProductName,
		QuantitySold:   input.QuantitySold,
		AmountReceived: input.AmountReceived,
	}

	if err := receipt.Validate(); err != nil {
		return nil, err
	}

	if input.ProductID != nil {
		product, err := s.ProductRepo.GetByID(ctx, *input.ProductID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Stale link: record the receipt anyway, the snapshots keep it
			// matchable
		case err != nil:
			return nil, fmt.Errorf("failed to fetch linked product: %w", err)
		default:
			snapshotIdentifiers(receipt, product)

			newStock := product.StockQuantity - input.QuantitySold
			if newStock < 0 {
				newStock = 0
			}
			if err := s.ProductRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
				return nil, fmt.Errorf("failed to update product stock: %w", err)
			}
		}
	}

	if err := s.ReceiptRepo.Create(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	return receipt, nil
}

// snapshotIdentifiers copies the product's identifiers onto the receipt for
// fields the caller left blank. Explicitly supplied values win: they may be
// fresher than the ledger row (e.g. the marketplace's own SKU spelling).
func snapshotIdentifiers(receipt *domain.Receipt, product *domain.Product) {
	if receipt.SKU == "" {
		receipt.SKU = product.SKU
	}
	if receipt.UPC == "" {
		receipt.UPC = product.UPC
	}
	if receipt.ASIN == "" {
		receipt.ASIN = product.ASIN
	}
	if receipt.ProductName == "" {
		receipt.ProductName = product.Name
	}
}
