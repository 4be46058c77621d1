// Package profit computes realized profit over a set of receipts by
// resolving each receipt to its product and applying the per-unit
// profitability metrics.
package profit

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
	"github.com/qotastore/finance-backend/internal/usecase/costing"
	"github.com/qotastore/finance-backend/internal/usecase/matcher"
)

// Realized folds a receipt set into a single USD realized-profit total.
// Each receipt is resolved through the matcher; resolved receipts contribute
// GrossProfitPerUnit × QuantitySold, unresolved receipts are silently
// skipped. The fold is a plain sum over a set: idempotent and independent of
// input order.
func Realized(receipts []*domain.Receipt, ix *matcher.Index) decimal.Decimal {
	total := decimal.Zero
	for _, r := range receipts {
		p := ix.Match(r)
		if p == nil {
			continue
		}
		m := costing.Calculate(p)
		total = total.Add(m.GrossProfitPerUnit.Mul(decimal.NewFromInt(int64(r.QuantitySold))))
	}
	return total
}

// Service exposes realized-profit queries backed by the ledgers.
type Service struct {
	ProductRepo domain.ProductRepository
	ReceiptRepo domain.ReceiptRepository
}

// NewService creates a new profit Service instance
func NewService(productRepo domain.ProductRepository, receiptRepo domain.ReceiptRepository) *Service {
	return &Service{
		ProductRepo: productRepo,
		ReceiptRepo: receiptRepo,
	}
}

// RealizedProfit computes the realized profit for receipts dated in
// [from, to]. Metrics are recomputed from the current ledger snapshots on
// every call; nothing is cached.
func (s *Service) RealizedProfit(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	receipts, err := s.ReceiptRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list receipts: %w", err)
	}

	products, err := s.ProductRepo.List(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list products: %w", err)
	}

	return Realized(receipts, matcher.NewIndex(products)), nil
}
