// Package costing computes per-unit landed cost and profitability metrics
// for a product from its lot-level cost inputs. All functions are pure.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// Metrics holds the derived profitability figures for one product unit.
type Metrics struct {
	EffectiveUnitCost  decimal.Decimal
	GrossProfitPerUnit decimal.Decimal
	GrossROI           decimal.Decimal
	MarginPct          decimal.Decimal
}

// Calculate derives the per-unit metrics for a product.
// Logic:
//  1. EffectiveUnitCost = UnitBaseCost + (LotTaxTotal + LotFreightTotal) / LotQuantity
//     If LotQuantity is 0 the lot freight/tax is untracked and contributes
//     nothing (degraded mode, not an error).
//  2. GrossProfitPerUnit = UnitSalePrice - UnitMarketplaceFee - UnitPrepFee - EffectiveUnitCost
//  3. GrossROI = GrossProfitPerUnit / EffectiveUnitCost, or 0 when the cost
//     is 0 (ROI is undefined there, not infinite)
//  4. MarginPct = GrossProfitPerUnit / UnitSalePrice, or 0 when the price is 0
func Calculate(p *domain.Product) Metrics {
	effectiveCost := p.UnitBaseCost
	if p.LotQuantity > 0 {
		rateio := p.LotTaxTotal.
			Add(p.LotFreightTotal).
			Div(decimal.NewFromInt(int64(p.LotQuantity)))
		effectiveCost = effectiveCost.Add(rateio)
	}

	grossProfit := p.UnitSalePrice.
		Sub(p.UnitMarketplaceFee).
		Sub(p.UnitPrepFee).
		Sub(effectiveCost)

	roi := decimal.Zero
	if effectiveCost.IsPositive() {
		roi = grossProfit.Div(effectiveCost)
	}

	margin := decimal.Zero
	if p.UnitSalePrice.IsPositive() {
		margin = grossProfit.Div(p.UnitSalePrice)
	}

	return Metrics{
		EffectiveUnitCost:  effectiveCost,
		GrossProfitPerUnit: grossProfit,
		GrossROI:           roi,
		MarginPct:          margin,
	}
}
