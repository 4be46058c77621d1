package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qotastore/finance-backend/internal/domain"
	"github.com/qotastore/finance-backend/internal/usecase/cashflow"
	"github.com/qotastore/finance-backend/internal/usecase/costing"
)

// ProductMetrics returns the derived per-unit profitability metrics for one
// product. Metrics are recomputed from the current row on every call.
func (h *Handler) ProductMetrics(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.serverError(c, err)
		return
	}

	m := costing.Calculate(product)
	c.JSON(http.StatusOK, productMetricsResponse{
		ProductID:          product.ID.String(),
		EffectiveUnitCost:  m.EffectiveUnitCost.String(),
		GrossProfitPerUnit: m.GrossProfitPerUnit.String(),
		GrossROI:           m.GrossROI.String(),
		MarginPct:          m.MarginPct.String(),
	})
}

// MonthlyCashflow returns the cash-flow table grouped by calendar month.
func (h *Handler) MonthlyCashflow(c *gin.Context) {
	summaries, err := h.Cashflow.MonthlySummaries(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	out := make([]monthlySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, monthlySummaryResponse{
			Month:       s.Month.String(),
			Receipts:    totalsResponse(s.Receipts),
			Expenses:    totalsResponse(s.Expenses),
			Investments: totalsResponse(s.Investments),
			Result:      totalsResponse(s.Result),
		})
	}
	c.JSON(http.StatusOK, out)
}

// AllTimeCashflow returns the single-group summary over the full ledgers.
func (h *Handler) AllTimeCashflow(c *gin.Context) {
	summary, err := h.Cashflow.AllTimeSummary(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receipts":    totalsResponse(summary.Receipts),
		"expenses":    totalsResponse(summary.Expenses),
		"investments": totalsResponse(summary.Investments),
		"result":      totalsResponse(summary.Result),
	})
}

func totalsResponse(t cashflow.Totals) currencyTotalsResponse {
	return currencyTotalsResponse{BRL: t.BRL.String(), USD: t.USD.String()}
}

// RealizedProfit returns the realized profit for receipts dated in the
// from/to query range (inclusive, YYYY-MM-DD). An open bound defaults to
// the epoch / far future respectively.
func (h *Handler) RealizedProfit(c *gin.Context) {
	from := time.Time{}
	to := time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

	if s := c.Query("from"); s != "" {
		parsed, err := parseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := parseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = parsed
	}

	total, err := h.Profit.RealizedProfit(c.Request.Context(), from, to)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"realizedProfit": total.String()})
}

// SettlementMargins returns the per-month settlement roll-up and the
// all-time totals.
func (h *Handler) SettlementMargins(c *gin.Context) {
	months, total, err := h.Cashflow.SettlementMargins(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	monthly := make([]marginSummaryResponse, 0, len(months))
	for _, m := range months {
		monthly = append(monthly, marginSummaryResponse{
			Month:     m.Month.String(),
			Gross:     m.Gross.String(),
			Profit:    m.Profit.String(),
			MarginPct: m.MarginPct.String(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"monthly": monthly,
		"total": marginSummaryResponse{
			Gross:     total.Gross.String(),
			Profit:    total.Profit.String(),
			MarginPct: total.MarginPct.String(),
		},
	})
}

// SaveAllocationRule creates or updates a Profit First percentage rule.
func (h *Handler) SaveAllocationRule(c *gin.Context) {
	var req saveAllocationRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rule, err := h.Allocation.SaveRule(c.Request.Context(), req.Name, req.Pct.Decimal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// ListAllocationRules returns all rules ordered by name.
func (h *Handler) ListAllocationRules(c *gin.Context) {
	rules, err := h.Allocation.AllocationRepo.ListRules(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

func monthParam(c *gin.Context) (domain.MonthKey, bool) {
	month, err := domain.ParseMonthKey(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected YYYY-MM"})
		return domain.MonthKey{}, false
	}
	return month, true
}

// SuggestAllocation returns the suggested per-bucket distribution of a
// month's settlement profit.
func (h *Handler) SuggestAllocation(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	shares, err := h.Allocation.SuggestDistribution(c.Request.Context(), month)
	if err != nil {
		h.serverError(c, err)
		return
	}

	out := make(map[string]string, len(shares))
	for name, amount := range shares {
		out[name] = amount.String()
	}
	c.JSON(http.StatusOK, gin.H{"month": month.String(), "shares": out})
}

// RecordAllocation persists a month's distribution as execution rows.
func (h *Handler) RecordAllocation(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	executions, err := h.Allocation.RecordDistribution(c.Request.Context(), month)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, executions)
}

// ListAllocationExecutions returns the recorded executions for a month.
func (h *Handler) ListAllocationExecutions(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	executions, err := h.Allocation.AllocationRepo.ListExecutions(c.Request.Context(), month)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, executions)
}
