// Package httpapi exposes the ledgers and the aggregation engine over a
// REST surface. All numeric input is coerced at this boundary; the engine
// packages never see malformed values.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/qotastore/finance-backend/internal/domain"
	"github.com/qotastore/finance-backend/internal/usecase/allocation"
	"github.com/qotastore/finance-backend/internal/usecase/cashflow"
	"github.com/qotastore/finance-backend/internal/usecase/profit"
	"github.com/qotastore/finance-backend/internal/usecase/sales"
)

// Handler carries the dependencies of the REST surface.
type Handler struct {
	Products    domain.ProductRepository
	Receipts    domain.ReceiptRepository
	Expenses    domain.ExpenseRepository
	Investments domain.InvestmentRepository
	Settlements domain.SettlementRepository
	Balances    domain.BalanceRepository

	Sales      *sales.Service
	Profit     *profit.Service
	Cashflow   *cashflow.Service
	Allocation *allocation.Service

	Log *logrus.Logger
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handler, apiToken string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(h.Log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(TokenAuth(apiToken))

	api.POST("/products", h.CreateProduct)
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id/metrics", h.ProductMetrics)
	api.DELETE("/products/:id", h.DeleteProduct)

	api.POST("/receipts", h.CreateReceipt)
	api.GET("/receipts", h.ListReceipts)
	api.DELETE("/receipts/:id", h.DeleteReceipt)

	api.POST("/expenses", h.CreateExpense)
	api.GET("/expenses", h.ListExpenses)
	api.DELETE("/expenses/:id", h.DeleteExpense)

	api.POST("/investments", h.CreateInvestment)
	api.GET("/investments", h.ListInvestments)
	api.DELETE("/investments/:id", h.DeleteInvestment)

	api.POST("/settlements", h.CreateSettlement)
	api.GET("/settlements", h.ListSettlements)
	api.DELETE("/settlements/:id", h.DeleteSettlement)

	api.POST("/balances", h.CreateBalance)
	api.GET("/balances", h.ListBalances)
	api.GET("/balances/latest", h.LatestBalance)

	api.GET("/reports/cashflow/monthly", h.MonthlyCashflow)
	api.GET("/reports/cashflow/total", h.AllTimeCashflow)
	api.GET("/reports/profit", h.RealizedProfit)
	api.GET("/reports/margins", h.SettlementMargins)

	api.POST("/allocations/rules", h.SaveAllocationRule)
	api.GET("/allocations/rules", h.ListAllocationRules)
	api.GET("/allocations/suggestion", h.SuggestAllocation)
	api.POST("/allocations/executions", h.RecordAllocation)
	api.GET("/allocations/executions", h.ListAllocationExecutions)

	return router
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) serverError(c *gin.Context, err error) {
	h.Log.WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
