package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qotastore/finance-backend/internal/domain"
	"github.com/qotastore/finance-backend/internal/usecase/sales"
)

// CreateProduct registers a new product definition.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	product := &domain.Product{
		ID:                 uuid.New(),
		Name:               req.Name,
		SKU:                req.SKU,
		UPC:                req.UPC,
		ASIN:               req.ASIN,
		StockQuantity:      req.StockQuantity,
		UnitBaseCost:       req.UnitBaseCost.Decimal,
		LotFreightTotal:    req.LotFreightTotal.Decimal,
		LotTaxTotal:        req.LotTaxTotal.Decimal,
		LotQuantity:        req.LotQuantity,
		UnitPrepFee:        req.UnitPrepFee.Decimal,
		UnitSalePrice:      req.UnitSalePrice.Decimal,
		UnitMarketplaceFee: req.UnitMarketplaceFee.Decimal,
	}

	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Products.Create(c.Request.Context(), product); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts returns all product definitions.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// DeleteProduct removes a product definition. Receipts keep their
// identifier snapshots and stay matchable.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Products.Delete(c.Request.Context(), id); err != nil {
		h.serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateReceipt records a sale event through the sales service, which also
// decrements the linked product's stock.
func (h *Handler) CreateReceipt(c *gin.Context) {
	var req createReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	input := sales.RecordReceiptInput{
		Date:           date,
		SKU:            req.SKU,
		UPC:            req.UPC,
		ASIN:           req.ASIN,
		ProductName:    req.ProductName,
		QuantitySold:   req.QuantitySold,
		AmountReceived: req.AmountReceived.Decimal,
	}

	if req.ProductID != "" {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId"})
			return
		}
		input.ProductID = &productID
	}

	receipt, err := h.Sales.RecordReceipt(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// ListReceipts returns all receipts.
func (h *Handler) ListReceipts(c *gin.Context) {
	receipts, err := h.Receipts.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipts)
}

// DeleteReceipt removes a receipt.
func (h *Handler) DeleteReceipt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Receipts.Delete(c.Request.Context(), id); err != nil {
		h.serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateExpense records an operational expense.
func (h *Handler) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	expense := &domain.Expense{
		ID:          uuid.New(),
		Date:        date,
		Category:    domain.ExpenseCategory(req.Category),
		Description: req.Description,
		AmountBRL:   req.AmountBRL.Decimal,
		AmountUSD:   req.AmountUSD.Decimal,
		Method:      req.Method,
		Account:     req.Account,
		Person:      req.Person,
	}

	if err := expense.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Expenses.Create(c.Request.Context(), expense); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListExpenses returns all expenses.
func (h *Handler) ListExpenses(c *gin.Context) {
	expenses, err := h.Expenses.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// DeleteExpense removes an expense.
func (h *Handler) DeleteExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Expenses.Delete(c.Request.Context(), id); err != nil {
		h.serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateInvestment records an owner capital injection.
func (h *Handler) CreateInvestment(c *gin.Context) {
	var req createInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	investment := &domain.Investment{
		ID:        uuid.New(),
		Date:      date,
		AmountBRL: req.AmountBRL.Decimal,
		AmountUSD: req.AmountUSD.Decimal,
		Method:    req.Method,
		Account:   req.Account,
		Person:    req.Person,
	}

	if err := investment.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Investments.Create(c.Request.Context(), investment); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, investment)
}

// ListInvestments returns all investments.
func (h *Handler) ListInvestments(c *gin.Context) {
	investments, err := h.Investments.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, investments)
}

// DeleteInvestment removes an investment.
func (h *Handler) DeleteInvestment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Investments.Delete(c.Request.Context(), id); err != nil {
		h.serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateSettlement records a marketplace payout deposit.
func (h *Handler) CreateSettlement(c *gin.Context) {
	var req createSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	settlement := &domain.Settlement{
		ID:          uuid.New(),
		Date:        date,
		Description: req.Description,
		Gross:       req.Gross.Decimal,
		COGS:        req.COGS.Decimal,
		AmazonFees:  req.AmazonFees.Decimal,
		Ads:         req.Ads.Decimal,
		Freight:     req.Freight.Decimal,
		Discounts:   req.Discounts.Decimal,
		Method:      req.Method,
		Account:     req.Account,
		Person:      req.Person,
	}

	if err := settlement.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Settlements.Create(c.Request.Context(), settlement); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, settlement)
}

// ListSettlements returns all settlements.
func (h *Handler) ListSettlements(c *gin.Context) {
	settlements, err := h.Settlements.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, settlements)
}

// DeleteSettlement removes a settlement.
func (h *Handler) DeleteSettlement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Settlements.Delete(c.Request.Context(), id); err != nil {
		h.serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateBalance stores a marketplace balance snapshot.
func (h *Handler) CreateBalance(c *gin.Context) {
	var req createBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	balance := &domain.MarketplaceBalance{
		ID:        uuid.New(),
		Date:      date,
		Available: req.Available.Decimal,
		Pending:   req.Pending.Decimal,
		Currency:  req.Currency,
	}

	if err := balance.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Balances.Add(c.Request.Context(), balance); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, balance)
}

// ListBalances returns all balance snapshots, newest first.
func (h *Handler) ListBalances(c *gin.Context) {
	balances, err := h.Balances.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, balances)
}

// LatestBalance returns the most recent balance snapshot.
func (h *Handler) LatestBalance(c *gin.Context) {
	balance, err := h.Balances.GetLatest(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no balance snapshots recorded"})
			return
		}
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}
