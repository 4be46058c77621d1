package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the category of an operational expense
type ExpenseCategory string

const (
	ExpenseCategoryProductPurchase ExpenseCategory = "PRODUCT_PURCHASE"
	ExpenseCategorySubscription    ExpenseCategory = "SUBSCRIPTION"
	ExpenseCategoryAccounting      ExpenseCategory = "ACCOUNTING_LEGAL"
	ExpenseCategoryTaxes           ExpenseCategory = "TAXES_FEES"
	ExpenseCategoryFreight         ExpenseCategory = "FREIGHT_LOGISTICS"
	ExpenseCategoryOther           ExpenseCategory = "OTHER"
)

// Expense represents an operational expense row. BRL and USD amounts are
// tracked as independent parallel totals; the system never converts between
// them.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	Category    ExpenseCategory
	Description string
	AmountBRL   decimal.Decimal
	AmountUSD   decimal.Decimal
	Method      string
	Account     string
	Person      string
}

// Validate ensures the expense adheres to domain rules
func (e *Expense) Validate() error {
	if e.Date.IsZero() {
		return errors.New("expense date cannot be empty")
	}

	if e.Category == "" {
		return errors.New("expense category cannot be empty")
	}

	if e.AmountBRL.IsNegative() || e.AmountUSD.IsNegative() {
		return errors.New("expense amounts cannot be negative")
	}

	return nil
}
