package httpapi

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Amount is a decimal amount field that tolerates malformed upstream input.
// Missing or unparseable values are coerced to zero at this boundary; the
// engine never sees a parsing failure.
type Amount struct {
	decimal.Decimal
}

// UnmarshalJSON accepts a JSON number or string; anything else becomes zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = d
	return nil
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

type createProductRequest struct {
	Name               string `json:"name"`
	SKU                string `json:"sku"`
	UPC                string `json:"upc"`
	ASIN               string `json:"asin"`
	StockQuantity      int    `json:"stockQuantity"`
	UnitBaseCost       Amount `json:"unitBaseCost"`
	LotFreightTotal    Amount `json:"lotFreightTotal"`
	LotTaxTotal        Amount `json:"lotTaxTotal"`
	LotQuantity        int    `json:"lotQuantity"`
	UnitPrepFee        Amount `json:"unitPrepFee"`
	UnitSalePrice      Amount `json:"unitSalePrice"`
	UnitMarketplaceFee Amount `json:"unitMarketplaceFee"`
}

type createReceiptRequest struct {
	Date           string `json:"date"`
	ProductID      string `json:"productId"`
	SKU            string `json:"sku"`
	UPC            string `json:"upc"`
	ASIN           string `json:"asin"`
	ProductName    string `json:"productName"`
	QuantitySold   int    `json:"quantitySold"`
	AmountReceived Amount `json:"amountReceived"`
}

type createExpenseRequest struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	AmountBRL   Amount `json:"amountBrl"`
	AmountUSD   Amount `json:"amountUsd"`
	Method      string `json:"method"`
	Account     string `json:"account"`
	Person      string `json:"person"`
}

type createInvestmentRequest struct {
	Date      string `json:"date"`
	AmountBRL Amount `json:"amountBrl"`
	AmountUSD Amount `json:"amountUsd"`
	Method    string `json:"method"`
	Account   string `json:"account"`
	Person    string `json:"person"`
}

type createSettlementRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Gross       Amount `json:"gross"`
	COGS        Amount `json:"cogs"`
	AmazonFees  Amount `json:"amazonFees"`
	Ads         Amount `json:"ads"`
	Freight     Amount `json:"freight"`
	Discounts   Amount `json:"discounts"`
	Method      string `json:"method"`
	Account     string `json:"account"`
	Person      string `json:"person"`
}

type createBalanceRequest struct {
	Date      string `json:"date"`
	Available Amount `json:"available"`
	Pending   Amount `json:"pending"`
	Currency  string `json:"currency"`
}

type saveAllocationRuleRequest struct {
	Name string `json:"name"`
	Pct  Amount `json:"pct"`
}

type productMetricsResponse struct {
	ProductID          string `json:"productId"`
	EffectiveUnitCost  string `json:"effectiveUnitCost"`
	GrossProfitPerUnit string `json:"grossProfitPerUnit"`
	GrossROI           string `json:"grossRoi"`
	MarginPct          string `json:"marginPct"`
}

type currencyTotalsResponse struct {
	BRL string `json:"brl"`
	USD string `json:"usd"`
}

type monthlySummaryResponse struct {
	Month       string                 `json:"month"`
	Receipts    currencyTotalsResponse `json:"receipts"`
	Expenses    currencyTotalsResponse `json:"expenses"`
	Investments currencyTotalsResponse `json:"investments"`
	Result      currencyTotalsResponse `json:"result"`
}

type marginSummaryResponse struct {
	Month     string `json:"month,omitempty"`
	Gross     string `json:"gross"`
	Profit    string `json:"profit"`
	MarginPct string `json:"marginPct"`
}
