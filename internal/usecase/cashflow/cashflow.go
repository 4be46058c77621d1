// Package cashflow folds the expense, investment and receipt ledgers into
// monthly and all-time summaries. BRL and USD are independent parallel
// totals; the two currencies are never combined or converted.
package cashflow

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// Totals carries one amount per tracked currency.
type Totals struct {
	BRL decimal.Decimal
	USD decimal.Decimal
}

func (t Totals) add(brl, usd decimal.Decimal) Totals {
	return Totals{BRL: t.BRL.Add(brl), USD: t.USD.Add(usd)}
}

func (t Totals) sub(other Totals) Totals {
	return Totals{BRL: t.BRL.Sub(other.BRL), USD: t.USD.Sub(other.USD)}
}

// MonthlySummary is one row of the cash-flow table. A month present in only
// one stream still appears, with zeros for the missing streams.
type MonthlySummary struct {
	Month       domain.MonthKey
	Receipts    Totals
	Expenses    Totals
	Investments Totals
	Result      Totals // Receipts - (Expenses + Investments), per currency
}

// Summary is the all-time equivalent of MonthlySummary: the same
// computation with a single global group instead of per-month groups.
type Summary struct {
	Receipts    Totals
	Expenses    Totals
	Investments Totals
	Result      Totals
}

// Summarize groups the three ledger streams by calendar month and derives
// the per-month result. Receipts carry USD only; their BRL column is always
// zero. Rows are returned in ascending month order.
func Summarize(expenses []*domain.Expense, investments []*domain.Investment, receipts []*domain.Receipt) []MonthlySummary {
	rows := make(map[domain.MonthKey]*MonthlySummary)

	row := func(month domain.MonthKey) *MonthlySummary {
		if r, ok := rows[month]; ok {
			return r
		}
		r := &MonthlySummary{Month: month}
		rows[month] = r
		return r
	}

	for _, e := range expenses {
		r := row(domain.MonthKeyOf(e.Date))
		r.Expenses = r.Expenses.add(e.AmountBRL, e.AmountUSD)
	}
	for _, i := range investments {
		r := row(domain.MonthKeyOf(i.Date))
		r.Investments = r.Investments.add(i.AmountBRL, i.AmountUSD)
	}
	for _, rc := range receipts {
		r := row(domain.MonthKeyOf(rc.Date))
		r.Receipts = r.Receipts.add(decimal.Zero, rc.AmountReceived)
	}

	out := make([]MonthlySummary, 0, len(rows))
	for _, r := range rows {
		r.Result = r.Receipts.sub(r.Expenses).sub(r.Investments)
		out = append(out, *r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})

	return out
}

// AllTime computes the single-group summary over the full ledgers.
func AllTime(expenses []*domain.Expense, investments []*domain.Investment, receipts []*domain.Receipt) Summary {
	var s Summary
	for _, e := range expenses {
		s.Expenses = s.Expenses.add(e.AmountBRL, e.AmountUSD)
	}
	for _, i := range investments {
		s.Investments = s.Investments.add(i.AmountBRL, i.AmountUSD)
	}
	for _, rc := range receipts {
		s.Receipts = s.Receipts.add(decimal.Zero, rc.AmountReceived)
	}
	s.Result = s.Receipts.sub(s.Expenses).sub(s.Investments)
	return s
}

// MarginSummary is the per-month settlement roll-up: gross payout, net
// profit and margin (profit/gross as a fraction, 0 when gross is 0).
// All amounts are USD.
type MarginSummary struct {
	Month     domain.MonthKey
	Gross     decimal.Decimal
	Profit    decimal.Decimal
	MarginPct decimal.Decimal
}

// MarginByMonth groups settlements by month and derives each month's gross,
// profit and margin. Rows are returned in ascending month order.
func MarginByMonth(settlements []*domain.Settlement) []MarginSummary {
	rows := make(map[domain.MonthKey]*MarginSummary)

	for _, st := range settlements {
		month := domain.MonthKeyOf(st.Date)
		r, ok := rows[month]
		if !ok {
			r = &MarginSummary{Month: month}
			rows[month] = r
		}
		r.Gross = r.Gross.Add(st.Gross)
		r.Profit = r.Profit.Add(st.Profit())
	}

	out := make([]MarginSummary, 0, len(rows))
	for _, r := range rows {
		if r.Gross.IsPositive() {
			r.MarginPct = r.Profit.Div(r.Gross)
		}
		out = append(out, *r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})

	return out
}

// MarginTotal is the all-time settlement roll-up.
type MarginTotal struct {
	Gross     decimal.Decimal
	Profit    decimal.Decimal
	MarginPct decimal.Decimal
}

// MarginAllTime derives the all-time gross, profit and margin over every
// settlement.
func MarginAllTime(settlements []*domain.Settlement) MarginTotal {
	var t MarginTotal
	t.Gross = decimal.Zero
	t.Profit = decimal.Zero
	for _, st := range settlements {
		t.Gross = t.Gross.Add(st.Gross)
		t.Profit = t.Profit.Add(st.Profit())
	}
	t.MarginPct = decimal.Zero
	if t.Gross.IsPositive() {
		t.MarginPct = t.Profit.Div(t.Gross)
	}
	return t
}
