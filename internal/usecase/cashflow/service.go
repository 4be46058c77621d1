package cashflow

import (
	"context"
	"fmt"

	"github.com/qotastore/finance-backend/internal/domain"
)

// Service exposes cash-flow summaries backed by the ledgers. Every query
// recomputes from fresh ledger snapshots; there is no cached state.
type Service struct {
	ExpenseRepo    domain.ExpenseRepository
	InvestmentRepo domain.InvestmentRepository
	ReceiptRepo    domain.ReceiptRepository
	SettlementRepo domain.SettlementRepository
}

// NewService creates a new cashflow Service instance
func NewService(
	expenseRepo domain.ExpenseRepository,
	investmentRepo domain.InvestmentRepository,
	receiptRepo domain.ReceiptRepository,
	settlementRepo domain.SettlementRepository,
) *Service {
	return &Service{
		ExpenseRepo:    expenseRepo,
		InvestmentRepo: investmentRepo,
		ReceiptRepo:    receiptRepo,
		SettlementRepo: settlementRepo,
	}
}

func (s *Service) loadStreams(ctx context.Context) ([]*domain.Expense, []*domain.Investment, []*domain.Receipt, error) {
	expenses, err := s.ExpenseRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	investments, err := s.InvestmentRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list investments: %w", err)
	}

	receipts, err := s.ReceiptRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	return expenses, investments, receipts, nil
}

// MonthlySummaries returns the cash-flow table grouped by calendar month.
func (s *Service) MonthlySummaries(ctx context.Context) ([]MonthlySummary, error) {
	expenses, investments, receipts, err := s.loadStreams(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(expenses, investments, receipts), nil
}

// AllTimeSummary returns the single-group summary over the full ledgers.
func (s *Service) AllTimeSummary(ctx context.Context) (Summary, error) {
	expenses, investments, receipts, err := s.loadStreams(ctx)
	if err != nil {
		return Summary{}, err
	}
	return AllTime(expenses, investments, receipts), nil
}

// SettlementMargins returns the per-month settlement roll-up plus the
// all-time totals.
func (s *Service) SettlementMargins(ctx context.Context) ([]MarginSummary, MarginTotal, error) {
	settlements, err := s.SettlementRepo.List(ctx)
	if err != nil {
		return nil, MarginTotal{}, fmt.Errorf("failed to list settlements: %w", err)
	}
	return MarginByMonth(settlements), MarginAllTime(settlements), nil
}
