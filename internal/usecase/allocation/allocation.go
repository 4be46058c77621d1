// Package allocation distributes a month's settlement profit across named
// buckets according to percentage rules (Profit First style).
package allocation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// Distribute splits a profit amount across the rules, rounding each share to
// cents. Shares are keyed by rule name. A non-positive profit yields an
// empty distribution, there is nothing to allocate.
func Distribute(profit decimal.Decimal, rules []*domain.AllocationRule) map[string]decimal.Decimal {
	if !profit.IsPositive() {
		return map[string]decimal.Decimal{}
	}

	shares := make(map[string]decimal.Decimal, len(rules))
	for _, rule := range rules {
		shares[rule.Name] = profit.Mul(rule.Pct).Round(2)
	}
	return shares
}

// Service exposes allocation rule management and profit distribution.
type Service struct {
	AllocationRepo domain.AllocationRepository
	SettlementRepo domain.SettlementRepository
}

// NewService creates a new allocation Service instance
func NewService(allocationRepo domain.AllocationRepository, settlementRepo domain.SettlementRepository) *Service {
	return &Service{
		AllocationRepo: allocationRepo,
		SettlementRepo: settlementRepo,
	}
}

// SaveRule creates or updates a percentage rule.
func (s *Service) SaveRule(ctx context.Context, name string, pct decimal.Decimal) (*domain.AllocationRule, error) {
	rule := &domain.AllocationRule{
		ID:   uuid.New(),
		Name: name,
		Pct:  pct,
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}

	if err := s.AllocationRepo.UpsertRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to save allocation rule: %w", err)
	}

	return rule, nil
}

// MonthProfit sums the settlement profit for one month.
func (s *Service) MonthProfit(ctx context.Context, month domain.MonthKey) (decimal.Decimal, error) {
	settlements, err := s.SettlementRepo.List(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list settlements: %w", err)
	}

	total := decimal.Zero
	for _, st := range settlements {
		if domain.MonthKeyOf(st.Date) == month {
			total = total.Add(st.Profit())
		}
	}
	return total, nil
}

// SuggestDistribution computes the suggested per-bucket shares of a month's
// settlement profit without persisting anything.
func (s *Service) SuggestDistribution(ctx context.Context, month domain.MonthKey) (map[string]decimal.Decimal, error) {
	profit, err := s.MonthProfit(ctx, month)
	if err != nil {
		return nil, err
	}

	rules, err := s.AllocationRepo.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocation rules: %w", err)
	}

	return Distribute(profit, rules), nil
}

// RecordDistribution computes the month's distribution and stores one
// execution row per bucket.
func (s *Service) RecordDistribution(ctx context.Context, month domain.MonthKey) ([]*domain.AllocationExecution, error) {
	shares, err := s.SuggestDistribution(ctx, month)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	executions := make([]*domain.AllocationExecution, 0, len(shares))
	for name, amount := range shares {
		executions = append(executions, &domain.AllocationExecution{
			ID:        uuid.New(),
			Month:     month,
			Name:      name,
			AmountUSD: amount,
			CreatedAt: now,
		})
	}

	if len(executions) > 0 {
		if err := s.AllocationRepo.RecordExecutions(ctx, executions); err != nil {
			return nil, fmt.Errorf("failed to record allocation executions: %w", err)
		}
	}

	return executions, nil
}
