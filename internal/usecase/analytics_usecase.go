package usecase

import (
	"context"

	"github.com/iho/gobank/internal/domain"
)

// AnalyticsUseCase computes per-account aggregates.
type AnalyticsUseCase struct {
	transactionRepo TransactionRepository
}

// NewAnalyticsUseCase creates a new AnalyticsUseCase.
func NewAnalyticsUseCase(transactionRepo TransactionRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{transactionRepo: transactionRepo}
}

// Analyze returns inflow, outflow and average transaction size for an account.
// An account without transactions yields zero for every value.
func (uc *AnalyticsUseCase) Analyze(ctx context.Context, accountID string) (*domain.AccountAnalytics, error) {
	txs, err := uc.transactionRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return domain.ComputeAnalytics(accountID, txs), nil
}
