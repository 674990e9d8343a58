package usecase

import (
	"context"
	"sort"

	"github.com/iho/gobank/internal/domain"
)

// ReportUseCase serves read-only account and transaction queries.
type ReportUseCase struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(accountRepo AccountRepository, transactionRepo TransactionRepository) *ReportUseCase {
	return &ReportUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// GetAccount retrieves an account by ID.
func (uc *ReportUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// GetTransactions lists the transactions of an account, or every transaction when accountID is empty.
func (uc *ReportUseCase) GetTransactions(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	if accountID == "" {
		return uc.transactionRepo.List(ctx)
	}
	return uc.transactionRepo.ListByAccount(ctx, accountID)
}

// GetTransactionHistory lists transactions newest first.
func (uc *ReportUseCase) GetTransactionHistory(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	if accountID != "" {
		return uc.transactionRepo.ListByAccountNewestFirst(ctx, accountID)
	}

	txs, err := uc.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})

	return txs, nil
}
