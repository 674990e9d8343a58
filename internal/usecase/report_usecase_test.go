package usecase_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

func TestReportUseCase_GetAccount(t *testing.T) {
	tests := []struct {
		name        string
		accountID   string
		setupMocks  func(*mocks.MockAccountRepository)
		expectError error
	}{
		{
			name:      "returns account when exists",
			accountID: "acc1",
			setupMocks: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetByID(gomock.Any(), "acc1").Return(&domain.Account{ID: "acc1", AccountNumber: "ACC-001"}, nil)
			},
		},
		{
			name:      "returns not found when missing",
			accountID: "acc2",
			setupMocks: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetByID(gomock.Any(), "acc2").Return(nil, domain.ErrAccountNotFound)
			},
			expectError: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accounts := mocks.NewMockAccountRepository(ctrl)
			tt.setupMocks(accounts)

			uc := usecase.NewReportUseCase(accounts, mocks.NewMockTransactionRepository(ctrl))
			account, err := uc.GetAccount(context.Background(), tt.accountID)

			if tt.expectError != nil {
				if err != tt.expectError {
					t.Fatalf("expected %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if account.ID != tt.accountID {
				t.Fatalf("expected account %s, got %s", tt.accountID, account.ID)
			}
		})
	}
}

func TestReportUseCase_GetTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	txRepo := mocks.NewMockTransactionRepository(ctrl)
	uc := usecase.NewReportUseCase(mocks.NewMockAccountRepository(ctrl), txRepo)

	txRepo.EXPECT().ListByAccount(gomock.Any(), "acc1").Return([]*domain.Transaction{{ID: "t1"}, {ID: "t2"}}, nil)
	txs, err := uc.GetTransactions(context.Background(), "acc1")
	if err != nil || len(txs) != 2 || txs[0].ID != "t1" || txs[1].ID != "t2" {
		t.Fatalf("unexpected result %v, err=%v", txs, err)
	}

	txRepo.EXPECT().List(gomock.Any()).Return([]*domain.Transaction{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}, nil)
	txs, err = uc.GetTransactions(context.Background(), "")
	if err != nil || len(txs) != 3 {
		t.Fatalf("expected all transactions, got %v, err=%v", txs, err)
	}
}

func TestReportUseCase_GetTransactionHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	txRepo := mocks.NewMockTransactionRepository(ctrl)
	uc := usecase.NewReportUseCase(mocks.NewMockAccountRepository(ctrl), txRepo)

	txRepo.EXPECT().ListByAccountNewestFirst(gomock.Any(), "acc1").Return([]*domain.Transaction{{ID: "t2"}, {ID: "t1"}}, nil)
	txs, err := uc.GetTransactionHistory(context.Background(), "acc1")
	if err != nil || len(txs) != 2 || txs[0].ID != "t2" {
		t.Fatalf("unexpected history %v, err=%v", txs, err)
	}

	now := time.Now()
	txRepo.EXPECT().List(gomock.Any()).Return([]*domain.Transaction{
		{ID: "old", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "new", CreatedAt: now},
		{ID: "mid", CreatedAt: now.Add(-24 * time.Hour)},
	}, nil)

	txs, err = uc.GetTransactionHistory(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txs[0].ID != "new" || txs[1].ID != "mid" || txs[2].ID != "old" {
		t.Fatalf("expected newest first, got %s, %s, %s", txs[0].ID, txs[1].ID, txs[2].ID)
	}
}
