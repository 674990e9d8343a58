package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// SeedResult describes the demo records written by Seed.
type SeedResult struct {
	Account      *domain.Account
	Transactions []*domain.Transaction
}

// Seeder writes demo data for local runs.
type Seeder struct {
	accounts     *AccountRepository
	transactions *TransactionRepository
	idGen        usecase.IDGenerator
	now          func() time.Time
}

// NewSeeder creates a new Seeder.
func NewSeeder(pool *pgxpool.Pool, idGen usecase.IDGenerator) *Seeder {
	retrier := NewRetrier()
	return &Seeder{
		accounts:     NewAccountRepository(pool, retrier),
		transactions: NewTransactionRepository(pool, retrier),
		idGen:        idGen,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Seed inserts one account with an income and an expense transaction.
func (s *Seeder) Seed(ctx context.Context, currency string) (*SeedResult, error) {
	result := DemoData(s.idGen, currency, s.now())

	if err := s.accounts.Create(ctx, result.Account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	for _, tx := range result.Transactions {
		if err := s.transactions.Create(ctx, tx); err != nil {
			return nil, fmt.Errorf("create transaction %s: %w", tx.ID, err)
		}
	}

	return result, nil
}

// DemoData builds the demo account and transactions without writing them.
func DemoData(idGen usecase.IDGenerator, currency string, now time.Time) *SeedResult {
	currency = domain.NormalizeCurrency(currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	accountID := idGen.Generate()
	account := &domain.Account{
		ID:            accountID,
		AccountNumber: "ACC-" + accountID[len(accountID)-6:],
		Currency:      currency,
		Balance:       decimal.RequireFromString("1000.00"),
		CreatedAt:     now,
	}

	txs := []*domain.Transaction{
		{
			ID:          idGen.Generate(),
			AccountID:   accountID,
			Amount:      decimal.RequireFromString("100.00"),
			Currency:    currency,
			Description: "Salary",
			Kind:        domain.TransactionKindIncome,
			CreatedAt:   now.Add(-time.Hour),
		},
		{
			ID:          idGen.Generate(),
			AccountID:   accountID,
			Amount:      decimal.RequireFromString("-25.50"),
			Currency:    currency,
			Description: "Groceries",
			Kind:        domain.TransactionKindExpense,
			CreatedAt:   now,
		},
	}

	return &SeedResult{Account: account, Transactions: txs}
}
