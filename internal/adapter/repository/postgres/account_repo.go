package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/postgres/generated"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
	retrier *Retrier
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool, retrier *Retrier) *AccountRepository {
	return &AccountRepository{
		pool:    pool,
		queries: generated.New(pool),
		retrier: retrier,
	}
}

// Create inserts an account. Only the seeder writes accounts.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.queries.CreateAccount(ctx, generated.CreateAccountParams{
		ID:            account.ID,
		AccountNumber: account.AccountNumber,
		Balance:       decimalToNumeric(account.Balance),
		Currency:      domain.NormalizeCurrency(account.Currency),
		CreatedAt:     timeToPgTimestamptz(account.CreatedAt),
	})

	return err
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var row generated.Account

	err := r.retrier.Retry(ctx, func() error {
		var err error
		row, err = r.queries.GetAccountByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToAccount(row), nil
}

func rowToAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		ID:            row.ID,
		AccountNumber: row.AccountNumber,
		Currency:      domain.NormalizeCurrency(row.Currency),
		Balance:       numericToDecimal(row.Balance),
		CreatedAt:     row.CreatedAt.Time,
	}
}
