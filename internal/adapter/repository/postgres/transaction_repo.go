package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/postgres/generated"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
	retrier *Retrier
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool, retrier *Retrier) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
		retrier: retrier,
	}
}

// Create inserts a transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:              tx.ID,
		AccountID:       tx.AccountID,
		Amount:          decimalToNumeric(tx.Amount),
		Currency:        domain.NormalizeCurrency(tx.Currency),
		Description:     stringToPgText(tx.Description),
		TransactionType: string(tx.Kind),
		CreatedAt:       timeToPgTimestamptz(tx.CreatedAt),
	})

	return err
}

// List returns every transaction.
func (r *TransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	return r.list(ctx, func() ([]generated.Transaction, error) {
		return r.queries.ListTransactions(ctx)
	})
}

// ListByAccount returns the transactions of one account.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	return r.list(ctx, func() ([]generated.Transaction, error) {
		return r.queries.ListTransactionsByAccount(ctx, accountID)
	})
}

// ListByAccountNewestFirst returns the transactions of one account ordered by creation time, newest first.
func (r *TransactionRepository) ListByAccountNewestFirst(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	return r.list(ctx, func() ([]generated.Transaction, error) {
		return r.queries.ListTransactionsByAccountNewestFirst(ctx, accountID)
	})
}

func (r *TransactionRepository) list(ctx context.Context, query func() ([]generated.Transaction, error)) ([]*domain.Transaction, error) {
	var rows []generated.Transaction

	err := r.retrier.Retry(ctx, func() error {
		var err error
		rows, err = query()
		return err
	})
	if err != nil {
		return nil, err
	}

	return rowsToTransactions(rows), nil
}

func rowsToTransactions(rows []generated.Transaction) []*domain.Transaction {
	txs := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, rowToTransaction(row))
	}

	return txs
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Amount:      numericToDecimal(row.Amount),
		Currency:    domain.NormalizeCurrency(row.Currency),
		Description: row.Description.String,
		Kind:        domain.TransactionKind(row.TransactionType),
		CreatedAt:   row.CreatedAt.Time,
	}
}

func stringToPgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
