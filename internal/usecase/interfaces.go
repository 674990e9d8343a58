package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository defines read access to accounts.
type AccountRepository interface {
	// GetByID returns domain.ErrAccountNotFound when no account has the given id.
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

// TransactionRepository defines read access to transactions.
type TransactionRepository interface {
	List(ctx context.Context) ([]*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error)
	ListByAccountNewestFirst(ctx context.Context, accountID string) ([]*domain.Transaction, error)
}

// CurrencyConverter converts an amount through the currency service.
// Implementations never fail: when the service cannot answer they return the
// original amount in the requested target currency.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) domain.Money
}

// DocumentRenderer turns a title and ordered lines into a document.
type DocumentRenderer interface {
	Render(title string, lines []string) ([]byte, error)
}

// EventPublisher publishes statement events to external systems.
type EventPublisher interface {
	PublishStatement(ctx context.Context, event *domain.StatementEvent) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// A nil response reserves the key with a placeholder.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a reservation whose request did not succeed.
	Release(ctx context.Context, key string) error
}
