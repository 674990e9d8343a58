package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a transaction for aggregation.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "INCOME"
	TransactionKindExpense TransactionKind = "EXPENSE"
)

// IsValid reports whether k is a known kind.
func (k TransactionKind) IsValid() bool {
	return k == TransactionKindIncome || k == TransactionKindExpense
}

// Transaction is a single signed movement on an account.
// Positive amounts are inflows, negative amounts are outflows.
type Transaction struct {
	CreatedAt   time.Time
	ID          string
	AccountID   string
	Currency    string
	Description string
	Kind        TransactionKind
	Amount      decimal.Decimal
}
