package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank account as stored by the ledger. The report service only reads it.
type Account struct {
	ID            string
	AccountNumber string
	Currency      string
	Balance       decimal.Decimal
	CreatedAt     time.Time
}

// NativeCurrency returns the account currency, or DefaultCurrency when none is set.
func (a *Account) NativeCurrency() string {
	if a == nil {
		return DefaultCurrency
	}
	if c := NormalizeCurrency(a.Currency); c != "" {
		return c
	}
	return DefaultCurrency
}
