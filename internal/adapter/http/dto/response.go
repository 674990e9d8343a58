package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Currency:      a.NativeCurrency(),
		Balance:       a.Balance,
		CreatedAt:     optionalTime(a.CreatedAt),
	}
}

// TransactionResponse represents a transaction in API responses.
// Description is an empty string when the transaction has none.
type TransactionResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"accountId"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     string          `json:"description"`
	TransactionType string          `json:"transactionType"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		AccountID:       t.AccountID,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Description:     t.Description,
		TransactionType: string(t.Kind),
		CreatedAt:       optionalTime(t.CreatedAt),
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// AnalyticsResponse represents account analytics in API responses.
type AnalyticsResponse struct {
	AccountID      string          `json:"accountId"`
	TotalInflow    decimal.Decimal `json:"totalInflow"`
	TotalOutflow   decimal.Decimal `json:"totalOutflow"`
	AvgTransaction decimal.Decimal `json:"avgTransaction"`
}

// AnalyticsFromDomain converts domain analytics to response.
func AnalyticsFromDomain(a *domain.AccountAnalytics) *AnalyticsResponse {
	return &AnalyticsResponse{
		AccountID:      a.AccountID,
		TotalInflow:    a.TotalInflow,
		TotalOutflow:   a.TotalOutflow,
		AvgTransaction: a.AvgTransaction,
	}
}

// MoneyResponse is the result of a conversion.
type MoneyResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// MoneyFromDomain converts domain money to response.
func MoneyFromDomain(m domain.Money) *MoneyResponse {
	return &MoneyResponse{Amount: m.Amount, Currency: m.Currency}
}

// SelectCurrencyResponse echoes the selected display currency.
type SelectCurrencyResponse struct {
	SelectedCurrency string `json:"selectedCurrency"`
}

// RateResponse is one row of the rate table.
type RateResponse struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

// RatesResponse lists the rate table.
type RatesResponse struct {
	Rates []RateResponse `json:"rates"`
	// Unlisted pairs convert at this rate.
	DefaultRate decimal.Decimal `json:"defaultRate"`
}

// RatesFromDomain converts the rate table to response.
func RatesFromDomain(entries []domain.RateEntry) *RatesResponse {
	rates := make([]RateResponse, len(entries))
	for i, e := range entries {
		rates[i] = RateResponse{From: e.From, To: e.To, Rate: e.Rate}
	}
	return &RatesResponse{Rates: rates, DefaultRate: decimal.NewFromInt(1)}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
