package dto

import (
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// ConvertRequest represents a conversion query.
type ConvertRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// ConvertRequestFromQuery reads amount, from and to query parameters.
func ConvertRequestFromQuery(q url.Values) ConvertRequest {
	return ConvertRequest{
		Amount: q.Get("amount"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	}
}

// Parse validates the request and returns the parsed amount.
func (r ConvertRequest) Parse() (decimal.Decimal, error) {
	if err := domain.ValidateCurrency(r.From); err != nil {
		return decimal.Zero, err
	}
	if err := domain.ValidateCurrency(r.To); err != nil {
		return decimal.Zero, err
	}
	return domain.ParseAmount(r.Amount)
}
