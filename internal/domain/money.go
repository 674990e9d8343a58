package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a currency is not known or not requested.
const DefaultCurrency = "USD"

// Money is an amount paired with the currency it is expressed in.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney returns Money with a normalized currency code.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: NormalizeCurrency(currency)}
}

// NormalizeCurrency trims and uppercases a currency code.
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

// FormatAmount renders d as its shortest exact decimal form with at least one
// fractional digit: 900 -> "900.0", -25.50 -> "-25.5", 62.75 -> "62.75".
func FormatAmount(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatBalance renders a stored balance with two fractional digits.
func FormatBalance(d decimal.Decimal) string {
	return d.StringFixed(2)
}
