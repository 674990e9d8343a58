package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxConversionAmount bounds amounts accepted at the conversion boundary.
const MaxConversionAmount = "1000000000000" // 1 trillion

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCurrency checks that currency is a three-letter code once normalized.
// Codes are not checked against an allow-list; unknown but well-formed codes are
// accepted and convert at 1:1.
func ValidateCurrency(currency string) error {
	code := NormalizeCurrency(currency)
	if !currencyCodeRegex.MatchString(code) {
		return fmt.Errorf("%w: %q must be three letters", ErrInvalidCurrency, currency)
	}
	return nil
}

// ParseCurrency validates and normalizes a currency code. An empty value yields fallback.
func ParseCurrency(currency, fallback string) (string, error) {
	if strings.TrimSpace(currency) == "" {
		currency = fallback
	}
	if err := ValidateCurrency(currency); err != nil {
		return "", err
	}
	return NormalizeCurrency(currency), nil
}

// ParseAmount parses a decimal amount for conversion.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}

	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

// ValidateAmount checks an amount is within conversion bounds. Negative balances are allowed.
func ValidateAmount(amount decimal.Decimal) error {
	maxAmount := decimal.RequireFromString(MaxConversionAmount)
	if amount.Abs().GreaterThan(maxAmount) {
		return fmt.Errorf("%w: magnitude exceeds %s", ErrInvalidAmount, MaxConversionAmount)
	}
	return nil
}
