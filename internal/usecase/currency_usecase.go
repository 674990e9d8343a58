package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// CurrencyUseCase answers conversions from the fixed demo rate table.
type CurrencyUseCase struct{}

// NewCurrencyUseCase creates a new CurrencyUseCase.
func NewCurrencyUseCase() *CurrencyUseCase {
	return &CurrencyUseCase{}
}

// Convert converts amount from one currency into another.
func (uc *CurrencyUseCase) Convert(amount decimal.Decimal, from, to string) (domain.Money, error) {
	if err := domain.ValidateCurrency(from); err != nil {
		return domain.Money{}, err
	}
	if err := domain.ValidateCurrency(to); err != nil {
		return domain.Money{}, err
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.Money{}, err
	}

	return domain.Convert(amount, from, to), nil
}

// SelectCurrency validates and normalizes a preferred display currency.
func (uc *CurrencyUseCase) SelectCurrency(desired string) (string, error) {
	if err := domain.ValidateCurrency(desired); err != nil {
		return "", err
	}
	return domain.NormalizeCurrency(desired), nil
}

// Rates lists the demo rate table.
func (uc *CurrencyUseCase) Rates() []domain.RateEntry {
	return domain.Rates()
}
