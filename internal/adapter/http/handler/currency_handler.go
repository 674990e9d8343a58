package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
)

// CurrencyService defines the behavior needed by CurrencyHandler.
type CurrencyService interface {
	Convert(amount decimal.Decimal, from, to string) (domain.Money, error)
	SelectCurrency(desired string) (string, error)
	Rates() []domain.RateEntry
}

// CurrencyHandler handles currency service HTTP requests.
type CurrencyHandler struct {
	currencyUC CurrencyService
}

// NewCurrencyHandler creates a new CurrencyHandler.
func NewCurrencyHandler(currencyUC CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyUC: currencyUC}
}

// Convert converts amount between currencies at the demo rate.
// It serves both GET /convert/view and POST /convert.
func (h *CurrencyHandler) Convert(w http.ResponseWriter, r *http.Request) {
	req := dto.ConvertRequestFromQuery(r.URL.Query())

	amount, err := req.Parse()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid conversion request", err.Error())
		return
	}

	money, err := h.currencyUC.Convert(amount, req.From, req.To)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to convert", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MoneyFromDomain(money))
}

// Select echoes the desired currency, uppercased.
func (h *CurrencyHandler) Select(w http.ResponseWriter, r *http.Request) {
	selected, err := h.currencyUC.SelectCurrency(r.URL.Query().Get("desired"))
	if err != nil {
		writeError(w, mapDomainError(err), "invalid currency", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SelectCurrencyResponse{SelectedCurrency: selected})
}

// Rates lists the demo rate table.
func (h *CurrencyHandler) Rates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.RatesFromDomain(h.currencyUC.Rates()))
}
