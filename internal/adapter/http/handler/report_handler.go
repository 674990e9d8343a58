package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	GetTransactions(ctx context.Context, accountID string) ([]*domain.Transaction, error)
	GetTransactionHistory(ctx context.Context, accountID string) ([]*domain.Transaction, error)
}

// AnalyticsService defines the behavior needed for analytics endpoints.
type AnalyticsService interface {
	Analyze(ctx context.Context, accountID string) (*domain.AccountAnalytics, error)
}

// ReportHandler handles transaction and analytics HTTP requests.
type ReportHandler struct {
	reportUC    ReportService
	analyticsUC AnalyticsService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService, analyticsUC AnalyticsService) *ReportHandler {
	return &ReportHandler{
		reportUC:    reportUC,
		analyticsUC: analyticsUC,
	}
}

// Transactions lists transactions, optionally filtered by the accountId query parameter.
func (h *ReportHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.reportUC.GetTransactions(r.Context(), r.URL.Query().Get("accountId"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txs))
}

// History lists transactions newest first.
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	txs, err := h.reportUC.GetTransactionHistory(r.Context(), r.URL.Query().Get("accountId"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transaction history", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txs))
}

// Analytics returns inflow, outflow and average transaction for an account.
func (h *ReportHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	analytics, err := h.analyticsUC.Analyze(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute analytics", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AnalyticsFromDomain(analytics))
}

// Account retrieves an account by ID.
func (h *ReportHandler) Account(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.reportUC.GetAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}
