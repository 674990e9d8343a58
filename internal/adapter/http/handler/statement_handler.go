package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// HelpFilename is the inline filename of the help document.
const HelpFilename = "help.pdf"

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	Generate(ctx context.Context, accountID, targetCurrency string) (*domain.Statement, error)
	Help() ([]byte, error)
}

// StatementHandler serves rendered documents.
type StatementHandler struct {
	statementUC StatementService
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewStatementHandler creates a new StatementHandler. m may be nil.
func NewStatementHandler(statementUC StatementService, m *metrics.Metrics, logger zerolog.Logger) *StatementHandler {
	return &StatementHandler{
		statementUC: statementUC,
		metrics:     m,
		logger:      logger,
	}
}

// Generate renders an account statement, converting the balance to targetCurrency.
// A missing account still yields a document.
func (h *StatementHandler) Generate(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	statement, err := h.statementUC.Generate(r.Context(), accountID, r.URL.Query().Get("targetCurrency"))
	if err != nil {
		h.recordFailure(err)
		h.logger.Error().Err(err).Str("account_id", accountID).Msg("failed to generate statement")
		writeError(w, mapDomainError(err), "failed to generate statement", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.StatementsGenerated.WithLabelValues(strconv.FormatBool(statement.Converted)).Inc()
		h.metrics.StatementBytes.Observe(float64(len(statement.Document)))
	}

	writeDocument(w, statement.Filename(), statement.Document)
}

// Help renders the API help document.
func (h *StatementHandler) Help(w http.ResponseWriter, r *http.Request) {
	doc, err := h.statementUC.Help()
	if err != nil {
		h.recordFailure(err)
		h.logger.Error().Err(err).Msg("failed to render help document")
		writeError(w, mapDomainError(err), "failed to render help", err.Error())
		return
	}

	writeDocument(w, HelpFilename, doc)
}

func (h *StatementHandler) recordFailure(err error) {
	if h.metrics != nil && errors.Is(err, domain.ErrRenderFailed) {
		h.metrics.RenderFailures.Inc()
	}
}
