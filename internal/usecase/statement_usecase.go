package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// Analyzer computes account analytics.
type Analyzer interface {
	Analyze(ctx context.Context, accountID string) (*domain.AccountAnalytics, error)
}

// StatementUseCase assembles and renders account statements.
type StatementUseCase struct {
	accountRepo AccountRepository
	analyzer    Analyzer
	converter   CurrencyConverter
	renderer    DocumentRenderer
	publisher   EventPublisher
	idGen       IDGenerator
	logger      zerolog.Logger
	now         func() time.Time

	pending sync.WaitGroup
}

// NewStatementUseCase creates a new StatementUseCase. publisher may be nil.
func NewStatementUseCase(
	accountRepo AccountRepository,
	analyzer Analyzer,
	converter CurrencyConverter,
	renderer DocumentRenderer,
	publisher EventPublisher,
	idGen IDGenerator,
	logger zerolog.Logger,
) *StatementUseCase {
	return &StatementUseCase{
		accountRepo: accountRepo,
		analyzer:    analyzer,
		converter:   converter,
		renderer:    renderer,
		publisher:   publisher,
		idGen:       idGen,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Compose gathers account state and returns the statement lines without rendering them.
//
// A missing account is not an error: the statement shows N/A and a zero balance.
// A failed conversion is not an error either; the converter falls back to the
// unconverted balance. Other storage errors are returned as is.
func (uc *StatementUseCase) Compose(ctx context.Context, accountID, targetCurrency string) (*domain.Statement, error) {
	target, err := domain.ParseCurrency(targetCurrency, domain.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		uc.logger.Warn().Str("account_id", accountID).Msg("account not found, composing placeholder statement")
		account = nil
	}

	analytics, err := uc.analyzer.Analyze(ctx, accountID)
	if err != nil {
		return nil, err
	}

	native := account.NativeCurrency()
	accountNumber := domain.NotAvailable
	balance := decimal.Zero
	if account != nil {
		accountNumber = account.AccountNumber
		balance = account.Balance
	}

	converted := balance
	needsConversion := native != target
	if needsConversion && account != nil {
		converted = uc.converter.Convert(ctx, balance, native, target).Amount
	}

	lines := make([]string, 0, 8)
	lines = append(lines,
		domain.StatementTitle,
		"Account ID: "+accountID,
		"Account Number: "+accountNumber,
		fmt.Sprintf("Balance: %s %s", domain.FormatBalance(balance), native),
	)
	if needsConversion {
		lines = append(lines, fmt.Sprintf("Balance in %s: %s", target, domain.FormatAmount(converted)))
	}
	lines = append(lines,
		fmt.Sprintf("Total Inflow: %s %s", domain.FormatAmount(analytics.TotalInflow), native),
		fmt.Sprintf("Total Outflow: %s %s", domain.FormatAmount(analytics.TotalOutflow), native),
		fmt.Sprintf("Average Transaction: %s %s", domain.FormatAmount(analytics.AvgTransaction), native),
	)

	return &domain.Statement{
		AccountID:      accountID,
		TargetCurrency: target,
		Title:          domain.StatementTitle,
		Lines:          lines,
		Converted:      needsConversion,
	}, nil
}

// Generate composes and renders a statement. Rendering failure is the only
// error that does not come from storage; it wraps domain.ErrRenderFailed.
// The statement event is published in the background.
func (uc *StatementUseCase) Generate(ctx context.Context, accountID, targetCurrency string) (*domain.Statement, error) {
	statement, err := uc.Compose(ctx, accountID, targetCurrency)
	if err != nil {
		return nil, err
	}

	doc, err := uc.renderer.Render(statement.Title, statement.Lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}
	statement.Document = doc

	uc.publish(ctx, statement)

	return statement, nil
}

// Help renders the API help document.
func (uc *StatementUseCase) Help() ([]byte, error) {
	doc, err := uc.renderer.Render(HelpTitle, HelpLines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}
	return doc, nil
}

// Wait blocks until background event publishes have finished.
func (uc *StatementUseCase) Wait() {
	uc.pending.Wait()
}

func (uc *StatementUseCase) publish(ctx context.Context, statement *domain.Statement) {
	if uc.publisher == nil {
		return
	}

	event := &domain.StatementEvent{
		GeneratedAt:    uc.now(),
		ID:             uc.idGen.Generate(),
		AccountID:      statement.AccountID,
		TargetCurrency: statement.TargetCurrency,
		Converted:      statement.Converted,
		Bytes:          len(statement.Document),
	}

	// The response must not wait on the broker, and the event outlives the request.
	ctx = context.WithoutCancel(ctx)
	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()

		if err := uc.publisher.PublishStatement(ctx, event); err != nil {
			uc.logger.Warn().Err(err).
				Str("account_id", event.AccountID).
				Str("event_id", event.ID).
				Msg("failed to publish statement event")
		}
	}()
}

// HelpTitle heads the help document.
const HelpTitle = "Report Service Help"

// HelpLines describes the report API.
var HelpLines = []string{
	"GET /api/report/transactions?accountId=<id> - list transactions",
	"GET /api/report/transactions/history?accountId=<id> - transactions, newest first",
	"GET /api/report/analytics/<accountId> - inflow, outflow and average transaction",
	"GET /api/report/account/<accountId> - account details",
	"POST /api/report/account/<accountId>/statement?targetCurrency=<code> - PDF statement",
	"GET /api/report/help/pdf - this document",
}
