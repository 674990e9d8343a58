// Package currency is the report service's client for the currency service.
package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

// ConvertPath is the currency service endpoint used for conversions.
const ConvertPath = "/api/currency/convert/view"

var (
	errUnexpectedStatus    = errors.New("unexpected status")
	errCurrencyMismatch    = errors.New("currency mismatch")
	errInvalidConversion   = errors.New("invalid conversion request")
	errUndecodableResponse = errors.New("undecodable response")
)

// Client converts amounts by calling the currency service. It never fails:
// when the service does not answer usefully it returns the original amount
// in the requested currency.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics records conversion outcomes and latency.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the logger used for degraded conversions.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new Client. A non-positive timeout falls back to
// usecase.DefaultConversionTimeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = usecase.DefaultConversionTimeout
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// conversionResult is the tagged outcome of one conversion attempt.
type conversionResult struct {
	money   domain.Money
	outcome string
	cause   error
}

func succeeded(money domain.Money) conversionResult {
	return conversionResult{money: money, outcome: metrics.OutcomeOK}
}

func degraded(amount decimal.Decimal, to, outcome string, cause error) conversionResult {
	return conversionResult{
		money:   domain.Money{Amount: amount, Currency: domain.NormalizeCurrency(to)},
		outcome: outcome,
		cause:   cause,
	}
}

// Convert asks the currency service to convert amount. Exactly one request is
// made, bounded by the client timeout. No request is made for malformed codes.
func (c *Client) Convert(ctx context.Context, amount decimal.Decimal, from, to string) domain.Money {
	start := time.Now()
	result := c.convert(ctx, amount, from, to)

	if c.metrics != nil {
		c.metrics.CurrencyConversions.WithLabelValues(result.outcome).Inc()
		if result.outcome != metrics.OutcomeInvalid {
			c.metrics.ConversionDuration.Observe(time.Since(start).Seconds())
		}
	}

	if result.cause != nil {
		c.logger.Warn().Err(result.cause).
			Str("from", from).
			Str("to", to).
			Str("amount", amount.String()).
			Str("outcome", result.outcome).
			Msg("currency conversion degraded, using unconverted amount")
	}

	return result.money
}

func (c *Client) convert(ctx context.Context, amount decimal.Decimal, from, to string) conversionResult {
	if err := domain.ValidateCurrency(from); err != nil {
		return degraded(amount, to, metrics.OutcomeInvalid, fmt.Errorf("%w: from: %w", errInvalidConversion, err))
	}
	if err := domain.ValidateCurrency(to); err != nil {
		return degraded(amount, to, metrics.OutcomeInvalid, fmt.Errorf("%w: to: %w", errInvalidConversion, err))
	}
	target := domain.NormalizeCurrency(to)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("amount", amount.String())
	query.Set("from", domain.NormalizeCurrency(from))
	query.Set("to", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ConvertPath+"?"+query.Encode(), nil)
	if err != nil {
		return degraded(amount, to, metrics.OutcomeDegraded, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return degraded(amount, to, metrics.OutcomeDegraded, fmt.Errorf("send: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return degraded(amount, to, metrics.OutcomeDegraded,
			fmt.Errorf("%w %d: %s", errUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var payload struct {
		Amount   *decimal.Decimal `json:"amount"`
		Currency string           `json:"currency"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload); err != nil {
		return degraded(amount, to, metrics.OutcomeDegraded, fmt.Errorf("%w: %w", errUndecodableResponse, err))
	}
	if payload.Amount == nil {
		return degraded(amount, to, metrics.OutcomeDegraded, fmt.Errorf("%w: missing amount", errUndecodableResponse))
	}

	if got := domain.NormalizeCurrency(payload.Currency); got != target {
		return degraded(amount, to, metrics.OutcomeDegraded,
			fmt.Errorf("%w: requested %s, got %q", errCurrencyMismatch, target, payload.Currency))
	}

	return succeeded(domain.Money{Amount: *payload.Amount, Currency: target})
}
