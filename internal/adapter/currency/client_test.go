package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestClient_Convert_Success(t *testing.T) {
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, ConvertPath, r.URL.Path)
		assert.Equal(t, "1000", r.URL.Query().Get("amount"))
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "EUR", r.URL.Query().Get("to"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"amount":900.0,"currency":"eur"}`))
	})

	m := metrics.New(prometheus.NewRegistry())
	client := NewClient(srv.URL, time.Second, WithMetrics(m))

	money := client.Convert(context.Background(), decimal.NewFromInt(1000), "usd", "eur")

	assert.True(t, money.Amount.Equal(decimal.NewFromInt(900)), "got %s", money.Amount)
	assert.Equal(t, "EUR", money.Currency)
	assert.Equal(t, "900.0", domain.FormatAmount(money.Amount))
	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CurrencyConversions.WithLabelValues(metrics.OutcomeOK)))
}

func TestClient_Convert_AcceptsQuotedAmount(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":"90000","currency":"RUB"}`))
	})

	money := NewClient(srv.URL, time.Second).Convert(context.Background(), decimal.NewFromInt(1000), "USD", "RUB")

	assert.True(t, money.Amount.Equal(decimal.NewFromInt(90000)))
	assert.Equal(t, "RUB", money.Currency)
}

func TestClient_Convert_Fallbacks(t *testing.T) {
	amount := decimal.RequireFromString("1000.00")

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "bad request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "bad", http.StatusBadRequest)
			},
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
		{
			name: "missing amount",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"currency":"EUR"}`))
			},
		},
		{
			name: "currency mismatch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"amount":"1","currency":"GBP"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := newServer(t, tt.handler)
			m := metrics.New(prometheus.NewRegistry())

			money := NewClient(srv.URL, time.Second, WithMetrics(m)).Convert(context.Background(), amount, "USD", "eur")

			assert.True(t, money.Amount.Equal(amount))
			assert.Equal(t, "EUR", money.Currency)
			assert.EqualValues(t, 1, calls.Load(), "exactly one attempt")
			assert.Equal(t, float64(1), testutil.ToFloat64(m.CurrencyConversions.WithLabelValues(metrics.OutcomeDegraded)))
		})
	}
}

func TestClient_Convert_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	client := NewClient(srv.URL, 50*time.Millisecond)

	start := time.Now()
	money := client.Convert(context.Background(), decimal.NewFromInt(5), "USD", "EUR")
	elapsed := time.Since(start)

	assert.True(t, money.Amount.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "EUR", money.Currency)
	assert.Less(t, elapsed, 2*time.Second)
	assert.EqualValues(t, 1, calls.Load())
}

func TestClient_Convert_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	money := NewClient(url, time.Second).Convert(context.Background(), decimal.NewFromInt(7), "USD", "RUB")

	assert.True(t, money.Amount.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, "RUB", money.Currency)
}

func TestClient_Convert_InvalidCodesSkipNetwork(t *testing.T) {
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s", r.URL)
	})
	m := metrics.New(prometheus.NewRegistry())
	client := NewClient(srv.URL, time.Second, WithMetrics(m))

	for _, pair := range [][2]string{{"US", "EUR"}, {"USD", "EURO"}, {"", "EUR"}, {"USD", "1AB"}} {
		result := client.convert(context.Background(), decimal.NewFromInt(1), pair[0], pair[1])
		require.Error(t, result.cause)
		assert.ErrorIs(t, result.cause, errInvalidConversion)
		assert.ErrorIs(t, result.cause, domain.ErrInvalidCurrency)

		money := client.Convert(context.Background(), decimal.NewFromInt(1), pair[0], pair[1])
		assert.Equal(t, domain.NormalizeCurrency(pair[1]), money.Currency)
	}

	assert.EqualValues(t, 0, calls.Load())
	assert.Equal(t, float64(4), testutil.ToFloat64(m.CurrencyConversions.WithLabelValues(metrics.OutcomeInvalid)))
}

func TestClient_Convert_TaggedCauses(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":"1","currency":"GBP"}`))
	})

	result := NewClient(srv.URL, time.Second).convert(context.Background(), decimal.NewFromInt(1), "USD", "EUR")

	assert.Equal(t, metrics.OutcomeDegraded, result.outcome)
	assert.ErrorIs(t, result.cause, errCurrencyMismatch)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("http://localhost:8082/", 0)

	assert.Equal(t, 5*time.Second, client.timeout)
	assert.Equal(t, "http://localhost:8082", client.baseURL)
}
