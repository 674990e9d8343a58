package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpAdapter "github.com/iho/gobank/internal/adapter/http"
	"github.com/iho/gobank/internal/adapter/http/handler"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/httpserver"
	"github.com/iho/gobank/internal/infrastructure/logger"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "currency"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// The rate table is in memory; there is nothing to check for readiness.
	router := httpAdapter.NewCurrencyRouter(httpAdapter.CurrencyRouterConfig{
		CurrencyHandler: handler.NewCurrencyHandler(usecase.NewCurrencyUseCase()),
		HealthHandler:   handler.NewHealthHandler(nil, nil),
		Metrics:         metrics.New(reg),
		Gatherer:        reg,
		Logger:          log,
	})

	server := httpserver.New(serverConfig(cfg), router)
	if err := httpserver.ListenAndRun(ctx, server, cfg.HTTPShutdownTimeout, log); err != nil {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}

func serverConfig(cfg *config.Config) httpserver.Config {
	return httpserver.Config{
		Port:            cfg.CurrencyHTTPPort,
		ReadTimeout:     cfg.HTTPReadTimeout,
		WriteTimeout:    cfg.HTTPWriteTimeout,
		IdleTimeout:     cfg.HTTPIdleTimeout,
		ShutdownTimeout: cfg.HTTPShutdownTimeout,
	}
}
