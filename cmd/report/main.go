package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/adapter/currency"
	httpAdapter "github.com/iho/gobank/internal/adapter/http"
	"github.com/iho/gobank/internal/adapter/http/handler"
	"github.com/iho/gobank/internal/adapter/pdf"
	postgresRepo "github.com/iho/gobank/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/gobank/internal/adapter/repository/redis"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/eventpublisher"
	"github.com/iho/gobank/internal/infrastructure/httpserver"
	"github.com/iho/gobank/internal/infrastructure/logger"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/infrastructure/postgres"
	"github.com/iho/gobank/internal/infrastructure/redis"
	"github.com/iho/gobank/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "report"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis (optional)
	redisClient, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	var idempotencyStore usecase.IdempotencyStore
	if redisClient != nil {
		defer redisClient.Close()
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient, "report")
		log.Info().Msg("connected to redis")
	} else {
		log.Info().Msg("redis not configured, idempotency disabled")
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Statement events
	events := eventpublisher.NewEventPublisher(eventpublisher.Config{
		Publisher: newPublisher(cfg, log),
		Logger:    log,
	})
	defer events.Close()

	// Initialize repositories
	retrier := postgresRepo.NewRetrier()
	accountRepo := postgresRepo.NewAccountRepository(pool, retrier)
	transactionRepo := postgresRepo.NewTransactionRepository(pool, retrier)
	idGen := postgresRepo.NewULIDGenerator()

	converter := currency.NewClient(cfg.CurrencyServiceURL, cfg.CurrencyServiceTimeout,
		currency.WithMetrics(m),
		currency.WithLogger(log),
	)

	// Initialize use cases
	reportUC := usecase.NewReportUseCase(accountRepo, transactionRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(transactionRepo)
	statementUC := usecase.NewStatementUseCase(accountRepo, analyticsUC, converter, pdf.NewRenderer(), events, idGen, log)

	// Create router
	router := httpAdapter.NewReportRouter(httpAdapter.ReportRouterConfig{
		ReportHandler:    handler.NewReportHandler(reportUC, analyticsUC),
		StatementHandler: handler.NewStatementHandler(statementUC, m, log),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Metrics:          m,
		Gatherer:         reg,
		Logger:           log,
	})

	server := httpserver.New(serverConfig(cfg), router)
	err = httpserver.ListenAndRun(ctx, server, cfg.HTTPShutdownTimeout, log)

	// Flush statement events still in flight before the publisher closes.
	statementUC.Wait()

	if err != nil {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}

// newPublisher returns a Kafka publisher when brokers are configured and nil
// otherwise, which makes the event publisher log events instead.
func newPublisher(cfg *config.Config, log zerolog.Logger) eventpublisher.Publisher {
	if !cfg.KafkaEnabled() {
		log.Info().Msg("kafka not configured, statement events are logged")
		return nil
	}
	log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaStatementTopic).Msg("publishing statement events to kafka")
	return eventpublisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaStatementTopic)
}

func serverConfig(cfg *config.Config) httpserver.Config {
	return httpserver.Config{
		Port:            cfg.HTTPPort,
		ReadTimeout:     cfg.HTTPReadTimeout,
		WriteTimeout:    cfg.HTTPWriteTimeout,
		IdleTimeout:     cfg.HTTPIdleTimeout,
		ShutdownTimeout: cfg.HTTPShutdownTimeout,
	}
}
