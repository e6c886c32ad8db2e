package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/midhunrajcharles/SyndicateIQ/internal/application/usecase"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/port"
	"github.com/midhunrajcharles/SyndicateIQ/internal/infrastructure/config"
	"github.com/midhunrajcharles/SyndicateIQ/internal/infrastructure/fixtures"
	kafkapublisher "github.com/midhunrajcharles/SyndicateIQ/internal/infrastructure/kafka"
	"github.com/midhunrajcharles/SyndicateIQ/internal/infrastructure/messaging"
	pgsource "github.com/midhunrajcharles/SyndicateIQ/internal/infrastructure/postgres"
	grpcpresentation "github.com/midhunrajcharles/SyndicateIQ/internal/presentation/grpc"
	"github.com/midhunrajcharles/SyndicateIQ/internal/presentation/rest"
	"github.com/midhunrajcharles/SyndicateIQ/pkg/kafka"
	"github.com/midhunrajcharles/SyndicateIQ/pkg/observability"
	pgpkg "github.com/midhunrajcharles/SyndicateIQ/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.Observability.LogLevel,
		Format:  cfg.Observability.LogFormat,
		Service: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("starting syndicateiq",
		slog.String("grpc_port", cfg.GRPCPort),
		slog.String("http_port", cfg.HTTPPort),
		slog.String("data_source", cfg.DataSource),
	)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("syndicateiq exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("syndicateiq stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Tracing is optional.
	if cfg.Observability.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.Observability.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", slog.String("error", err.Error()))
		} else {
			defer func() {
				flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer flushCancel()
				_ = shutdown(flushCtx)
			}()
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		Registry:    registry,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()

	source, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	publisher, closePublisher := openPublisher(cfg, logger)
	defer closePublisher()

	// Use cases.
	classifyUC := usecase.NewClassifyScore()
	covenantUC := usecase.NewGetCovenantPortfolio(source, publisher, logger)
	esgUC := usecase.NewGetESGOverview(source)
	dueDiligenceUC := usecase.NewGetDueDiligenceReport(source)
	dashboardUC := usecase.NewGetDashboard(source)

	// gRPC server.
	grpcHandler := grpcpresentation.NewPortfolioServiceHandler(classifyUC, covenantUC, esgUC, dueDiligenceUC, dashboardUC, logger)
	grpcServer, err := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), cfg.TLS, cfg.GRPCReflection, logger)
	if err != nil {
		return fmt.Errorf("create gRPC server: %w", err)
	}

	// HTTP server: health, JSON API and metrics.
	mux := rest.NewRouter(
		rest.NewHealthHandler(cfg.ServiceName, source, logger),
		rest.NewPortfolioHandler(classifyUC, covenantUC, esgUC, dueDiligenceUC, dashboardUC, logger),
		observability.NewHTTPMetrics(registry, "syndicateiq"),
		metricsHandler,
	)
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", slog.String("address", cfg.HTTPAddress()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("syndicateiq started",
		slog.String("grpc_address", cfg.GRPCAddress()),
		slog.String("http_address", cfg.HTTPAddress()),
		slog.String("environment", cfg.Environment),
	)

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errCh:
	}

	logger.Info("shutting down syndicateiq")
	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	return serveErr
}

// openSource returns the configured portfolio source and its cleanup function.
func openSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.PortfolioSource, func(), error) {
	if cfg.DataSource == config.SourceFixtures {
		src, err := fixtures.NewSource(logger)
		if err != nil {
			return nil, nil, fmt.Errorf("load fixtures: %w", err)
		}
		return src, func() {}, nil
	}

	if cfg.Database.MigrationsDir != "" {
		if err := pgpkg.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsDir); err != nil {
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied", slog.String("dir", cfg.Database.MigrationsDir))
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pgpkg.NewPool(dbCtx, pgpkg.PoolConfig{
		DSN:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")

	return pgsource.NewPortfolioSource(pool), pool.Close, nil
}

// openPublisher returns a Kafka publisher when brokers are configured and a
// logging publisher otherwise.
func openPublisher(cfg *config.Config, logger *slog.Logger) (port.EventPublisher, func()) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("no kafka brokers configured, logging domain events")
		return messaging.NewLogPublisher(logger), func() {}
	}

	producer := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Kafka.Brokers,
		ClientID: cfg.ServiceName,
	})
	logger.Info("publishing domain events to kafka",
		slog.Any("brokers", cfg.Kafka.Brokers),
		slog.String("topic", cfg.Kafka.Topic),
	)

	return kafkapublisher.NewPublisher(producer, cfg.Kafka.Topic, logger), func() {
		if err := producer.Close(); err != nil {
			logger.Error("failed to close kafka producer", slog.String("error", err.Error()))
		}
	}
}
