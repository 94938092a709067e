package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	httpadapter "campaign-lens/internal/adapter/http"
	"campaign-lens/internal/adapter/memory"
	"campaign-lens/internal/adapter/postgres"
	"campaign-lens/internal/adapter/rabbitmq"
	"campaign-lens/internal/adapter/usecase"
	"campaign-lens/internal/config"
	"campaign-lens/internal/core/port"
	"campaign-lens/internal/db"
	"campaign-lens/internal/metrics"
	"campaign-lens/internal/telemetry"
)

// main is the entry point of the campaign-lens service. It loads
// configuration, wires the campaign store (PostgreSQL when enabled,
// memory otherwise), the event publisher and telemetry, then serves HTTP
// until a termination signal arrives and shuts down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", slog.Any("error", err))
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(cfg.Trace, logger)
	if err != nil {
		logger.Error("tracing setup error", slog.Any("error", err))
		return
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracing shutdown error", slog.Any("error", err))
		}
	}()

	var repo port.CampaignRepository = memory.NewCampaignRepository()
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(ctx, cfg.Psql.Addr, logger); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewCampaignRepository(pool)
	}

	var events port.EventPublisher = rabbitmq.Noop{}
	if cfg.AMQP.Enabled() {
		pub, err := rabbitmq.Dial(cfg.AMQP)
		if err != nil {
			logger.Error("amqp connection error", slog.Any("error", err))
			return
		}
		defer closeQuietly(logger, "amqp", pub)
		events = pub
	}

	collector := metrics.New()
	svc := usecase.NewCampaignUseCase(repo,
		usecase.WithEvents(events),
		usecase.WithMetrics(collector),
		usecase.WithLogger(logger),
		usecase.WithConcurrency(cfg.Ingest.Concurrency),
	)

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, svc); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	var limiter *rate.Limiter
	if cfg.Ingest.UploadRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Ingest.UploadRate), cfg.Ingest.UploadBurst)
	}
	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		Metrics:        collector.Handler(),
		UploadLimiter:  limiter,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

func closeQuietly(logger *slog.Logger, name string, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Error("close "+name, slog.Any("error", err))
	}
}
