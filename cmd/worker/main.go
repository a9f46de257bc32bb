package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/riskibarqy/frc-scores/internal/app"
	"github.com/riskibarqy/frc-scores/internal/config"
	"github.com/riskibarqy/frc-scores/internal/observability"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/metrics"
)

func main() {
	if _, err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName+"-worker", "env", cfg.AppEnv)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTelemetry, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var m *metrics.Service
	var metricsServer *http.Server
	if cfg.MetricsEnabled && cfg.WorkerMetricsAddr != "" {
		reg := metrics.NewRegistry()
		m = metrics.NewService(reg)

		mux := http.NewServeMux()
		mux.Handle("GET /metrics", metrics.NewHandler(reg))
		metricsServer = &http.Server{Addr: cfg.WorkerMetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info("worker metrics listening", "addr", cfg.WorkerMetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("worker metrics server failed", "error", err)
			}
		}()
	}

	services, cleanup, err := app.NewServices(ctx, cfg, logger, m)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		logger.Error("create scheduler", "error", err)
		os.Exit(1)
	}

	jobOptions := []gocron.JobOption{
		gocron.WithName("recompute-highscores"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if cfg.HighScoreRunOnStart {
		jobOptions = append(jobOptions, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(cfg.HighScoreInterval),
		gocron.NewTask(func(ctx context.Context) {
			result, err := services.HighScore.Recompute(ctx, cfg.CurrentSeason)
			if err != nil {
				logger.ErrorContext(ctx, "recompute high scores failed", "season", cfg.CurrentSeason, "error", err)
				return
			}
			logger.InfoContext(ctx, "recompute high scores done",
				"season", result.Season,
				"events", result.EventsScanned,
				"failed_fetches", result.FailedFetches,
				"records", len(result.Records),
				"duration_ms", result.DurationMs,
			)
		}),
		jobOptions...,
	)
	if err != nil {
		logger.Error("register recompute job", "error", err)
		os.Exit(1)
	}

	scheduler.Start()
	logger.Info("worker started", "interval", cfg.HighScoreInterval.String(), "season", cfg.CurrentSeason)

	<-ctx.Done()

	if err := scheduler.Shutdown(); err != nil {
		logger.Warn("scheduler shutdown failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("worker metrics shutdown failed", "error", err)
		}
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logger.Warn("shutdown uptrace failed", "error", err)
	}

	logger.Info("worker stopped")
}
