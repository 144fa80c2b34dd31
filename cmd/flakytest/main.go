package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"flaky-monitor/internal/browser"
	"flaky-monitor/internal/config"
	"flaky-monitor/internal/database"
	"flaky-monitor/internal/logging"
	"flaky-monitor/internal/models"
	"flaky-monitor/internal/resultlog"
	"flaky-monitor/internal/runner"
	"flaky-monitor/internal/simulate"
)

func main() {
	// Parse configuration
	cfg := config.ParseRunFlags()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.ArtifactsDir)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logger.Sync()

	// Optional history database
	var store models.Store
	if cfg.DatabasePath != "" {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			logger.Fatal("failed to open history database", zap.Error(err))
		}
		defer db.Close()

		if err := db.InitSchema(); err != nil {
			logger.Fatal("failed to initialize database schema", zap.Error(err))
		}
		store = db
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Initialize components
	sim := simulate.New(cfg.SuccessRate, cfg.FailStatus, rand.New(rand.NewSource(seed)))
	nav := browser.New(cfg.Timeout)
	appender := resultlog.NewAppender(cfg.LogPath)
	r := runner.New(cfg, appender, store, sim, nav, logger)

	// Handle shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed, err := r.Run(ctx)
	if err != nil {
		logger.Fatal("harness run failed", zap.Error(err))
	}

	logger.Info("run complete",
		zap.String("log", cfg.LogPath),
		zap.Int("failed", failed))

	// Mirror the test-runner contract: a non-zero exit when targets still
	// fail after their last attempt.
	if failed > 0 {
		logger.Sync()
		os.Exit(1)
	}
}
