package main

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"flaky-monitor/internal/analyze"
	"flaky-monitor/internal/config"
	"flaky-monitor/internal/database"
	"flaky-monitor/internal/logging"
	"flaky-monitor/internal/models"
	"flaky-monitor/internal/report"
	"flaky-monitor/internal/resultlog"
	"flaky-monitor/internal/web"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	// Parse configuration
	cfg := config.ParseReportFlags()
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

	records, err := resultlog.ReadAll(cfg.LogPath)
	if err != nil {
		// A missing or malformed log is a data error, not a crash: report
		// it, dump the raw head for debugging, and leave the prior report
		// artifacts untouched.
		logger.Error("cannot analyze results", zap.Error(err))
		if !errors.Is(err, resultlog.ErrNoData) || fileExists(cfg.LogPath) {
			dumpLogHead(cfg.LogPath)
		}
		logger.Sync()
		os.Exit(1)
	}

	stats := analyze.Aggregate(records)

	gen := report.NewGenerator(logger, store)
	if err := gen.Generate(cfg, stats); err != nil {
		logger.Fatal("report generation failed", zap.Error(err))
	}

	if store != nil {
		if err := store.ArchiveOldData(); err != nil {
			logger.Warn("history retention sweep failed", zap.Error(err))
		}
	}

	counts := analyze.CategoryCounts(stats)
	logger.Info("analysis complete",
		zap.Int("targets", len(stats)),
		zap.Int("stable", counts[models.CategoryStable]),
		zap.Int("flaky", counts[models.CategoryFlaky]),
		zap.Int("problematic", counts[models.CategoryProblematic]))

	if cfg.Serve {
		srv := web.New(cfg.LogPath, cfg.ArtifactsDir, store, cfg.Port, staticFiles, logger)
		logger.Info("dashboard available", zap.String("url", fmt.Sprintf("http://localhost:%d", cfg.Port)))
		if err := srv.Start(); err != nil {
			logger.Fatal("dashboard failed", zap.Error(err))
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func dumpLogHead(path string) {
	head, err := resultlog.Head(path, 5)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read raw log: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "raw log head (%s):\n%s", path, head)
}
