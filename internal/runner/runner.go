// Package runner drives the simulated test harness: it walks the target
// list for a configured number of passes, records every attempt, and
// reruns failed targets.
package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"flaky-monitor/internal/config"
	"flaky-monitor/internal/models"
	"flaky-monitor/internal/simulate"
)

// Runner coordinates navigation, outcome simulation, and result recording.
type Runner struct {
	cfg    config.RunConfig
	log    models.ResultLog
	store  models.Store // optional, nil disables the history mirror
	sim    *simulate.Simulator
	nav    models.Navigator
	logger *zap.Logger

	attempts map[string]int // cumulative per-URL attempt counter
}

// New creates a Runner. store may be nil.
func New(cfg config.RunConfig, log models.ResultLog, store models.Store, sim *simulate.Simulator, nav models.Navigator, logger *zap.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		log:      log,
		store:    store,
		sim:      sim,
		nav:      nav,
		logger:   logger,
		attempts: make(map[string]int),
	}
}

// Run executes all configured passes and returns the number of targets
// that still failed after their last attempt.
func (r *Runner) Run(ctx context.Context) (int, error) {
	r.logger.Info("starting harness",
		zap.Int("targets", len(r.cfg.Targets)),
		zap.Int("passes", r.cfg.Passes),
		zap.Int("reruns", r.cfg.Reruns))

	failed := 0
	for pass := 1; pass <= r.cfg.Passes; pass++ {
		for _, target := range r.cfg.Targets {
			if err := ctx.Err(); err != nil {
				return failed, fmt.Errorf("run interrupted: %w", err)
			}

			passed, err := r.runTarget(ctx, target)
			if err != nil {
				return failed, err
			}
			if !passed {
				failed++
			}
		}
	}

	r.logger.Info("harness finished", zap.Int("failed", failed))
	return failed, nil
}

// runTarget executes one test for a target, rerunning on failure up to
// the configured number of extra attempts. Reports whether the final
// attempt passed.
func (r *Runner) runTarget(ctx context.Context, target string) (bool, error) {
	for try := 0; try <= r.cfg.Reruns; try++ {
		rec, err := r.attempt(ctx, target)
		if err != nil {
			return false, err
		}
		if rec.Passed {
			return true, nil
		}
		r.logger.Warn("test failed",
			zap.String("url", target),
			zap.Int("status", rec.Status),
			zap.Int("attempt", rec.Attempt))
	}
	return false, nil
}

// attempt navigates to the target, draws the simulated outcome, and
// records it. Navigation errors are logged but do not affect the outcome;
// the draw alone decides pass/fail.
func (r *Runner) attempt(ctx context.Context, target string) (models.Record, error) {
	r.attempts[target]++

	if _, err := r.nav.Navigate(ctx, target); err != nil {
		r.logger.Warn("navigation failed", zap.String("url", target), zap.Error(err))
	}

	passed, status := r.sim.Outcome(r.cfg.ExpectedStatus)
	rec := models.Record{
		Timestamp: time.Now(),
		URL:       target,
		Passed:    passed,
		Status:    status,
		Attempt:   r.attempts[target],
	}

	if err := r.log.Append(rec); err != nil {
		return rec, fmt.Errorf("recording result for %s: %w", target, err)
	}

	if r.store != nil {
		if err := r.store.SaveResult(rec); err != nil {
			r.logger.Warn("history mirror failed", zap.String("url", target), zap.Error(err))
		}
	}
	return rec, nil
}
