package runner

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"go.uber.org/zap"

	"flaky-monitor/internal/config"
	"flaky-monitor/internal/models"
	"flaky-monitor/internal/simulate"
)

type stubNavigator struct {
	calls int
}

func (n *stubNavigator) Navigate(ctx context.Context, url string) (int, error) {
	n.calls++
	return 200, nil
}

type memoryLog struct {
	records []models.Record
}

func (l *memoryLog) Append(rec models.Record) error {
	l.records = append(l.records, rec)
	return nil
}

func testConfig(targets []string, passes, reruns int) config.RunConfig {
	return config.RunConfig{
		Targets:        targets,
		ExpectedStatus: 200,
		SuccessRate:    0.8,
		FailStatus:     500,
		Passes:         passes,
		Reruns:         reruns,
		Timeout:        time.Second,
		ArtifactsDir:   "artifacts",
	}
}

func TestRunDeterministicUnderSeed(t *testing.T) {
	const seed = 7
	cfg := testConfig([]string{"https://a.example", "https://b.example"}, 25, 0)

	log := &memoryLog{}
	sim := simulate.New(cfg.SuccessRate, cfg.FailStatus, rand.New(rand.NewSource(seed)))
	r := New(cfg, log, nil, sim, &stubNavigator{}, zap.NewNop())

	failed, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(log.records) != 50 {
		t.Fatalf("got %d records, want 50", len(log.records))
	}

	// The recorded pass/fail sequence must match the seeded draw stream.
	want := rand.New(rand.NewSource(seed))
	wantFailed := 0
	for i, rec := range log.records {
		wantPassed := want.Float64() < cfg.SuccessRate
		if rec.Passed != wantPassed {
			t.Fatalf("record %d: passed = %v, want %v", i, rec.Passed, wantPassed)
		}
		wantStatus := 200
		if !wantPassed {
			wantStatus = 500
			wantFailed++
		}
		if rec.Status != wantStatus {
			t.Fatalf("record %d: status = %d, want %d", i, rec.Status, wantStatus)
		}
	}
	if failed != wantFailed {
		t.Errorf("Run() failed = %d, want %d", failed, wantFailed)
	}
}

func TestRunRerunsFailedTarget(t *testing.T) {
	cfg := testConfig([]string{"https://a.example"}, 1, 2)
	cfg.SuccessRate = 0 // every attempt fails

	log := &memoryLog{}
	sim := simulate.New(cfg.SuccessRate, cfg.FailStatus, rand.New(rand.NewSource(1)))
	r := New(cfg, log, nil, sim, &stubNavigator{}, zap.NewNop())

	failed, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if failed != 1 {
		t.Errorf("Run() failed = %d, want 1", failed)
	}
	if len(log.records) != 3 {
		t.Fatalf("got %d records, want 3 (initial attempt + 2 reruns)", len(log.records))
	}
	for i, rec := range log.records {
		if rec.Attempt != i+1 {
			t.Errorf("record %d: attempt = %d, want %d", i, rec.Attempt, i+1)
		}
		if rec.Passed {
			t.Errorf("record %d: passed = true, want false", i)
		}
	}
}

func TestRunStopsRerunsOnPass(t *testing.T) {
	cfg := testConfig([]string{"https://a.example"}, 1, 5)
	cfg.SuccessRate = 1 // every attempt passes

	log := &memoryLog{}
	sim := simulate.New(cfg.SuccessRate, cfg.FailStatus, rand.New(rand.NewSource(1)))
	r := New(cfg, log, nil, sim, &stubNavigator{}, zap.NewNop())

	failed, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if failed != 0 {
		t.Errorf("Run() failed = %d, want 0", failed)
	}
	if len(log.records) != 1 {
		t.Fatalf("got %d records, want 1 (no reruns after a pass)", len(log.records))
	}
}

func TestRunAttemptCountsAccumulateAcrossPasses(t *testing.T) {
	cfg := testConfig([]string{"https://a.example"}, 3, 0)
	cfg.SuccessRate = 1

	log := &memoryLog{}
	sim := simulate.New(cfg.SuccessRate, cfg.FailStatus, rand.New(rand.NewSource(1)))
	r := New(cfg, log, nil, sim, &stubNavigator{}, zap.NewNop())

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(log.records) != 3 {
		t.Fatalf("got %d records, want 3", len(log.records))
	}
	for i, rec := range log.records {
		if rec.Attempt != i+1 {
			t.Errorf("record %d: attempt = %d, want %d", i, rec.Attempt, i+1)
		}
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	cfg := testConfig([]string{"https://a.example"}, 100, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	log := &memoryLog{}
	sim := simulate.New(cfg.SuccessRate, cfg.FailStatus, rand.New(rand.NewSource(1)))
	r := New(cfg, log, nil, sim, &stubNavigator{}, zap.NewNop())

	if _, err := r.Run(ctx); err == nil {
		t.Fatal("Run() with cancelled context should error")
	}
	if len(log.records) != 0 {
		t.Errorf("got %d records after cancellation, want 0", len(log.records))
	}
}
