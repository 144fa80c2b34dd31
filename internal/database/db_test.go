package database

import (
	"path/filepath"
	"testing"
	"time"

	"flaky-monitor/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.InitSchema(); err != nil {
		t.Fatalf("InitSchema() error: %v", err)
	}
	return db
}

func TestSaveAndGetStats(t *testing.T) {
	db := openTestDB(t)

	save := func(url string, passed bool) {
		t.Helper()
		rec := models.Record{
			Timestamp: time.Now().UTC(),
			URL:       url,
			Passed:    passed,
			Status:    200,
			Attempt:   1,
		}
		if !passed {
			rec.Status = 500
		}
		if err := db.SaveResult(rec); err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	for i := 0; i < 8; i++ {
		save("https://a.example", true)
	}
	for i := 0; i < 2; i++ {
		save("https://a.example", false)
	}
	for i := 0; i < 9; i++ {
		save("https://b.example", false)
	}
	save("https://b.example", true)

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("GetStats() error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d targets, want 2", len(stats))
	}

	a, b := stats[0], stats[1]
	if a.URL != "https://a.example" || a.TotalRuns != 10 || a.Failures != 2 {
		t.Errorf("a = %+v, want 10 runs with 2 failures", a)
	}
	if b.URL != "https://b.example" || b.TotalRuns != 10 || b.Failures != 9 {
		t.Errorf("b = %+v, want 10 runs with 9 failures", b)
	}
}

func TestGetRecentLimit(t *testing.T) {
	db := openTestDB(t)

	base := time.Now().UTC().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		rec := models.Record{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			URL:       "https://a.example",
			Passed:    true,
			Status:    200,
			Attempt:   i + 1,
		}
		if err := db.SaveResult(rec); err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	records, err := db.GetRecent(3)
	if err != nil {
		t.Fatalf("GetRecent() error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// Most recent first.
	if records[0].Attempt != 5 {
		t.Errorf("first record attempt = %d, want 5", records[0].Attempt)
	}
}

func TestGetStatsEmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("GetStats() error: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("got %d targets from empty database, want 0", len(stats))
	}
}
