// Package resultlog reads and appends the append-only CSV result log
// shared between the harness runner and the flakiness analyzer.
package resultlog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"flaky-monitor/internal/models"
)

// ErrNoData is returned when the log is missing or holds no records.
var ErrNoData = errors.New("result log has no data")

var columns = []string{"timestamp", "url", "passed", "status", "attempt"}

// Appender writes records to the log, creating it with a header line on
// first use.
type Appender struct {
	path string
}

// NewAppender creates an Appender for the given log path.
func NewAppender(path string) *Appender {
	return &Appender{path: path}
}

// Append writes one record to the end of the log.
func (a *Appender) Append(rec models.Record) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening result log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat result log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(columns); err != nil {
			return fmt.Errorf("writing log header: %w", err)
		}
	}

	row := []string{
		formatEpoch(rec.Timestamp),
		rec.URL,
		formatPassed(rec.Passed),
		strconv.Itoa(rec.Status),
		strconv.Itoa(rec.Attempt),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("writing log row: %w", err)
	}

	w.Flush()
	return w.Error()
}

// ReadAll loads every record from the log. A missing, empty, or
// header-only log yields ErrNoData. The legacy four-column header (no
// attempt column) is accepted; attempt defaults to 1. A malformed numeric
// cell aborts the read.
func ReadAll(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrNoData, path)
		}
		return nil, fmt.Errorf("opening result log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoData, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading log header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading log line %d: %w", line, err)
		}

		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("log line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s holds only a header", ErrNoData, path)
	}
	return records, nil
}

// Head returns up to n raw lines from the log, used for the diagnostic
// dump when analysis aborts.
func Head(path string, n int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	scanner := bufio.NewScanner(f)
	for i := 0; i < n && scanner.Scan(); i++ {
		b.WriteString(scanner.Text())
		b.WriteByte('\n')
	}
	return b.String(), scanner.Err()
}

type colIndex struct {
	timestamp int
	url       int
	passed    int
	status    int
	attempt   int // -1 for legacy logs
}

func columnIndex(header []string) (colIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	idx := colIndex{attempt: -1}
	required := map[string]*int{
		"timestamp": &idx.timestamp,
		"url":       &idx.url,
		"passed":    &idx.passed,
		"status":    &idx.status,
	}
	for name, dst := range required {
		i, ok := pos[name]
		if !ok {
			return colIndex{}, fmt.Errorf("result log missing required column %q", name)
		}
		*dst = i
	}
	if i, ok := pos["attempt"]; ok {
		idx.attempt = i
	}
	return idx, nil
}

func parseRow(row []string, idx colIndex) (models.Record, error) {
	var rec models.Record

	max := idx.status
	if idx.attempt > max {
		max = idx.attempt
	}
	if len(row) <= max {
		return rec, fmt.Errorf("expected at least %d fields, got %d", max+1, len(row))
	}

	ts, err := parseEpoch(row[idx.timestamp])
	if err != nil {
		return rec, fmt.Errorf("bad timestamp %q: %w", row[idx.timestamp], err)
	}
	rec.Timestamp = ts
	rec.URL = row[idx.url]

	passed, err := strconv.ParseBool(row[idx.passed])
	if err != nil {
		return rec, fmt.Errorf("bad passed flag %q: %w", row[idx.passed], err)
	}
	rec.Passed = passed

	status, err := strconv.Atoi(row[idx.status])
	if err != nil {
		return rec, fmt.Errorf("bad status %q: %w", row[idx.status], err)
	}
	rec.Status = status

	rec.Attempt = 1
	if idx.attempt >= 0 {
		attempt, err := strconv.Atoi(row[idx.attempt])
		if err != nil {
			return rec, fmt.Errorf("bad attempt %q: %w", row[idx.attempt], err)
		}
		rec.Attempt = attempt
	}
	return rec, nil
}

// formatEpoch serializes a timestamp as epoch seconds with microsecond
// precision, matching the log's wire format.
func formatEpoch(t time.Time) string {
	return strconv.FormatFloat(float64(t.UnixMicro())/1e6, 'f', 6, 64)
}

func parseEpoch(s string) (time.Time, error) {
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMicro(int64(math.Round(sec * 1e6))), nil
}

func formatPassed(passed bool) string {
	if passed {
		return "1"
	}
	return "0"
}
