package database

import (
	"flaky-monitor/internal/models"
)

// SaveResult saves a test attempt to the history database
func (db *DB) SaveResult(rec models.Record) error {
	query := `
        INSERT INTO test_results (timestamp, url, passed, status, attempt)
        VALUES (?, ?, ?, ?, ?)
    `
	_, err := db.Exec(query,
		rec.Timestamp,
		rec.URL,
		rec.Passed,
		rec.Status,
		rec.Attempt,
	)
	return err
}

// GetRecent retrieves the most recent test attempts
func (db *DB) GetRecent(limit int) ([]models.Record, error) {
	query := `
        SELECT timestamp, url, passed, status, attempt
        FROM test_results
        ORDER BY timestamp DESC
        LIMIT ?
    `

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var r models.Record
		if err := rows.Scan(&r.Timestamp, &r.URL, &r.Passed, &r.Status, &r.Attempt); err != nil {
			continue
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// GetStats retrieves per-URL totals across every recorded run. Failure
// rates and categories are filled in by the analyze package.
func (db *DB) GetStats() ([]models.TargetStats, error) {
	query := `
        SELECT
            url,
            COUNT(*) as total_runs,
            SUM(CASE WHEN passed THEN 0 ELSE 1 END) as failures
        FROM test_results
        GROUP BY url
        ORDER BY url
    `

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.TargetStats
	for rows.Next() {
		var s models.TargetStats
		if err := rows.Scan(&s.URL, &s.TotalRuns, &s.Failures); err != nil {
			continue
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
