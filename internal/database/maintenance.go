package database

// ArchiveOldData deletes history older than the retention window. The CSV
// log in each run's artifacts remains the durable record; the database
// only backs the cross-run views.
func (db *DB) ArchiveOldData() error {
	deleteQuery := `DELETE FROM test_results WHERE timestamp < datetime('now', '-90 days')`
	if _, err := db.Exec(deleteQuery); err != nil {
		return err
	}

	_, err := db.Exec("VACUUM")
	return err
}
