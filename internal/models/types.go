package models

import "context"

// Navigator performs the page-load side of a simulated test. The returned
// status is the live HTTP status of the fetch; the simulated outcome does
// not depend on it.
type Navigator interface {
	Navigate(ctx context.Context, url string) (int, error)
}

// ResultLog appends records to the append-only result log.
type ResultLog interface {
	Append(rec Record) error
}

// Store defines operations for the cross-run history database.
type Store interface {
	SaveResult(rec Record) error
	GetRecent(limit int) ([]Record, error)
	GetStats() ([]TargetStats, error)
	ArchiveOldData() error
	Close() error
}
