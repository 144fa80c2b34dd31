package models

import "time"

// Record represents a single simulated test attempt
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url"`
	Passed    bool      `json:"passed"`
	Status    int       `json:"status"`
	Attempt   int       `json:"attempt"` // 1-based rerun counter per URL
}
