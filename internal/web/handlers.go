package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"flaky-monitor/internal/analyze"
	"flaky-monitor/internal/resultlog"
)

// handleStats serves per-target statistics derived fresh from the CSV log
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	records, err := resultlog.ReadAll(s.logPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analyze.Aggregate(records))
}

// handleRecent serves the tail of the CSV log
func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := resultlog.ReadAll(s.logPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if len(records) > limit {
		records = records[len(records)-limit:]
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// handleHistory serves cross-run statistics from the history database
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "history database not configured", http.StatusNotFound)
		return
	}

	stats, err := s.store.GetStats()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analyze.Finalize(stats))
}
