package web

import (
	"fmt"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"flaky-monitor/internal/models"
)

// Server serves the report dashboard: generated artifacts, live stats
// derived from the CSV log, and cross-run history when a database is
// available.
type Server struct {
	logPath      string
	artifactsDir string
	store        models.Store // optional
	port         int
	staticFiles  fs.FS
	logger       *zap.Logger
}

// New creates a new dashboard server. store may be nil.
func New(logPath, artifactsDir string, store models.Store, port int, staticFS fs.FS, logger *zap.Logger) *Server {
	return &Server{
		logPath:      logPath,
		artifactsDir: artifactsDir,
		store:        store,
		port:         port,
		staticFiles:  staticFS,
		logger:       logger,
	}
}

// Start starts the dashboard server and blocks
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/recent", s.handleRecent)
	mux.HandleFunc("/api/history", s.handleHistory)

	// Generated artifacts (charts, CSVs)
	mux.Handle("/artifacts/", http.StripPrefix("/artifacts/", http.FileServer(http.Dir(s.artifactsDir))))

	// Static files - serve embedded static/ directory as webroot
	staticFS, _ := fs.Sub(s.staticFiles, "static")
	mux.Handle("/", http.FileServer(http.FS(staticFS)))

	s.logger.Info("dashboard starting", zap.Int("port", s.port))
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), mux)
}
