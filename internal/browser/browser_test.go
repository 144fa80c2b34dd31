package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNavigateReturnsLiveStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "ok", status: http.StatusOK},
		{name: "server error", status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			loader := New(5 * time.Second)
			loader.MinDelay = 0
			loader.MaxDelay = 0

			status, err := loader.Navigate(context.Background(), srv.URL)
			if err != nil {
				t.Fatalf("Navigate() error: %v", err)
			}
			if status != tt.status {
				t.Errorf("Navigate() status = %d, want %d", status, tt.status)
			}
		})
	}
}

func TestNavigateUnreachableTarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable on purpose

	loader := New(2 * time.Second)
	loader.MinDelay = 0
	loader.MaxDelay = 0

	if _, err := loader.Navigate(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for unreachable target")
	}
}
