// Package browser stands in for the headless browser driver: it loads a
// page over HTTP and simulates the variable render time a real browser
// would add.
package browser

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// PageLoader implements the Navigator interface with a plain HTTP fetch.
type PageLoader struct {
	Client *http.Client

	// Simulated render delay, drawn uniformly from [MinDelay, MaxDelay].
	MinDelay time.Duration
	MaxDelay time.Duration

	rng *rand.Rand
}

// New creates a PageLoader with the given page-load timeout.
func New(timeout time.Duration) *PageLoader {
	return &PageLoader{
		Client:   &http.Client{Timeout: timeout},
		MinDelay: 100 * time.Millisecond,
		MaxDelay: 500 * time.Millisecond,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Navigate fetches the target URL and returns its HTTP status.
func (p *PageLoader) Navigate(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", url, err)
	}
	resp.Body.Close()

	if d := p.renderDelay(); d > 0 {
		select {
		case <-ctx.Done():
			return resp.StatusCode, ctx.Err()
		case <-time.After(d):
		}
	}

	return resp.StatusCode, nil
}

func (p *PageLoader) renderDelay() time.Duration {
	if p.MaxDelay <= p.MinDelay {
		return p.MinDelay
	}
	return p.MinDelay + time.Duration(p.rng.Int63n(int64(p.MaxDelay-p.MinDelay)))
}
