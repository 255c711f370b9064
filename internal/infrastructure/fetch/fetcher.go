package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/portfolio-api/internal/domain"
)

// Fetcher retrieves a hosted file by URL. Single-shot, no retries; the caller
// decides what a failure means.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) Fetcher {
	return &fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (f *fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, domain.ErrUpstream)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, domain.ErrUpstream)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d: %w", url, resp.StatusCode, domain.ErrUpstream)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, domain.ErrUpstream)
	}
	return data, nil
}
