package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/common"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/logger"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
)

// Fetcher downloads the catalog feed.
type Fetcher struct {
	url         string
	client      *http.Client
	maxAttempts int
	baseDelay   time.Duration
}

// NewFetcher creates a fetcher for the given feed URL.
func NewFetcher(url string) *Fetcher {
	return &Fetcher{
		url:         url,
		client:      &http.Client{Timeout: 30 * time.Second},
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
	}
}

// Fetch performs a single download of the full catalog.
func (f *Fetcher) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeExternalFetch,
			fmt.Sprintf("invalid catalog feed URL: %v", err),
			common.StatusBadGateway,
			err,
		)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, common.ErrCatalogFetchFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, common.NewError(
			common.ErrCodeExternalFetch,
			fmt.Sprintf("catalog feed returned status %d", resp.StatusCode),
			common.StatusBadGateway,
			nil,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.ErrCatalogFetchFailed
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, common.NewError(
			common.ErrCodeExternalFetch,
			fmt.Sprintf("could not parse catalog feed: %v", err),
			common.StatusBadGateway,
			err,
		)
	}

	return products, nil
}

// FetchWithRetry downloads the catalog, retrying transient failures with
// exponential backoff (1s, 2s, 4s by default). It returns the last error
// when every attempt fails.
func (f *Fetcher) FetchWithRetry(ctx context.Context) ([]Product, error) {
	var lastErr error

	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := f.baseDelay << (attempt - 1)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"delay":   delay.String(),
			}).Warn("Retrying catalog fetch")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		products, err := f.Fetch(ctx)
		if err == nil {
			return products, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
