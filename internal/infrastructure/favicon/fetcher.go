package favicon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/tabicon/internal/logging"
)

const (
	// HTTP client timeout for icon fetch.
	fetchTimeout = 5 * time.Second
	// Icons larger than this are refused.
	maxIconBytes = 4 << 20
)

// Fetcher downloads candidate icon bytes, playing the engine's role for replays.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a new Fetcher with default HTTP client settings.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// Fetch retrieves the bytes at iconURL.
func (f *Fetcher) Fetch(ctx context.Context, iconURL string) ([]byte, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", iconURL).Msg("fetching favicon candidate")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iconURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create favicon request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch favicon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch favicon: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read favicon response: %w", err)
	}
	if len(data) > maxIconBytes {
		return nil, fmt.Errorf("fetch favicon: response exceeds %d bytes", maxIconBytes)
	}

	log.Debug().Str("url", iconURL).Int("bytes", len(data)).Msg("favicon candidate fetched")
	return data, nil
}
