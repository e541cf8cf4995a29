package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestTimeout = 2 * time.Second

// HTTPProbe checks service readiness with a plain GET request.
type HTTPProbe struct {
	client *http.Client
}

// New creates a probe with a short per-request timeout so a wedged endpoint
// cannot stall the surrounding poll loop past its own deadline.
func New() *HTTPProbe {
	return &HTTPProbe{
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Probe performs a GET against url. Any 2xx response means healthy; a
// transport error or any other status is returned as an error for the
// caller's poll loop to swallow.
func (p *HTTPProbe) Probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("probe %s returned HTTP %d", url, resp.StatusCode)
	}
	return nil
}
