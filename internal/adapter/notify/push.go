package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vectap/internal/domain"
)

const pushTimeout = 10 * time.Second

// PushSender posts notifications to an ntfy-compatible endpoint. The message
// travels as the request body; title, tags, priority and click action ride
// along as headers when set.
type PushSender struct {
	client *http.Client
}

// NewPushSender creates a sender with a bounded request timeout.
func NewPushSender() *PushSender {
	return &PushSender{
		client: &http.Client{Timeout: pushTimeout},
	}
}

// Send publishes n to Endpoint/Topic. The caller resolves endpoint and topic
// defaults; Send fails on a missing endpoint or message and on any
// non-success HTTP status.
func (p *PushSender) Send(ctx context.Context, n domain.PushNotification) error {
	if n.Endpoint == "" {
		return fmt.Errorf("push endpoint is required")
	}
	if n.Message == "" {
		return fmt.Errorf("push message is required")
	}

	url := strings.TrimRight(n.Endpoint, "/")
	if n.Topic != "" {
		url += "/" + n.Topic
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url,
		strings.NewReader(n.Message))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}

	if n.Title != "" {
		req.Header.Set("Title", n.Title)
	}
	if n.Tags != "" {
		req.Header.Set("Tags", n.Tags)
	}
	if n.Priority != "" {
		req.Header.Set("Priority", n.Priority)
	}
	if n.Click != "" {
		req.Header.Set("Click", n.Click)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("push notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push endpoint returned HTTP %d", resp.StatusCode)
	}
	return nil
}
