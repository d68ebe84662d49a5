package diagram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxErrorBody = 4 << 10

// KrokiOption configures a KrokiRenderer.
type KrokiOption func(*KrokiRenderer)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) KrokiOption {
	return func(k *KrokiRenderer) { k.client = hc }
}

// WithTimeout sets the per-diagram request timeout.
func WithTimeout(d time.Duration) KrokiOption {
	return func(k *KrokiRenderer) { k.client.Timeout = d }
}

// KrokiRenderer renders diagrams through a Kroki-compatible service.
type KrokiRenderer struct {
	baseURL string
	client  *http.Client
}

func NewKrokiRenderer(baseURL string, opts ...KrokiOption) *KrokiRenderer {
	k := &KrokiRenderer{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}

	for _, o := range opts {
		o(k)
	}

	return k
}

// Render posts source to {base}/mermaid/svg. The service's error text is
// returned verbatim so it can be shown next to the broken block.
func (k *KrokiRenderer) Render(ctx context.Context, _ string, source string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.baseURL+"/mermaid/svg", strings.NewReader(source))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Accept", "image/svg+xml")

	resp, err := k.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("diagram service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}

		return "", fmt.Errorf("diagram service returned %d: %s", resp.StatusCode, msg)
	}

	svg, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read diagram: %w", err)
	}

	return string(svg), nil
}
